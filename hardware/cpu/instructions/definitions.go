// Package instructions defines the 6507 instruction set as data: one
// Definition per legal opcode, naming its Operator, AddressingMode and base
// cycle count. Keeping the set as a table (rather than as 151 individual
// case arms) is what lets the CPU's dispatch loop stay a single small
// function; see cpu.Step.
package instructions

import "fmt"

// Definition describes one opcode encoding of one of the 56 canonical
// instructions.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode
	Cycles         int
}

func (d Definition) String() string {
	return fmt.Sprintf("%02x %s [%s] (%d cycles)", d.OpCode, d.Operator, d.AddressingMode, d.Cycles)
}

// IsBranch reports whether this opcode is one of the conditional branches,
// whose cycle count depends on whether the branch was taken and whether it
// crossed a page, rather than being fixed like every other instruction.
func (d Definition) IsBranch() bool {
	return d.AddressingMode == Relative && d.Operator.IsBranch()
}

// Definitions indexes every legal opcode's Definition.
var Definitions = buildDefinitions()

func def(op uint8, operator Operator, mode AddressingMode, cycles int) Definition {
	return Definition{OpCode: op, Operator: operator, AddressingMode: mode, Cycles: cycles}
}

func buildDefinitions() [256]*Definition {
	var t [256]*Definition
	add := func(d Definition) { t[d.OpCode] = &d }

	// ADC
	add(def(0x69, ADC, Immediate, 2))
	add(def(0x65, ADC, ZeroPage, 3))
	add(def(0x75, ADC, ZeroPageX, 4))
	add(def(0x6D, ADC, Absolute, 4))
	add(def(0x7D, ADC, AbsoluteX, 4))
	add(def(0x79, ADC, AbsoluteY, 4))
	add(def(0x61, ADC, IndexedIndirect, 6))
	add(def(0x71, ADC, IndirectIndexed, 5))

	// AND
	add(def(0x29, AND, Immediate, 2))
	add(def(0x25, AND, ZeroPage, 3))
	add(def(0x35, AND, ZeroPageX, 4))
	add(def(0x2D, AND, Absolute, 4))
	add(def(0x3D, AND, AbsoluteX, 4))
	add(def(0x39, AND, AbsoluteY, 4))
	add(def(0x21, AND, IndexedIndirect, 6))
	add(def(0x31, AND, IndirectIndexed, 5))

	// ASL
	add(def(0x0A, ASL, Accumulator, 2))
	add(def(0x06, ASL, ZeroPage, 5))
	add(def(0x16, ASL, ZeroPageX, 6))
	add(def(0x0E, ASL, Absolute, 6))
	add(def(0x1E, ASL, AbsoluteX, 7))

	// Branches (base cycle count of 2; +1 taken, +1 more if page crossed)
	add(def(0x90, BCC, Relative, 2))
	add(def(0xB0, BCS, Relative, 2))
	add(def(0xF0, BEQ, Relative, 2))
	add(def(0x30, BMI, Relative, 2))
	add(def(0xD0, BNE, Relative, 2))
	add(def(0x10, BPL, Relative, 2))
	add(def(0x50, BVC, Relative, 2))
	add(def(0x70, BVS, Relative, 2))

	// BIT
	add(def(0x24, BIT, ZeroPage, 3))
	add(def(0x2C, BIT, Absolute, 4))

	// BRK
	add(def(0x00, BRK, Implied, 7))

	// flag clear/set
	add(def(0x18, CLC, Implied, 2))
	add(def(0xD8, CLD, Implied, 2))
	add(def(0x58, CLI, Implied, 2))
	add(def(0xB8, CLV, Implied, 2))
	add(def(0x38, SEC, Implied, 2))
	add(def(0xF8, SED, Implied, 2))
	add(def(0x78, SEI, Implied, 2))

	// CMP
	add(def(0xC9, CMP, Immediate, 2))
	add(def(0xC5, CMP, ZeroPage, 3))
	add(def(0xD5, CMP, ZeroPageX, 4))
	add(def(0xCD, CMP, Absolute, 4))
	add(def(0xDD, CMP, AbsoluteX, 4))
	add(def(0xD9, CMP, AbsoluteY, 4))
	add(def(0xC1, CMP, IndexedIndirect, 6))
	add(def(0xD1, CMP, IndirectIndexed, 5))

	// CPX / CPY
	add(def(0xE0, CPX, Immediate, 2))
	add(def(0xE4, CPX, ZeroPage, 3))
	add(def(0xEC, CPX, Absolute, 4))
	add(def(0xC0, CPY, Immediate, 2))
	add(def(0xC4, CPY, ZeroPage, 3))
	add(def(0xCC, CPY, Absolute, 4))

	// DEC / DEX / DEY
	add(def(0xC6, DEC, ZeroPage, 5))
	add(def(0xD6, DEC, ZeroPageX, 6))
	add(def(0xCE, DEC, Absolute, 6))
	add(def(0xDE, DEC, AbsoluteX, 7))
	add(def(0xCA, DEX, Implied, 2))
	add(def(0x88, DEY, Implied, 2))

	// EOR
	add(def(0x49, EOR, Immediate, 2))
	add(def(0x45, EOR, ZeroPage, 3))
	add(def(0x55, EOR, ZeroPageX, 4))
	add(def(0x4D, EOR, Absolute, 4))
	add(def(0x5D, EOR, AbsoluteX, 4))
	add(def(0x59, EOR, AbsoluteY, 4))
	add(def(0x41, EOR, IndexedIndirect, 6))
	add(def(0x51, EOR, IndirectIndexed, 5))

	// INC / INX / INY
	add(def(0xE6, INC, ZeroPage, 5))
	add(def(0xF6, INC, ZeroPageX, 6))
	add(def(0xEE, INC, Absolute, 6))
	add(def(0xFE, INC, AbsoluteX, 7))
	add(def(0xE8, INX, Implied, 2))
	add(def(0xC8, INY, Implied, 2))

	// JMP / JSR
	add(def(0x4C, JMP, Absolute, 3))
	add(def(0x6C, JMP, Indirect, 5))
	add(def(0x20, JSR, Absolute, 6))

	// LDA
	add(def(0xA9, LDA, Immediate, 2))
	add(def(0xA5, LDA, ZeroPage, 3))
	add(def(0xB5, LDA, ZeroPageX, 4))
	add(def(0xAD, LDA, Absolute, 4))
	add(def(0xBD, LDA, AbsoluteX, 4))
	add(def(0xB9, LDA, AbsoluteY, 4))
	add(def(0xA1, LDA, IndexedIndirect, 6))
	add(def(0xB1, LDA, IndirectIndexed, 5))

	// LDX
	add(def(0xA2, LDX, Immediate, 2))
	add(def(0xA6, LDX, ZeroPage, 3))
	add(def(0xB6, LDX, ZeroPageY, 4))
	add(def(0xAE, LDX, Absolute, 4))
	add(def(0xBE, LDX, AbsoluteY, 4))

	// LDY
	add(def(0xA0, LDY, Immediate, 2))
	add(def(0xA4, LDY, ZeroPage, 3))
	add(def(0xB4, LDY, ZeroPageX, 4))
	add(def(0xAC, LDY, Absolute, 4))
	add(def(0xBC, LDY, AbsoluteX, 4))

	// LSR
	add(def(0x4A, LSR, Accumulator, 2))
	add(def(0x46, LSR, ZeroPage, 5))
	add(def(0x56, LSR, ZeroPageX, 6))
	add(def(0x4E, LSR, Absolute, 6))
	add(def(0x5E, LSR, AbsoluteX, 7))

	// NOP
	add(def(0xEA, NOP, Implied, 2))

	// ORA
	add(def(0x09, ORA, Immediate, 2))
	add(def(0x05, ORA, ZeroPage, 3))
	add(def(0x15, ORA, ZeroPageX, 4))
	add(def(0x0D, ORA, Absolute, 4))
	add(def(0x1D, ORA, AbsoluteX, 4))
	add(def(0x19, ORA, AbsoluteY, 4))
	add(def(0x01, ORA, IndexedIndirect, 6))
	add(def(0x11, ORA, IndirectIndexed, 5))

	// stack
	add(def(0x48, PHA, Implied, 3))
	add(def(0x08, PHP, Implied, 3))
	add(def(0x68, PLA, Implied, 4))
	add(def(0x28, PLP, Implied, 4))

	// ROL / ROR
	add(def(0x2A, ROL, Accumulator, 2))
	add(def(0x26, ROL, ZeroPage, 5))
	add(def(0x36, ROL, ZeroPageX, 6))
	add(def(0x2E, ROL, Absolute, 6))
	add(def(0x3E, ROL, AbsoluteX, 7))
	add(def(0x6A, ROR, Accumulator, 2))
	add(def(0x66, ROR, ZeroPage, 5))
	add(def(0x76, ROR, ZeroPageX, 6))
	add(def(0x6E, ROR, Absolute, 6))
	add(def(0x7E, ROR, AbsoluteX, 7))

	// RTI / RTS
	add(def(0x40, RTI, Implied, 6))
	add(def(0x60, RTS, Implied, 6))

	// SBC
	add(def(0xE9, SBC, Immediate, 2))
	add(def(0xE5, SBC, ZeroPage, 3))
	add(def(0xF5, SBC, ZeroPageX, 4))
	add(def(0xED, SBC, Absolute, 4))
	add(def(0xFD, SBC, AbsoluteX, 4))
	add(def(0xF9, SBC, AbsoluteY, 4))
	add(def(0xE1, SBC, IndexedIndirect, 6))
	add(def(0xF1, SBC, IndirectIndexed, 5))

	// STA / STX / STY
	add(def(0x85, STA, ZeroPage, 3))
	add(def(0x95, STA, ZeroPageX, 4))
	add(def(0x8D, STA, Absolute, 4))
	add(def(0x9D, STA, AbsoluteX, 5))
	add(def(0x99, STA, AbsoluteY, 5))
	add(def(0x81, STA, IndexedIndirect, 6))
	add(def(0x91, STA, IndirectIndexed, 6))
	add(def(0x86, STX, ZeroPage, 3))
	add(def(0x96, STX, ZeroPageY, 4))
	add(def(0x8E, STX, Absolute, 4))
	add(def(0x84, STY, ZeroPage, 3))
	add(def(0x94, STY, ZeroPageX, 4))
	add(def(0x8C, STY, Absolute, 4))

	// register transfers
	add(def(0xAA, TAX, Implied, 2))
	add(def(0xA8, TAY, Implied, 2))
	add(def(0xBA, TSX, Implied, 2))
	add(def(0x8A, TXA, Implied, 2))
	add(def(0x9A, TXS, Implied, 2))
	add(def(0x98, TYA, Implied, 2))

	return t
}
