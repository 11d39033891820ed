package cpu

import (
	"github.com/retrosilicon/vcs2600/hardware/cpu/instructions"
)

// IRQVector is where BRK and (in a fuller interrupt model) IRQ load the
// program counter from. The VCS has no interrupt controller wired to the
// 6507's IRQ pin, so in practice this is whatever two bytes sit at the top
// of the mapped cartridge bank.
const IRQVector = 0xfffe

// execute dispatches every non-branch operator. It returns whether the
// addressing mode's computed address crossed a page boundary, which Step
// turns into an extra cycle for the operators that care (see
// instructions.Operator.PageCrossAddsCycle).
func (c *CPU) execute(defn *instructions.Definition) (pageCrossed bool) {
	mode := defn.AddressingMode

	switch defn.Operator {
	case instructions.ADC:
		addr, pc := c.operand(mode)
		pageCrossed = pc
		c.adc(c.read(addr))

	case instructions.SBC:
		addr, pc := c.operand(mode)
		pageCrossed = pc
		c.sbc(c.read(addr))

	case instructions.AND:
		addr, pc := c.operand(mode)
		pageCrossed = pc
		c.A.Load(c.A.Value() & c.read(addr))
		c.Status.SetZN(c.A.Value())

	case instructions.ORA:
		addr, pc := c.operand(mode)
		pageCrossed = pc
		c.A.Load(c.A.Value() | c.read(addr))
		c.Status.SetZN(c.A.Value())

	case instructions.EOR:
		addr, pc := c.operand(mode)
		pageCrossed = pc
		c.A.Load(c.A.Value() ^ c.read(addr))
		c.Status.SetZN(c.A.Value())

	case instructions.ASL:
		c.shift(mode, func(v uint8) (uint8, bool) { return v << 1, v&0x80 != 0 })

	case instructions.LSR:
		c.shift(mode, func(v uint8) (uint8, bool) { return v >> 1, v&0x01 != 0 })

	case instructions.ROL:
		carryIn := c.Status.Carry
		c.shift(mode, func(v uint8) (uint8, bool) {
			out := v<<1 | b2u8(carryIn)
			return out, v&0x80 != 0
		})

	case instructions.ROR:
		carryIn := c.Status.Carry
		c.shift(mode, func(v uint8) (uint8, bool) {
			out := v>>1 | (b2u8(carryIn) << 7)
			return out, v&0x01 != 0
		})

	case instructions.BIT:
		addr, _ := c.operand(mode)
		v := c.read(addr)
		c.Status.Overflow = v&0x40 != 0
		c.Status.Negative = v&0x80 != 0
		c.Status.Zero = c.A.Value()&v == 0

	case instructions.CMP:
		addr, pc := c.operand(mode)
		pageCrossed = pc
		c.compare(c.A.Value(), c.read(addr))

	case instructions.CPX:
		addr, _ := c.operand(mode)
		c.compare(c.X.Value(), c.read(addr))

	case instructions.CPY:
		addr, _ := c.operand(mode)
		c.compare(c.Y.Value(), c.read(addr))

	case instructions.DEC:
		addr, _ := c.operand(mode)
		v := c.read(addr) - 1
		c.write(addr, v)
		c.Status.SetZN(v)

	case instructions.INC:
		addr, _ := c.operand(mode)
		v := c.read(addr) + 1
		c.write(addr, v)
		c.Status.SetZN(v)

	case instructions.DEX:
		c.X.Load(c.X.Value() - 1)
		c.Status.SetZN(c.X.Value())

	case instructions.DEY:
		c.Y.Load(c.Y.Value() - 1)
		c.Status.SetZN(c.Y.Value())

	case instructions.INX:
		c.X.Load(c.X.Value() + 1)
		c.Status.SetZN(c.X.Value())

	case instructions.INY:
		c.Y.Load(c.Y.Value() + 1)
		c.Status.SetZN(c.Y.Value())

	case instructions.LDA:
		addr, pc := c.operand(mode)
		pageCrossed = pc
		c.A.Load(c.read(addr))
		c.Status.SetZN(c.A.Value())

	case instructions.LDX:
		addr, pc := c.operand(mode)
		pageCrossed = pc
		c.X.Load(c.read(addr))
		c.Status.SetZN(c.X.Value())

	case instructions.LDY:
		addr, pc := c.operand(mode)
		pageCrossed = pc
		c.Y.Load(c.read(addr))
		c.Status.SetZN(c.Y.Value())

	case instructions.STA:
		addr, _ := c.operand(mode)
		c.write(addr, c.A.Value())

	case instructions.STX:
		addr, _ := c.operand(mode)
		c.write(addr, c.X.Value())

	case instructions.STY:
		addr, _ := c.operand(mode)
		c.write(addr, c.Y.Value())

	case instructions.TAX:
		c.X.Load(c.A.Value())
		c.Status.SetZN(c.X.Value())

	case instructions.TAY:
		c.Y.Load(c.A.Value())
		c.Status.SetZN(c.Y.Value())

	case instructions.TXA:
		c.A.Load(c.X.Value())
		c.Status.SetZN(c.A.Value())

	case instructions.TYA:
		c.A.Load(c.Y.Value())
		c.Status.SetZN(c.A.Value())

	case instructions.TSX:
		c.X.Load(c.SP.Value())
		c.Status.SetZN(c.X.Value())

	case instructions.TXS:
		c.SP.Load(c.X.Value())

	case instructions.CLC:
		c.Status.Carry = false
	case instructions.SEC:
		c.Status.Carry = true
	case instructions.CLD:
		c.Status.Decimal = false
	case instructions.SED:
		c.Status.Decimal = true
	case instructions.CLI:
		c.Status.InterruptDisable = false
	case instructions.SEI:
		c.Status.InterruptDisable = true
	case instructions.CLV:
		c.Status.Overflow = false

	case instructions.NOP:
		// nothing

	case instructions.PHA:
		c.push(c.A.Value())

	case instructions.PHP:
		c.push(c.Status.Value())

	case instructions.PLA:
		c.A.Load(c.pull())
		c.Status.SetZN(c.A.Value())

	case instructions.PLP:
		c.Status.Load(c.pull())

	case instructions.JMP:
		switch mode {
		case instructions.Absolute:
			addr, _ := c.operand(instructions.Absolute)
			c.PC.Load(addr)
		case instructions.Indirect:
			ptr, _ := c.operand(instructions.Absolute)
			c.PC.Load(c.readIndirect16(ptr))
		}

	case instructions.JSR:
		target, _ := c.operand(instructions.Absolute)
		ret := c.PC.Value() - 1
		c.push(uint8(ret >> 8))
		c.push(uint8(ret & 0xff))
		c.PC.Load(target)

	case instructions.RTS:
		lo := c.pull()
		hi := c.pull()
		c.PC.Load((uint16(hi)<<8 | uint16(lo)) + 1)

	case instructions.BRK:
		ret := c.PC.Value() + 1
		c.push(uint8(ret >> 8))
		c.push(uint8(ret & 0xff))
		status := c.Status
		status.Break = true
		c.push(status.Value())
		c.Status.InterruptDisable = true
		c.PC.Load(c.read16(IRQVector))

	case instructions.RTI:
		c.Status.Load(c.pull())
		lo := c.pull()
		hi := c.pull()
		c.PC.Load(uint16(hi)<<8 | uint16(lo))
	}

	return pageCrossed
}

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// adc implements A := A + M + C with the canonical 6502 carry/overflow
// rule: carry is unsigned overflow, overflow is set when the two operands
// share a sign that differs from the result's sign.
func (c *CPU) adc(m uint8) {
	carry, overflow := c.A.Add(m, c.Status.Carry)
	c.Status.Carry = carry
	c.Status.Overflow = overflow
	c.Status.SetZN(c.A.Value())
}

// sbc implements A := A - M - (1-C), equivalent to adding the one's
// complement of M with the existing carry (the classic 6502 trick, since
// "carry clear" means "borrow" on this CPU).
func (c *CPU) sbc(m uint8) {
	carry, overflow := c.A.Subtract(m, c.Status.Carry)
	c.Status.Carry = carry
	c.Status.Overflow = overflow
	c.Status.SetZN(c.A.Value())
}

// compare implements CMP/CPX/CPY: carry is set when register >= operand,
// zero/negative reflect the (unstored) subtraction result.
func (c *CPU) compare(register, operand uint8) {
	result := register - operand
	c.Status.Carry = register >= operand
	c.Status.SetZN(result)
}

// shift applies a shift/rotate function to either the accumulator or a
// memory operand, storing the result and updating carry/zero/negative.
func (c *CPU) shift(mode instructions.AddressingMode, f func(uint8) (result uint8, carryOut bool)) {
	if mode == instructions.Accumulator {
		result, carryOut := f(c.A.Value())
		c.A.Load(result)
		c.Status.Carry = carryOut
		c.Status.SetZN(result)
		return
	}

	addr, _ := c.operand(mode)
	v := c.read(addr)
	result, carryOut := f(v)
	c.write(addr, result)
	c.Status.Carry = carryOut
	c.Status.SetZN(result)
}
