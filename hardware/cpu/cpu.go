// Package cpu implements the 6507: the decoded-and-dispatched instruction
// engine, using the instructions package's table as data and the registers
// package for register storage. It knows nothing about the TIA or the
// timer; it only knows how to read and write bytes through the Memory
// interface handed to it at construction, and how many cycles each
// instruction consumed.
package cpu

import (
	"fmt"

	"github.com/retrosilicon/vcs2600/hardware/cpu/execution"
	"github.com/retrosilicon/vcs2600/hardware/cpu/instructions"
	"github.com/retrosilicon/vcs2600/hardware/cpu/registers"
	"github.com/retrosilicon/vcs2600/hardware/vcserr"
	"github.com/retrosilicon/vcs2600/logger"
)

// Memory is everything the CPU needs from the bus: masked, side-effecting
// byte reads and writes. The CPU never touches chip state any other way.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// ResetVector is the address the 6507 boots into on a VCS: the very start
// of the 4 KiB cartridge ROM window.
const ResetVector = 0xf000

// CPU implements the 6507 found in the Atari 2600.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.Status

	mem Memory

	// Halt mirrors the WSYNC latch: while true, Step must not be called;
	// the console clears it when the TIA reports the next line boundary. Exposed so
	// the console's scheduler can poll it without reaching into the bus.
	Halt bool

	// LastResult records the outcome of the most recently executed
	// instruction (see execution.Result).
	LastResult execution.Result
}

// New constructs a CPU in the VCS's documented power-on state: PC at the
// start of the ROM window, every flag set, stack pointer at the top of PIA
// RAM, and the general registers zeroed.
func New(mem Memory) *CPU {
	c := &CPU{
		PC:     registers.NewProgramCounter(ResetVector),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewStackPointer(0xff),
		Status: registers.NewStatus(),
		mem:    mem,
	}
	return c
}

// SetHalt drives the WSYNC latch. The bus calls this on a WSYNC write; the
// console clears it again once the TIA reports a completed line.
func (c *CPU) SetHalt(halt bool) { c.Halt = halt }

// Halted reports whether Step must not be called this cycle.
func (c *CPU) Halted() bool { return c.Halt }

func (c *CPU) String() string {
	return fmt.Sprintf("PC=%s A=%s X=%s Y=%s SP=%s P=%s", c.PC, c.A, c.X, c.Y, c.SP, c.Status)
}

func (c *CPU) read(addr uint16) uint8 {
	v, err := c.mem.Read(addr)
	if err != nil {
		panic(err)
	}
	return v
}

func (c *CPU) write(addr uint16, v uint8) {
	if err := c.mem.Write(addr, v); err != nil {
		panic(err)
	}
}

func (c *CPU) fetch() uint8 {
	v := c.read(c.PC.Value())
	c.PC.Inc()
	return v
}

func (c *CPU) push(v uint8) {
	if c.SP.Value() < 0x80 {
		panic(vcserr.Errorf(vcserr.StackOverflow, c.SP.Value()))
	}
	c.write(c.SP.Address(), v)
	c.SP.Push()
}

func (c *CPU) pull() uint8 {
	if c.SP.Value() == 0xff {
		panic(vcserr.Errorf(vcserr.StackUnderflow, c.SP.Value()))
	}
	c.SP.Pull()
	return c.read(c.SP.Address())
}

func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.read(addr))
	hi := uint16(c.read(addr + 1))
	return hi<<8 | lo
}

// readIndirect16 reproduces the classic 6502 JMP (ind) page-wrap bug: if
// addr's low byte is 0xff, the high byte is fetched from offset 0x00 of the
// *same* page rather than the start of the next page.
func (c *CPU) readIndirect16(addr uint16) uint16 {
	lo := uint16(c.read(addr))
	hiAddr := (addr & 0xff00) | ((addr + 1) & 0x00ff)
	hi := uint16(c.read(hiAddr))
	return hi<<8 | lo
}

// operand resolves the effective address for every addressing mode other
// than Implied, Accumulator, Relative and Indirect (which are handled inline
// by the instructions that use them; JMP (ind) reads its pointer as Absolute
// and then calls readIndirect16). It returns the effective address and
// whether the indexed computation crossed a page boundary.
func (c *CPU) operand(mode instructions.AddressingMode) (addr uint16, pageCrossed bool) {
	switch mode {
	case instructions.Immediate:
		addr = c.PC.Value()
		c.PC.Inc()
	case instructions.ZeroPage:
		addr = uint16(c.fetch())
	case instructions.ZeroPageX:
		addr = uint16(c.fetch() + c.X.Value())
	case instructions.ZeroPageY:
		addr = uint16(c.fetch() + c.Y.Value())
	case instructions.Absolute:
		lo := c.fetch()
		hi := c.fetch()
		addr = uint16(hi)<<8 | uint16(lo)
	case instructions.AbsoluteX:
		lo := c.fetch()
		hi := c.fetch()
		base := uint16(hi)<<8 | uint16(lo)
		addr = base + uint16(c.X.Value())
		pageCrossed = (base & 0xff00) != (addr & 0xff00)
	case instructions.AbsoluteY:
		lo := c.fetch()
		hi := c.fetch()
		base := uint16(hi)<<8 | uint16(lo)
		addr = base + uint16(c.Y.Value())
		pageCrossed = (base & 0xff00) != (addr & 0xff00)
	case instructions.IndexedIndirect:
		zp := c.fetch() + c.X.Value()
		lo := uint16(c.read(uint16(zp)))
		hi := uint16(c.read(uint16(zp + 1)))
		addr = hi<<8 | lo
	case instructions.IndirectIndexed:
		zp := c.fetch()
		lo := uint16(c.read(uint16(zp)))
		hi := uint16(c.read(uint16(zp + 1)))
		base := hi<<8 | lo
		addr = base + uint16(c.Y.Value())
		pageCrossed = (base & 0xff00) != (addr & 0xff00)
	default:
		panic(fmt.Sprintf("cpu: operand() called with non-memory addressing mode %s", mode))
	}
	return addr, pageCrossed
}

// Step fetches, decodes and executes one instruction, returning the number
// of CPU cycles it consumed. It must not be called while Halt is true.
func (c *CPU) Step() int {
	c.LastResult.Reset()

	addr := c.PC.Value()
	c.LastResult.Address = addr
	opcode := c.fetch()

	defn := instructions.Definitions[opcode]
	if defn == nil {
		logger.Logf("cpu", "unrecognised opcode %#02x at %#04x, treating as NOP", opcode, addr)
		return 0
	}
	c.LastResult.Defn = defn

	cycles := defn.Cycles

	if defn.IsBranch() {
		cycles, _ = c.branch(defn)
	} else {
		pageCrossed := c.execute(defn)
		if pageCrossed && defn.AddressingMode.PageSensitive() && defn.Operator.PageCrossAddsCycle() {
			cycles++
		}
	}

	c.LastResult.Cycles = cycles
	return cycles
}

// branch executes one of the eight conditional branch instructions,
// returning the total cycle count: the base 2, plus 1 if taken, plus 1
// more if the branch target is on a different page than the following
// instruction.
func (c *CPU) branch(defn *instructions.Definition) (cycles int, taken bool) {
	offset := int8(c.fetch())

	taken = c.branchCondition(defn.Operator)
	cycles = defn.Cycles

	if taken {
		c.LastResult.BranchTaken = true
		cycles++
		if c.PC.AddSigned(offset) {
			c.LastResult.PageCrossed = true
			cycles++
		}
	}
	return cycles, taken
}

func (c *CPU) branchCondition(op instructions.Operator) bool {
	switch op {
	case instructions.BCC:
		return !c.Status.Carry
	case instructions.BCS:
		return c.Status.Carry
	case instructions.BEQ:
		return c.Status.Zero
	case instructions.BNE:
		return !c.Status.Zero
	case instructions.BMI:
		return c.Status.Negative
	case instructions.BPL:
		return !c.Status.Negative
	case instructions.BVC:
		return !c.Status.Overflow
	case instructions.BVS:
		return c.Status.Overflow
	}
	panic(fmt.Sprintf("cpu: %s is not a branch operator", op))
}
