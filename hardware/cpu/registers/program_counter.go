package registers

import "fmt"

// ProgramCounter is the 6507's 16-bit program counter. Only the low 13
// bits are ever meaningful on the bus, but the register itself is not
// masked so that arithmetic (e.g. branch offsets) behaves exactly like a
// real 16-bit counter before the bus masks it on the next fetch.
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter is the preferred method of initialisation.
func NewProgramCounter(val uint16) ProgramCounter {
	return ProgramCounter{value: val}
}

// Label returns the canonical name of the program counter.
func (pc ProgramCounter) Label() string { return "PC" }

func (pc ProgramCounter) String() string { return fmt.Sprintf("%04x", pc.value) }

// Value returns the current program counter value.
func (pc ProgramCounter) Value() uint16 { return pc.value }

// Load overwrites the program counter.
func (pc *ProgramCounter) Load(v uint16) { pc.value = v }

// Inc advances the program counter by one, wrapping at 0xffff.
func (pc *ProgramCounter) Inc() { pc.value++ }

// AddSigned adds a signed 8-bit relative offset to the program counter, as
// used by the branch instructions. It reports whether the addition crossed
// a 256-byte page boundary, which costs the branch an extra cycle.
func (pc *ProgramCounter) AddSigned(offset int8) (pageCrossed bool) {
	before := pc.value
	pc.value = uint16(int32(pc.value) + int32(offset))
	return before&0xff00 != pc.value&0xff00
}
