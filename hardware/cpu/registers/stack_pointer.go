package registers

import "fmt"

// StackPointer addresses the 128-byte PIA RAM window (0x80-0xff) that the
// 6507 uses as its stack; it pushes downward from 0xff.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns the canonical name of the stack pointer register.
func (sp StackPointer) Label() string { return "SP" }

func (sp StackPointer) String() string { return fmt.Sprintf("%02x", sp.value) }

// Value returns the current stack pointer value.
func (sp StackPointer) Value() uint8 { return sp.value }

// Load overwrites the stack pointer.
func (sp *StackPointer) Load(v uint8) { sp.value = v }

// Address returns the bus address (0x0080-0x00ff) the stack pointer
// currently refers to. Unlike the full 6502's 0x0100-prefixed stack page,
// the 6507 only brings out 13 address lines, so the stack lives directly
// in the 128 bytes of PIA RAM at 0x0080-0x00ff.
func (sp StackPointer) Address() uint16 { return uint16(sp.value) }

// Push decrements the stack pointer, wrapping from 0x00 to 0xff.
func (sp *StackPointer) Push() { sp.value-- }

// Pull increments the stack pointer, wrapping from 0xff to 0x00.
func (sp *StackPointer) Pull() { sp.value++ }
