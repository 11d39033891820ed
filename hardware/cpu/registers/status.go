package registers

import "strings"

// Status is the 6507 flags register: seven independent boolean flags,
// encoded NVxBDIZC when pushed to the stack by PHP/BRK. The unused bit 5
// has no backing flag and is packed as 0.
type Status struct {
	Negative         bool
	Overflow         bool
	Break            bool
	Decimal          bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatus returns a status register with every flag set, matching the
// VCS's documented power-on state.
func NewStatus() Status {
	s := Status{}
	s.Load(0xff)
	return s
}

// Label returns the canonical name of the status register.
func (s Status) Label() string { return "P" }

func (s Status) String() string {
	var b strings.Builder
	write := func(set bool, c byte) {
		if set {
			b.WriteByte(c)
		} else {
			b.WriteByte(c - 'A' + 'a')
		}
	}
	write(s.Negative, 'N')
	write(s.Overflow, 'V')
	b.WriteByte('-')
	write(s.Break, 'B')
	write(s.Decimal, 'D')
	write(s.InterruptDisable, 'I')
	write(s.Zero, 'Z')
	write(s.Carry, 'C')
	return b.String()
}

// Value packs the flags into the canonical NVxBDIZC byte used by PHP/BRK.
// Bit 5 has no backing flag in this model: PHP pushes the seven real flags
// verbatim and leaves it 0, which is what distinguishes this core's pushed
// byte from a real 6502's (where bit 5 always reads back 1).
func (s Status) Value() uint8 {
	var v uint8
	if s.Negative {
		v |= 0x80
	}
	if s.Overflow {
		v |= 0x40
	}
	if s.Break {
		v |= 0x10
	}
	if s.Decimal {
		v |= 0x08
	}
	if s.InterruptDisable {
		v |= 0x04
	}
	if s.Zero {
		v |= 0x02
	}
	if s.Carry {
		v |= 0x01
	}
	return v
}

// Load sets every flag from the bits of v, as when pulled by PLP/RTI.
func (s *Status) Load(v uint8) {
	s.Negative = v&0x80 != 0
	s.Overflow = v&0x40 != 0
	s.Break = v&0x10 != 0
	s.Decimal = v&0x08 != 0
	s.InterruptDisable = v&0x04 != 0
	s.Zero = v&0x02 != 0
	s.Carry = v&0x01 != 0
}

// SetZN sets the Zero and Negative flags from the given result byte, the
// rule shared by almost every load/arithmetic/logic instruction.
func (s *Status) SetZN(result uint8) {
	s.Zero = result == 0
	s.Negative = result&0x80 != 0
}
