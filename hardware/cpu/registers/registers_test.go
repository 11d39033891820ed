package registers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retrosilicon/vcs2600/hardware/cpu/registers"
)

func TestRegisterAddCarryAndOverflow(t *testing.T) {
	cases := []struct {
		name             string
		a, v             uint8
		carryIn          bool
		wantResult       uint8
		wantCarry        bool
		wantOverflow     bool
	}{
		{"no carry no overflow", 0x10, 0x20, false, 0x30, false, false},
		{"unsigned overflow sets carry", 0xff, 0x02, false, 0x01, true, false},
		{"signed overflow positive+positive", 0x50, 0x50, false, 0xa0, false, true},
		{"signed overflow negative+negative", 0x90, 0x90, false, 0x20, true, true},
		{"scenario 4 from spec", 0x43, 0x86, true, 0xca, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := registers.NewRegister(c.a, "A")
			carry, overflow := r.Add(c.v, c.carryIn)
			assert.Equal(t, c.wantResult, r.Value())
			assert.Equal(t, c.wantCarry, carry, "carry")
			assert.Equal(t, c.wantOverflow, overflow, "overflow")
		})
	}
}

func TestRegisterSubtractIsAddOfComplement(t *testing.T) {
	r := registers.NewRegister(0x50, "A")
	carry, _ := r.Subtract(0x10, true)
	assert.Equal(t, uint8(0x40), r.Value())
	assert.True(t, carry, "carry set means no borrow occurred")
}

func TestRegisterLoadAndFlags(t *testing.T) {
	r := registers.NewRegister(0, "X")
	r.Load(0x80)
	assert.True(t, r.IsNegative())
	assert.False(t, r.IsZero())

	r.Load(0)
	assert.False(t, r.IsNegative())
	assert.True(t, r.IsZero())
}

func TestStatusValueLoadRoundTrip(t *testing.T) {
	s := registers.NewStatus()
	for _, v := range []uint8{0x00, 0xff, 0xaa, 0x55, 0x8a} {
		s.Load(v)
		got := s.Value()
		// Bit 5 has no backing flag and always reads back 0.
		assert.Equal(t, v&^uint8(0x20), got)
	}
}

func TestStatusPHPEncodingScenario(t *testing.T) {
	// From the end-to-end PHP encoding scenario: N=1, V=0, B=0, D=1, I=0,
	// Z=1, C=0 packs to 0b10001010.
	var s registers.Status
	s.Negative = true
	s.Overflow = false
	s.Break = false
	s.Decimal = true
	s.InterruptDisable = false
	s.Zero = true
	s.Carry = false

	assert.Equal(t, uint8(0b10001010), s.Value())
}

func TestStackPointerAddressIsNotPageOffset(t *testing.T) {
	sp := registers.NewStackPointer(0xff)
	assert.Equal(t, uint16(0xff), sp.Address())

	sp.Push()
	assert.Equal(t, uint8(0xfe), sp.Value())
	assert.Equal(t, uint16(0xfe), sp.Address())

	sp.Load(0x00)
	sp.Pull()
	assert.Equal(t, uint8(0x01), sp.Value())
}

func TestProgramCounterAddSignedPageCross(t *testing.T) {
	pc := registers.NewProgramCounter(0x0005)
	crossed := pc.AddSigned(-128)
	assert.Equal(t, uint16(0xff85), pc.Value())
	assert.True(t, crossed)
}
