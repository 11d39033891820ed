package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrosilicon/vcs2600/hardware/cartridge"
	"github.com/retrosilicon/vcs2600/hardware/memory"
	"github.com/retrosilicon/vcs2600/hardware/memory/addresses"
	"github.com/retrosilicon/vcs2600/hardware/riot"
	"github.com/retrosilicon/vcs2600/hardware/television"
	"github.com/retrosilicon/vcs2600/hardware/tia"
)

type fakeHalter struct{ halted bool }

func (f *fakeHalter) SetHalt(h bool) { f.halted = h }

func newVCS(t *testing.T) (*memory.VCS, *fakeHalter) {
	t.Helper()
	rom := make([]byte, cartridge.Size)
	rom[0] = 0xa9
	cart, err := cartridge.Load(rom)
	require.NoError(t, err)

	halt := &fakeHalter{}
	m := memory.New(cart, tia.New(television.NewFramebuffer()), riot.NewTimer(), riot.NewPorts(), halt)
	return m, halt
}

func TestCartridgeWindowReadBack(t *testing.T) {
	m, _ := newVCS(t)
	v, err := m.Read(addresses.CartridgeLo)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xa9), v)
}

func TestRAMReadAfterWrite(t *testing.T) {
	m, _ := newVCS(t)
	require.NoError(t, m.Write(addresses.RAMLo+5, 0x42))
	v, err := m.Read(addresses.RAMLo + 5)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), v)
}

func TestWSYNCWriteSetsHalt(t *testing.T) {
	m, halt := newVCS(t)
	require.NoError(t, m.Write(addresses.WSYNC, 0))
	assert.True(t, halt.halted)
}

func TestTIMxTReloadRoundTripsThroughINTIM(t *testing.T) {
	m, _ := newVCS(t)
	require.NoError(t, m.Write(addresses.TIM64T, 0x10))
	v, err := m.Read(addresses.INTIM)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x10), v)
}

func TestUnmappedAddressReadsZeroAndWriteIsSilent(t *testing.T) {
	m, _ := newVCS(t)
	const unmapped = 0x0288 // between INSTAT and TIM1T, unmapped
	require.NoError(t, m.Write(unmapped, 0xff))
	v, err := m.Read(unmapped)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), v)
}

func TestAddressMaskingIsIdempotent(t *testing.T) {
	m, _ := newVCS(t)
	require.NoError(t, m.Write(addresses.RAMLo+5, 0x99))

	v1, err := m.Read(addresses.RAMLo + 5)
	require.NoError(t, err)
	v2, err := m.Read(addresses.RAMLo + 5 + 0x2000) // bits above 13 ignored
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
}

func TestPeekDoesNotClearINSTATAckBit(t *testing.T) {
	cart, err := cartridge.Load(make([]byte, cartridge.Size))
	require.NoError(t, err)
	timer := riot.NewTimer()
	m := memory.New(cart, tia.New(television.NewFramebuffer()), timer, riot.NewPorts(), &fakeHalter{})
	require.NoError(t, m.Write(addresses.TIM1T, 0))

	// Let INTIM underflow so that INSTAT bits 7 and 6 are both latched.
	timer.ClearBlock()
	timer.Tick()

	for i := 0; i < 3; i++ {
		_, err := m.Peek(addresses.INSTAT)
		require.NoError(t, err)
	}
	before, err := m.Peek(addresses.INSTAT)
	require.NoError(t, err)
	assert.NotZero(t, before&0x40, "ack bit still latched after repeated Peeks")
	after, err := m.Peek(addresses.INSTAT)
	require.NoError(t, err)
	assert.Equal(t, before, after, "Peek never perturbs INSTAT")
}

func TestPokeRAMBypassesOrdinaryWritePath(t *testing.T) {
	m, halt := newVCS(t)
	require.NoError(t, m.Poke(addresses.RAMLo, 0x55))
	v, err := m.Read(addresses.RAMLo)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x55), v)
	assert.False(t, halt.halted, "poking RAM must not run WSYNC's side effect")
}
