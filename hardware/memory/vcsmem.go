// Package memory composes the TIA, PIA RAM, RIOT ports/timer and cartridge
// into the single 13-bit address space the 6507 sees, and implements the
// bus package's interfaces around that composition. This is the one place
// in the core where an address gets decoded; every subsystem above it only
// ever sees Read/Write/Peek/Poke.
package memory

import (
	"github.com/retrosilicon/vcs2600/hardware/cartridge"
	"github.com/retrosilicon/vcs2600/hardware/memory/addresses"
	"github.com/retrosilicon/vcs2600/hardware/memory/bus"
	"github.com/retrosilicon/vcs2600/hardware/riot"
	"github.com/retrosilicon/vcs2600/hardware/tia"
)

// VCS is the CPU-visible memory map.
type VCS struct {
	ram   [128]uint8
	cart  *cartridge.Cartridge
	tia   *tia.TIA
	timer *riot.Timer
	ports *riot.Ports
	halt  bus.Halter
}

// New wires a memory map around the given chips. halt may be nil at
// construction time and supplied later with SetHalter, since the CPU that
// implements it is typically constructed with this map as its own Memory
// argument.
func New(cart *cartridge.Cartridge, t *tia.TIA, timer *riot.Timer, ports *riot.Ports, halt bus.Halter) *VCS {
	return &VCS{cart: cart, tia: t, timer: timer, ports: ports, halt: halt}
}

// SetHalter wires the CPU in after construction, breaking the
// memory-needs-CPU / CPU-needs-memory construction cycle.
func (m *VCS) SetHalter(halt bus.Halter) { m.halt = halt }

func normalise(address uint16) uint16 {
	return address & addresses.AddressMask
}

// Read implements bus.CPUBus. INSTAT is the only address with a read side
// effect: it clears bit 6 ("underflowed since last read") after returning
// it; the bit 7 underflow latch is left set.
func (m *VCS) Read(address uint16) (uint8, error) {
	addr := normalise(address)

	switch {
	case addr >= addresses.CartridgeLo && addr <= addresses.CartridgeHi:
		return m.cart.Read(addr), nil
	case addr >= addresses.RAMLo && addr <= addresses.RAMHi:
		return m.ram[addr-addresses.RAMLo], nil
	case addr >= addresses.TIAReadLo && addr <= addresses.TIAReadHi:
		return m.tia.Read(addr), nil
	case addr == addresses.SWCHA:
		return m.ports.SWCHA, nil
	case addr == addresses.SWACNT:
		return m.ports.SWACNT, nil
	case addr == addresses.SWCHB:
		return m.ports.SWCHB, nil
	case addr == addresses.SWBCNT:
		return m.ports.SWBCNT, nil
	case addr == addresses.INTIM:
		return m.timer.Value(), nil
	case addr == addresses.INSTAT:
		return m.timer.ReadStatus(), nil
	default:
		return 0, nil
	}
}

// Write implements bus.CPUBus, dispatching every architectural side effect
// named in the memory map: WSYNC halts the CPU, the timer reload registers
// reload INTIM, and every other TIA write-window address is forwarded to
// the TIA's own strobe handling. Writes to ROM or unmapped addresses are
// silently dropped.
func (m *VCS) Write(address uint16, value uint8) error {
	addr := normalise(address)

	switch {
	case addr >= addresses.CartridgeLo && addr <= addresses.CartridgeHi:
		m.cart.Write(addr, value)
	case addr >= addresses.RAMLo && addr <= addresses.RAMHi:
		m.ram[addr-addresses.RAMLo] = value
	case addr == addresses.WSYNC:
		m.halt.SetHalt(true)
	case addr >= addresses.TIAWriteLo && addr <= addresses.TIAWriteHi:
		m.tia.Write(addr, value)
	case addr == addresses.SWCHA:
		m.ports.SWCHA = value
	case addr == addresses.SWACNT:
		m.ports.SWACNT = value
	case addr == addresses.SWCHB:
		m.ports.SWCHB = value
	case addr == addresses.SWBCNT:
		m.ports.SWBCNT = value
	case addr == addresses.TIM1T:
		m.timer.Reload(value, 1)
	case addr == addresses.TIM8T:
		m.timer.Reload(value, 8)
	case addr == addresses.TIM64T:
		m.timer.Reload(value, 64)
	case addr == addresses.T1024T:
		m.timer.Reload(value, 1024)
	}
	return nil
}

// Peek implements bus.DebuggerBus: same backing store as Read, but INSTAT's
// clear-on-read side effect is skipped so inspection never perturbs timer
// state.
func (m *VCS) Peek(address uint16) (uint8, error) {
	addr := normalise(address)
	if addr == addresses.INSTAT {
		return m.timer.Status(), nil
	}
	return m.Read(addr)
}

// Poke implements bus.DebuggerBus. RAM has no side effects to bypass, so it
// is written directly. A Poke into the cartridge window is dropped, since
// the ROM has no writable store. TIA and RIOT
// registers have no side-effect-free setter of their own in this core, so
// poking one of their addresses still runs the matching strobe or reload;
// this is a known limitation of the debugger surface, not a correctness
// issue for ordinary CPU-driven traffic, which never calls Poke.
func (m *VCS) Poke(address uint16, value uint8) error {
	addr := normalise(address)
	switch {
	case addr >= addresses.RAMLo && addr <= addresses.RAMHi:
		m.ram[addr-addresses.RAMLo] = value
		return nil
	case addr >= addresses.CartridgeLo && addr <= addresses.CartridgeHi:
		m.cart.Write(addr, value)
		return nil
	default:
		return m.Write(addr, value)
	}
}

// SetSWCHA and SetInput implement controller.VCS, letting a plugged
// controller drive joystick/button input without holding its own bus
// reference. SetSWCHA only replaces the bits under mask, so the two
// joystick ports' nibbles can be written independently.
func (m *VCS) SetSWCHA(mask, bits uint8) {
	m.ports.SWCHA = (m.ports.SWCHA &^ mask) | (bits & mask)
}
func (m *VCS) SetInput(port int, value uint8) { m.tia.SetInput(port, value) }
