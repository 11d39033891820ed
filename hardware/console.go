// Package hardware is the composition root for the VCS emulation: it wires
// the CPU, TIA, PIA timer/ports and cartridge together behind a single
// address space and sequences them under a host-supplied elapsed-time
// stream. Sub-packages (cpu, tia, riot, memory, cartridge, television,
// controller) contain everything required for a headless emulation; this
// package owns an instance of all of them.
package hardware

import (
	"time"

	"github.com/retrosilicon/vcs2600/hardware/cartridge"
	"github.com/retrosilicon/vcs2600/hardware/clocks"
	"github.com/retrosilicon/vcs2600/hardware/controller"
	"github.com/retrosilicon/vcs2600/hardware/cpu"
	"github.com/retrosilicon/vcs2600/hardware/memory"
	"github.com/retrosilicon/vcs2600/hardware/riot"
	"github.com/retrosilicon/vcs2600/hardware/television"
	"github.com/retrosilicon/vcs2600/hardware/tia"
	"github.com/retrosilicon/vcs2600/hardware/vcserr"
)

// VCS owns every piece of mutable emulator state: bus-backed memory, CPU
// registers, beam position and the composed framebuffer. There is no reset
// operation other than discarding a VCS and building a new one with New.
type VCS struct {
	cpu   *cpu.CPU
	mem   *memory.VCS
	tia   *tia.TIA
	timer *riot.Timer
	ports *riot.Ports
	fb    *television.Framebuffer

	controllers [2]controller.Controller

	elapsedTime     time.Duration
	remainingCycles int
}

// New constructs a VCS with cart mapped into 0x1000-0x1fff and every other
// subsystem in its documented power-on state.
func New(cart *cartridge.Cartridge) *VCS {
	v := &VCS{
		fb:    television.NewFramebuffer(),
		timer: riot.NewTimer(),
		ports: riot.NewPorts(),
	}
	v.tia = tia.New(v.fb)
	v.mem = memory.New(cart, v.tia, v.timer, v.ports, nil)
	v.cpu = cpu.New(v.mem)
	v.mem.SetHalter(v.cpu)
	return v
}

// Update advances the simulation by dt of elapsed wall-clock time. dt
// accumulates into a whole-CPU-cycle counter; cycles are then spent for as
// long as at least ten remain (the maximum instruction length is 7, so 10
// always leaves room for one full instruction without overshooting): while
// the CPU is not halted it executes one instruction and ticks the TIA and
// timer once per cycle that instruction consumed; while halted on WSYNC it
// ticks the TIA and timer one cycle at a time until the TIA reports the
// halt released or no cycles remain.
func (v *VCS) Update(dt time.Duration) {
	v.elapsedTime += dt
	for v.elapsedTime >= clocks.CPUCycleDuration {
		v.elapsedTime -= clocks.CPUCycleDuration
		v.remainingCycles++
	}

	for v.remainingCycles >= 10 {
		if !v.cpu.Halted() {
			cycles := v.cpu.Step()
			v.remainingCycles -= cycles
			for i := 0; i < cycles; i++ {
				releaseHalt, _ := v.tia.Tick()
				v.timer.Tick()
				if releaseHalt {
					v.cpu.SetHalt(false)
				}
			}
			v.timer.ClearBlock()
		} else {
			for v.cpu.Halted() && v.remainingCycles > 0 {
				releaseHalt, _ := v.tia.Tick()
				v.timer.Tick()
				v.remainingCycles--
				if releaseHalt {
					v.cpu.SetHalt(false)
				}
			}
		}
	}

	if v.remainingCycles < 0 || v.remainingCycles >= 10 {
		panic(vcserr.Errorf(vcserr.CycleAccountingFault, v.remainingCycles))
	}

	for _, c := range v.controllers {
		if c != nil {
			c.Poll(v)
		}
	}
}

// PlugController registers a controller in slot 0 or 1. It is polled once
// per Update call, after the cycle loop, and writes whatever input state it
// holds into SWCHA/INPTx.
func (v *VCS) PlugController(slot int, c controller.Controller) {
	v.controllers[slot] = c
}

// PressResetButton and ReleaseResetButton drive bit 0 of SWCHB (active low).
func (v *VCS) PressResetButton()   { v.ports.SetResetPressed(true) }
func (v *VCS) ReleaseResetButton() { v.ports.SetResetPressed(false) }

// SetTVTypeSwitch and TVTypeSwitch drive and read bit 3 of SWCHB.
func (v *VCS) SetTVTypeSwitch(ty riot.TVType) { v.ports.SetTVType(ty) }
func (v *VCS) TVTypeSwitch() riot.TVType      { return v.ports.GetTVType() }

// SetDifficultySwitch and DifficultySwitch drive and read bits 6 and 7 of
// SWCHB.
func (v *VCS) SetDifficultySwitch(player riot.Player, d riot.Difficulty) {
	v.ports.SetDifficulty(player, d)
}
func (v *VCS) DifficultySwitch(player riot.Player) riot.Difficulty {
	return v.ports.GetDifficulty(player)
}

// Framebuffer returns the most recently composed frame.
func (v *VCS) Framebuffer() *television.Framebuffer { return v.fb }

// CPU exposes the 6507 for inspection (tests, debuggers); nothing in the
// core mutates it other than Update.
func (v *VCS) CPU() *cpu.CPU { return v.cpu }

// SetSWCHA and SetInput implement controller.VCS, letting a plugged
// controller drive input registers through the VCS rather than holding its
// own bus reference.
func (v *VCS) SetSWCHA(mask, bits uint8)      { v.mem.SetSWCHA(mask, bits) }
func (v *VCS) SetInput(port int, value uint8) { v.mem.SetInput(port, value) }
