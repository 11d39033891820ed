// Package clocks defines the constant values that govern the speed of the
// VCS main clock and the derived TIA color clock.
//
// Values taken from:
// http://www.taswegian.com/WoodgrainWizard/tiki-index.php?page=Clock-Speeds
package clocks

import "time"

// ColorCyclesPerCPUCycle is the number of TIA color clocks that elapse for
// every 6507 CPU cycle.
const ColorCyclesPerCPUCycle = 3

// ScanlineColorCycles is the number of TIA color clocks in one scanline,
// including horizontal blank.
const ScanlineColorCycles = 228

// ScanlinesPerFrame is the total number of scanlines in one NTSC frame,
// including vertical sync, vertical blank and overscan.
const ScanlinesPerFrame = 262

// CPUFrequencyHz is the NTSC 6507 clock frequency, derived from 228*262
// color cycles per frame at 59.94Hz, three color cycles per CPU cycle.
const CPUFrequencyHz = 1193525

// CPUCycleDuration is the period of one CPU cycle, the normative constant
// used to convert an elapsed wall-clock duration into a number of CPU
// cycles to execute.
const CPUCycleDuration = time.Second / CPUFrequencyHz
