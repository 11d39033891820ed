// Package vcserr defines the curated errors used throughout the VCS core.
//
// Modelled on the teacher's errors package: a small set of predefined
// messages that can be created with Errorf() and identified later with
// errors.Is(), rather than ad hoc fmt.Errorf() scattered through the core.
package vcserr

import (
	"errors"
	"fmt"
)

// Message is a predefined, curated error message. Values is an optional set
// of arguments used to format the message for display.
type Message string

const (
	// UnrecognisedOpcode means the CPU fetched a byte that does not appear
	// in the instruction definition table. Recoverable: the core logs and
	// treats it as a zero-cycle NOP.
	UnrecognisedOpcode Message = "unrecognised opcode (%#02x) at %#04x"

	// StackOverflow means a push was attempted when the stack pointer has
	// already moved below the bottom of the PIA RAM window (SP < 0x80); a
	// push at SP=0x80 itself is allowed. Fatal.
	StackOverflow Message = "stack overflow: push at SP=%#02x would leave PIA RAM"

	// StackUnderflow means a pop was attempted when the stack pointer is at
	// the top of its range (0xff) with nothing pushed. Fatal.
	StackUnderflow Message = "stack underflow: pop at SP=%#02x"

	// InvalidTimerInterval means the timer's prescaler was set to a value
	// outside {1, 8, 64, 1024}. Fatal: indicates a core bug, not a ROM bug.
	InvalidTimerInterval Message = "invalid timer interval: %d"

	// CycleAccountingFault means the time-to-cycles loop in Update() left
	// remainingCycles outside [0, 9] once it finished. Fatal: indicates a
	// core bug in the cycle-stepping algorithm.
	CycleAccountingFault Message = "cycle accounting fault: remaining cycles = %d"

	// CartridgeSize means a cartridge image was loaded with a byte length
	// this core does not know how to map into the ROM window.
	CartridgeSize Message = "unsupported cartridge size: %d bytes"
)

// curated wraps a Message and its formatting arguments so that the
// underlying Message can still be recovered with errors.Is.
type curated struct {
	msg    Message
	values []interface{}
}

func (c curated) Error() string {
	return fmt.Sprintf(string(c.msg), c.values...)
}

// Is allows errors.Is(err, SomeMessage) to succeed against a curated error,
// by comparing against the Message sentinel wrapped as an error.
func (c curated) Is(target error) bool {
	var m sentinel
	if errors.As(target, &m) {
		return m.msg == c.msg
	}
	return false
}

// sentinel lets a bare Message value be compared with errors.Is.
type sentinel struct {
	msg Message
}

func (s sentinel) Error() string { return string(s.msg) }

// Errorf creates a curated error from a predefined Message and its
// formatting arguments.
func Errorf(msg Message, values ...interface{}) error {
	return curated{msg: msg, values: values}
}

// Sentinel returns a bare error value suitable for use as the target of
// errors.Is() against errors created by Errorf() with the same Message.
func Sentinel(msg Message) error {
	return sentinel{msg: msg}
}
