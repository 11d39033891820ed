// Package controller defines the Console's input-source contract and a
// sample digital joystick implementation. The core ships no device or HID
// layer: a Controller is anything that knows how to poke SWCHA bits and
// INPTx mailboxes on behalf of some external input source.
package controller

// VCS is the subset of the console that a Controller needs to drive input
// registers. Defined here (rather than importing the hardware package
// directly) so the Console can own controllers as plain values instead of
// a back-reference cycle: the Console passes itself as this interface on
// every poll.
//
// SetSWCHA takes a mask so that two controllers plugged into the two
// joystick ports, each owning one nibble of the shared SWCHA byte, can be
// polled independently without one clobbering the other's nibble.
type VCS interface {
	SetSWCHA(mask, bits uint8)
	SetInput(port int, value uint8)
}

// Controller is polled once per Update call, after the cycle loop has run,
// and writes whatever input state it holds into the console's registers.
type Controller interface {
	Poll(vcs VCS)
}

// Joystick port bit layout within SWCHA: the left four bits are player 0,
// the right four are player 1.
const (
	p0Right = 0x10
	p0Left  = 0x20
	p0Down  = 0x40
	p0Up    = 0x80
	p1Right = 0x01
	p1Left  = 0x02
	p1Down  = 0x04
	p1Up    = 0x08
)

// Port identifies which joystick port a DigitalJoystick is plugged into.
type Port int

const (
	Port0 Port = iota
	Port1
)

// DigitalJoystick is the canonical example of a Controller: a host drives
// its Set* methods from whatever real input source it has (keyboard,
// gamepad, network), and Poll writes the accumulated state into SWCHA and
// the fire-button INPT mailbox on every tick.
type DigitalJoystick struct {
	port                          Port
	up, down, left, right, button bool
}

// NewDigitalJoystick returns a joystick plugged into the given port, with
// no directions held and the fire button released.
func NewDigitalJoystick(port Port) *DigitalJoystick {
	return &DigitalJoystick{port: port}
}

func (j *DigitalJoystick) SetUp(held bool)    { j.up = held }
func (j *DigitalJoystick) SetDown(held bool)  { j.down = held }
func (j *DigitalJoystick) SetLeft(held bool)  { j.left = held }
func (j *DigitalJoystick) SetRight(held bool) { j.right = held }
func (j *DigitalJoystick) SetFire(held bool)  { j.button = held }

// Poll writes the joystick's current state into its own nibble of SWCHA
// (directions, active low) and the matching INPT fire-button mailbox
// (bit 7, active low, per the VCS's documented potentiometer/button
// wiring). It only ever touches its own nibble's mask, so a joystick
// plugged into Port1 cannot clobber Port0's directions and vice versa.
func (j *DigitalJoystick) Poll(vcs VCS) {
	var bits, mask uint8
	inptPort := 4
	if j.port == Port0 {
		mask = p0Up | p0Down | p0Left | p0Right
		if j.up {
			bits |= p0Up
		}
		if j.down {
			bits |= p0Down
		}
		if j.left {
			bits |= p0Left
		}
		if j.right {
			bits |= p0Right
		}
		inptPort = 4
	} else {
		mask = p1Up | p1Down | p1Left | p1Right
		if j.up {
			bits |= p1Up
		}
		if j.down {
			bits |= p1Down
		}
		if j.left {
			bits |= p1Left
		}
		if j.right {
			bits |= p1Right
		}
		inptPort = 5
	}

	// Directions are active low: held bits read as 0.
	vcs.SetSWCHA(mask, ^bits)

	var inpt uint8 = 0x80
	if j.button {
		inpt = 0x00
	}
	vcs.SetInput(inptPort, inpt)
}
