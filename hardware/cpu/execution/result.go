// Package execution records the outcome of a single CPU.Step() call.
package execution

import "github.com/retrosilicon/vcs2600/hardware/cpu/instructions"

// Result records what happened during the most recently executed
// instruction: where it started, which definition it decoded to (nil for
// an unrecognised opcode), how many cycles it consumed, and whether a
// branch was taken and/or crossed a page boundary.
type Result struct {
	Address      uint16
	Defn         *instructions.Definition
	Cycles       int
	BranchTaken  bool
	PageCrossed  bool
}

// Reset clears the result, ready for the next instruction.
func (r *Result) Reset() {
	*r = Result{}
}
