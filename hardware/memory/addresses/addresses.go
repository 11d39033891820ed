// Package addresses defines the canonical 13-bit VCS address map and the
// register name tables used for logging and debugging. Addresses here are
// already normalised (masked to 13 bits).
package addresses

// AddressMask is applied to every incoming CPU address before dispatch; the
// 6507 only brings out 13 address lines, so bits 13-15 are never connected.
const AddressMask = 0x1fff

const (
	// TIAWriteLo and TIAWriteHi bound the TIA write-register window.
	TIAWriteLo = 0x00
	TIAWriteHi = 0x2c

	// TIAReadLo and TIAReadHi bound the TIA read-register window.
	TIAReadLo = 0x30
	TIAReadHi = 0x3d

	// RAMLo and RAMHi bound the 128 bytes of PIA RAM, which doubles as the
	// CPU stack (addressed via 0x0100-0x01ff on a full 6502, but aliased
	// into 0x80-0xff here because only 13 address lines are wired).
	RAMLo = 0x0080
	RAMHi = 0x00ff

	// SWCHA through SWBCNT are the RIOT I/O ports.
	SWCHA  = 0x0280
	SWACNT = 0x0281
	SWCHB  = 0x0282
	SWBCNT = 0x0283

	// INTIM and INSTAT are the RIOT timer's read registers.
	INTIM  = 0x0284
	INSTAT = 0x0285

	// TIM1T through T1024T reload the RIOT timer at the named interval.
	TIM1T   = 0x0294
	TIM8T   = 0x0295
	TIM64T  = 0x0296
	T1024T  = 0x0297

	// CartridgeLo and CartridgeHi bound the 4 KiB cartridge ROM window.
	CartridgeLo = 0x1000
	CartridgeHi = 0x1fff
)

// TIA write-register offsets within the TIA write window (0x00-0x2c).
const (
	VSYNC  = 0x00
	VBLANK = 0x01
	WSYNC  = 0x02
	RSYNC  = 0x03
	NUSIZ0 = 0x04
	NUSIZ1 = 0x05
	COLUP0 = 0x06
	COLUP1 = 0x07
	COLUPF = 0x08
	COLUBK = 0x09
	CTRLPF = 0x0a
	REFP0  = 0x0b
	REFP1  = 0x0c
	PF0    = 0x0d
	PF1    = 0x0e
	PF2    = 0x0f
	RESP0  = 0x10
	RESP1  = 0x11
	RESM0  = 0x12
	RESM1  = 0x13
	RESBL  = 0x14
	AUDC0  = 0x15
	AUDC1  = 0x16
	AUDF0  = 0x17
	AUDF1  = 0x18
	AUDV0  = 0x19
	AUDV1  = 0x1a
	GRP0   = 0x1b
	GRP1   = 0x1c
	ENAM0  = 0x1d
	ENAM1  = 0x1e
	ENABL  = 0x1f
	HMP0   = 0x20
	HMP1   = 0x21
	HMM0   = 0x22
	HMM1   = 0x23
	HMBL   = 0x24
	VDELP0 = 0x25
	VDELP1 = 0x26
	VDELBL = 0x27
	RESMP0 = 0x28
	RESMP1 = 0x29
	HMOVE  = 0x2a
	HMCLR  = 0x2b
	CXCLR  = 0x2c
)

// TIA read-register offsets within the TIA read window (0x30-0x3d).
const (
	CXM0P  = 0x30
	CXM1P  = 0x31
	CXP0FB = 0x32
	CXP1FB = 0x33
	CXM0FB = 0x34
	CXM1FB = 0x35
	CXBLPF = 0x36
	CXPPMM = 0x37
	INPT0  = 0x38
	INPT1  = 0x39
	INPT2  = 0x3a
	INPT3  = 0x3b
	INPT4  = 0x3c
	INPT5  = 0x3d
)

// TIAWriteSymbols indexes write-register names by normalised address.
var TIAWriteSymbols = map[uint16]string{
	VSYNC: "VSYNC", VBLANK: "VBLANK", WSYNC: "WSYNC", RSYNC: "RSYNC",
	NUSIZ0: "NUSIZ0", NUSIZ1: "NUSIZ1", COLUP0: "COLUP0", COLUP1: "COLUP1",
	COLUPF: "COLUPF", COLUBK: "COLUBK", CTRLPF: "CTRLPF",
	REFP0: "REFP0", REFP1: "REFP1", PF0: "PF0", PF1: "PF1", PF2: "PF2",
	RESP0: "RESP0", RESP1: "RESP1", RESM0: "RESM0", RESM1: "RESM1", RESBL: "RESBL",
	AUDC0: "AUDC0", AUDC1: "AUDC1", AUDF0: "AUDF0", AUDF1: "AUDF1",
	AUDV0: "AUDV0", AUDV1: "AUDV1",
	GRP0: "GRP0", GRP1: "GRP1", ENAM0: "ENAM0", ENAM1: "ENAM1", ENABL: "ENABL",
	HMP0: "HMP0", HMP1: "HMP1", HMM0: "HMM0", HMM1: "HMM1", HMBL: "HMBL",
	VDELP0: "VDELP0", VDELP1: "VDELP1", VDELBL: "VDELBL",
	RESMP0: "RESMP0", RESMP1: "RESMP1",
	HMOVE: "HMOVE", HMCLR: "HMCLR", CXCLR: "CXCLR",
}

// TIAReadSymbols indexes read-register names by normalised address.
var TIAReadSymbols = map[uint16]string{
	CXM0P: "CXM0P", CXM1P: "CXM1P", CXP0FB: "CXP0FB", CXP1FB: "CXP1FB",
	CXM0FB: "CXM0FB", CXM1FB: "CXM1FB", CXBLPF: "CXBLPF", CXPPMM: "CXPPMM",
	INPT0: "INPT0", INPT1: "INPT1", INPT2: "INPT2",
	INPT3: "INPT3", INPT4: "INPT4", INPT5: "INPT5",
}

// RIOTSymbols indexes RIOT register names (both ports and timer) by
// normalised address.
var RIOTSymbols = map[uint16]string{
	SWCHA: "SWCHA", SWACNT: "SWACNT", SWCHB: "SWCHB", SWBCNT: "SWBCNT",
	INTIM: "INTIM", INSTAT: "INSTAT",
	TIM1T: "TIM1T", TIM8T: "TIM8T", TIM64T: "TIM64T", T1024T: "T1024T",
}
