package mos6502

// Mode identifies one of the 13 6502 addressing modes.
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
type Mode uint8

const (
	IMPLICIT Mode = iota
	ACCUMULATOR
	IMMEDIATE
	ZERO_PAGE
	ZERO_PAGE_X
	ZERO_PAGE_Y
	RELATIVE
	ABSOLUTE
	ABSOLUTE_X
	ABSOLUTE_Y
	INDIRECT
	INDIRECT_X // Indexed Indirect, (zp,X)
	INDIRECT_Y // Indirect Indexed, (zp),Y
)

var modeNames = map[Mode]string{
	IMPLICIT: "IMPLICIT", ACCUMULATOR: "ACCUMULATOR", IMMEDIATE: "IMMEDIATE",
	ZERO_PAGE: "ZERO_PAGE", ZERO_PAGE_X: "ZERO_PAGE_X", ZERO_PAGE_Y: "ZERO_PAGE_Y",
	RELATIVE: "RELATIVE", ABSOLUTE: "ABSOLUTE", ABSOLUTE_X: "ABSOLUTE_X",
	ABSOLUTE_Y: "ABSOLUTE_Y", INDIRECT: "INDIRECT", INDIRECT_X: "INDIRECT_X",
	INDIRECT_Y: "INDIRECT_Y",
}

func (m Mode) String() string {
	return modeNames[m]
}

// readZP16 reads a little-endian word from two zero-page cells,
// wrapping the high-byte fetch within page zero. Used by the indexed-
// indirect and indirect-indexed modes, where ptr+1 never crosses into
// page 1 even if ptr is 0xFF.
func (c *CPU) readZP16(ptr uint8) uint16 {
	lo := uint16(c.read(uint16(ptr)))
	hi := uint16(c.read(uint16(ptr + 1)))
	return lo | hi<<8
}

// resolveAddress computes the effective address (or, for IMMEDIATE,
// the address holding the operand value) for every mode except
// IMPLICIT and ACCUMULATOR, which instructions handle directly. It
// never mutates PC - Step has already advanced PC past the opcode
// byte, and the caller (Step) advances it past the operand bytes
// after execute returns, unless the instruction itself branched/jumped.
func (c *CPU) resolveAddress(mode Mode) uint16 {
	switch mode {
	case IMMEDIATE:
		return c.PC
	case ZERO_PAGE:
		return uint16(c.read(c.PC))
	case ZERO_PAGE_X:
		return uint16(c.read(c.PC) + c.X)
	case ZERO_PAGE_Y:
		return uint16(c.read(c.PC) + c.Y)
	case RELATIVE:
		// Offset is relative to the address immediately following
		// this one-byte operand, i.e. PC+1 from here.
		return (c.PC + 1) + uint16(int8(c.read(c.PC)))
	case ABSOLUTE:
		return c.read16(c.PC)
	case ABSOLUTE_X:
		return c.read16(c.PC) + uint16(c.X)
	case ABSOLUTE_Y:
		return c.read16(c.PC) + uint16(c.Y)
	case INDIRECT:
		return c.resolveIndirectBug(c.read16(c.PC))
	case INDIRECT_X:
		ptr := c.read(c.PC) + c.X
		return c.readZP16(ptr)
	case INDIRECT_Y:
		ptr := c.read(c.PC)
		return c.readZP16(ptr) + uint16(c.Y)
	default:
		panic("mos6502: resolveAddress called with a mode that carries no address")
	}
}

// resolveIndirectBug reproduces the famous JMP ($xxFF) page-wrap bug:
// when the pointer's low byte is 0xFF, the high byte of the target is
// fetched from the start of the same page rather than the next one.
// spec.md §4.2 requires this be preserved, not fixed.
func (c *CPU) resolveIndirectBug(ptr uint16) uint16 {
	lo := uint16(c.read(ptr))
	hi := uint16(c.read((ptr & 0xFF00) | ((ptr + 1) & 0x00FF)))
	return lo | hi<<8
}
