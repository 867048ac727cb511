package mos6502

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// flatBus is a minimal 64KiB Bus used only to exercise the CPU core in
// isolation from bus/mapper mirroring concerns - grounded on the
// teacher's own mos6502_test.go pattern of a tiny in-package memory
// stand-in wired directly to *CPU.
type flatBus struct {
	mem [1 << 16]uint8
}

func (b *flatBus) Read(addr uint16) uint8     { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, v uint8) { b.mem[addr] = v }
func (b *flatBus) load(addr uint16, bytes ...uint8) {
	for i, v := range bytes {
		b.mem[int(addr)+i] = v
	}
}

func newTestCPU() (*CPU, *flatBus) {
	bus := &flatBus{}
	bus.load(VectorReset, 0x00, 0x80) // reset vector -> 0x8000
	c := New(bus)
	c.Reset()
	return c, bus
}

func TestReset(t *testing.T) {
	c, _ := newTestCPU()
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, uint8(0xFF), c.SP)
	assert.Equal(t, uint8(0), c.Status)
}

// Scenario 1 from spec.md §8: A=0x50, C=0, ADC #$50.
func TestADCSignedOverflowIntoNegative(t *testing.T) {
	c, bus := newTestCPU()
	c.A = 0x50
	bus.load(0x8000, 0x69, 0x50) // ADC #$50
	c.Step()

	assert.Equal(t, uint8(0xA0), c.A)
	assert.True(t, c.Flag(FLAG_NEGATIVE))
	assert.True(t, c.Flag(FLAG_OVERFLOW))
	assert.False(t, c.Flag(FLAG_CARRY))
	assert.False(t, c.Flag(FLAG_ZERO))
}

// Scenario 2 from spec.md §8: A=0x50, C=0, ADC #$D0.
func TestADCUnsignedCarryNoOverflow(t *testing.T) {
	c, bus := newTestCPU()
	c.A = 0x50
	bus.load(0x8000, 0x69, 0xD0) // ADC #$D0
	c.Step()

	assert.Equal(t, uint8(0x20), c.A)
	assert.False(t, c.Flag(FLAG_NEGATIVE))
	assert.False(t, c.Flag(FLAG_OVERFLOW))
	assert.True(t, c.Flag(FLAG_CARRY))
	assert.False(t, c.Flag(FLAG_ZERO))
}

// Scenario 3 from spec.md §8: INC $80 where mem[0x0080] == 0xFF.
func TestINCZeroPageWrapsToZero(t *testing.T) {
	c, bus := newTestCPU()
	bus.load(0x0080, 0xFF)
	bus.load(0x8000, 0xE6, 0x80) // INC $80
	c.Step()

	assert.Equal(t, uint8(0x00), bus.Read(0x0080))
	assert.True(t, c.Flag(FLAG_ZERO))
	assert.False(t, c.Flag(FLAG_NEGATIVE))
}

// Scenario 4 from spec.md §8: JSR pushes PC-1 of the following
// instruction, broken into high-then-low.
func TestJSRPushesReturnAddressMinusOne(t *testing.T) {
	c, bus := newTestCPU()
	c.SP = 0xFD
	bus.load(0x8000, 0x20, 0x00, 0x90) // JSR $9000
	c.Step()

	assert.Equal(t, uint16(0x9000), c.PC)
	assert.Equal(t, uint8(0xFB), c.SP)
	assert.Equal(t, uint8(0x02), bus.Read(0x01FC))
	assert.Equal(t, uint8(0x80), bus.Read(0x01FD))
}

// JSR immediately followed by RTS returns to the instruction after the
// JSR with SP restored - spec.md §8 invariant.
func TestJSRThenRTSRoundTrips(t *testing.T) {
	c, bus := newTestCPU()
	spBefore := c.SP
	bus.load(0x8000, 0x20, 0x00, 0x90) // JSR $9000
	bus.load(0x9000, 0x60)             // RTS
	c.Step()
	c.Step()

	assert.Equal(t, uint16(0x8003), c.PC)
	assert.Equal(t, spBefore, c.SP)
}

// PHP then PLP with no intervening flag mutation leaves flags
// unchanged - spec.md §8 invariant.
func TestPHPThenPLPRoundTrips(t *testing.T) {
	c, bus := newTestCPU()
	c.Status = FLAG_CARRY | FLAG_ZERO | FLAG_NEGATIVE
	before := c.Status
	bus.load(0x8000, 0x08, 0x28) // PHP; PLP
	c.Step()
	c.Step()

	assert.Equal(t, before, c.Status)
}

// Scenario 5 from spec.md §8: the indirect-JMP page-wrap bug.
func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, bus := newTestCPU()
	bus.load(0x8000, 0x6C, 0xFF, 0x02) // JMP ($02FF)
	bus.load(0x02FF, 0x80)             // low byte of target
	bus.load(0x0200, 0x00)             // high byte, due to the bug (not 0x0300)
	bus.load(0x0300, 0xFF)             // a decoy - must NOT be read as the high byte

	c.Step()
	assert.Equal(t, uint16(0x0080), c.PC)
}

func TestJMPIndirectNoBugWhenNotPageAligned(t *testing.T) {
	c, bus := newTestCPU()
	bus.load(0x8000, 0x6C, 0x00, 0x03) // JMP ($0300)
	bus.load(0x0300, 0x34)
	bus.load(0x0301, 0x12)

	c.Step()
	assert.Equal(t, uint16(0x1234), c.PC)
}

func TestCompareSetsCarryWhenRegisterGreaterOrEqual(t *testing.T) {
	c, bus := newTestCPU()
	c.A = 0x40
	bus.load(0x8000, 0xC9, 0x40) // CMP #$40
	c.Step()

	assert.True(t, c.Flag(FLAG_CARRY))
	assert.True(t, c.Flag(FLAG_ZERO))
}

func TestCompareClearsCarryWhenRegisterLess(t *testing.T) {
	c, bus := newTestCPU()
	c.A = 0x10
	bus.load(0x8000, 0xC9, 0x40) // CMP #$40
	c.Step()

	assert.False(t, c.Flag(FLAG_CARRY))
	assert.False(t, c.Flag(FLAG_ZERO))
}

func TestBITSetsNAndVFromOperandNotResult(t *testing.T) {
	c, bus := newTestCPU()
	c.A = 0x00
	bus.load(0x0010, 0xC0)       // bits 7 and 6 set
	bus.load(0x8000, 0x24, 0x10) // BIT $10
	c.Step()

	assert.True(t, c.Flag(FLAG_ZERO)) // A & operand == 0
	assert.True(t, c.Flag(FLAG_NEGATIVE))
	assert.True(t, c.Flag(FLAG_OVERFLOW))
	assert.Equal(t, uint8(0x00), c.A) // BIT never touches A
}

func TestTXSDoesNotTouchFlags(t *testing.T) {
	c, bus := newTestCPU()
	c.Status = FLAG_ZERO
	c.X = 0x00             // would set Z if TXS updated flags
	bus.load(0x8000, 0x9A) // TXS
	c.Step()

	assert.Equal(t, uint8(0x00), c.SP)
	assert.Equal(t, uint8(FLAG_ZERO), c.Status)
}

func TestIndexedIndirectWrapsWithinZeroPage(t *testing.T) {
	c, bus := newTestCPU()
	c.X = 0x01
	bus.load(0x00FF, 0x00) // ptr low, at (0xFE+X)=0xFF
	bus.load(0x0000, 0x90) // ptr high wraps to zero page start, not 0x0100
	bus.load(0x9000, 0x42)
	bus.load(0x8000, 0xA1, 0xFE) // LDA ($FE,X)
	c.Step()

	assert.Equal(t, uint8(0x42), c.A)
}

func TestIndirectIndexedAddsYAfterDereference(t *testing.T) {
	c, bus := newTestCPU()
	c.Y = 0x10
	bus.load(0x0010, 0x00, 0x90) // base pointer -> 0x9000
	bus.load(0x9010, 0x99)       // 0x9000 + Y(0x10)
	bus.load(0x8000, 0xB1, 0x10) // LDA ($10),Y
	c.Step()

	assert.Equal(t, uint8(0x99), c.A)
}

func TestUnknownOpcodeIsNoOp(t *testing.T) {
	c, bus := newTestCPU()
	bus.load(0x8000, 0x02) // not in the official 151-entry table
	before := *c
	tr := c.Step()

	assert.True(t, tr.Unknown)
	assert.Equal(t, before.A, c.A)
	assert.Equal(t, before.X, c.X)
	assert.Equal(t, uint16(0x8001), c.PC)
}

// A taken branch whose target happens to equal the address of the
// following instruction must still be recognized as taken, not
// mistaken for "PC unchanged, so Step should auto-advance it".
func TestBranchTakenLandingOnNextInstructionIsStillTaken(t *testing.T) {
	c, bus := newTestCPU()
	c.Status = FLAG_CARRY
	bus.load(0x8000, 0xB0, 0x00) // BCS *+2 -> target is 0x8002, the fallthrough address
	c.Step()

	assert.Equal(t, uint16(0x8002), c.PC)
}

func TestBranchNotTakenAdvancesPastOperand(t *testing.T) {
	c, bus := newTestCPU()
	c.setFlag(FLAG_CARRY, false)
	bus.load(0x8000, 0xB0, 0x10) // BCS +16, not taken
	c.Step()

	assert.Equal(t, uint16(0x8002), c.PC)
}

func TestInstructionLengthMatchesBytesConsumed(t *testing.T) {
	cases := []struct {
		name  string
		bytes []uint8
		want  uint16
	}{
		{"implicit", []uint8{0xEA}, 0x8001},             // NOP
		{"immediate", []uint8{0xA9, 0x01}, 0x8002},      // LDA #
		{"zeropage", []uint8{0xA5, 0x10}, 0x8002},       // LDA zp
		{"absolute", []uint8{0xAD, 0x00, 0x20}, 0x8003}, // LDA abs
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, bus := newTestCPU()
			bus.load(0x8000, tc.bytes...)
			c.Step()
			assert.Equal(t, tc.want, c.PC)
		})
	}
}
