// Package bus implements the NES CPU memory map: address decoding,
// RAM mirroring and the PPU register window's read-side effects,
// grounded on the teacher's console/bus.go and console/cpu_memory.go
// switch-on-range Read/Write pair, generalized to drop the PPU/OAM-DMA
// wiring this diagnostic core has no use for.
package bus

import "nesdiag/mapper"

const (
	ramSize   = 0x0800 // 2KB internal RAM
	ramEnd    = 0x1FFF
	ppuEnd    = 0x3FFF
	ioRegEnd  = 0x4020
	sramStart = 0x6000
	sramEnd   = 0x7FFF
	sramSize  = sramEnd - sramStart + 1
	prgStart  = 0x8000

	// ppuStatusReg is the canonical (unmirrored) address of the PPU
	// status register. Reading it clears the vblank flag (bit 7) as a
	// side effect - spec.md §4.1.
	ppuStatusReg = 0x2002
	vblankBit    = 0x80
)

// Bus is the mos6502.Bus implementation wiring together internal RAM,
// a stubbed PPU register window, cartridge SRAM and the Mapper's
// PRG-ROM.
type Bus struct {
	ram     [ramSize]uint8
	ppuRegs [8]uint8
	sram    [sramSize]uint8
	mapper  mapper.Mapper
}

// New builds a Bus over the given Mapper. m may be nil until LoadROM
// wires one in (see driver.Machine), in which case PRG reads return 0
// and writes are dropped.
func New(m mapper.Mapper) *Bus {
	return &Bus{mapper: m}
}

// SetMapper swaps in a new cartridge mapper, used by driver.Machine
// after a ROM load replaces the one passed to New.
func (b *Bus) SetMapper(m mapper.Mapper) {
	b.mapper = m
}

// SetVBlank sets or clears the PPU status register's vblank bit. The
// driver calls this on a step cadence to emulate frame timing well
// enough for status-polling diagnostic ROMs, without implementing a
// real PPU (spec.md §6 Non-goals).
func (b *Bus) SetVBlank(on bool) {
	if on {
		b.ppuRegs[ppuStatusReg&0x07] |= vblankBit
	} else {
		b.ppuRegs[ppuStatusReg&0x07] &^= vblankBit
	}
}

func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= ramEnd:
		return b.ram[addr&(ramSize-1)]
	case addr <= ppuEnd:
		reg := addr & 0x0007
		v := b.ppuRegs[reg]
		if reg == (ppuStatusReg & 0x0007) {
			b.ppuRegs[reg] &^= vblankBit
		}
		return v
	case addr < ioRegEnd:
		return 0 // APU/controller I/O: out of scope, reads as 0
	case addr <= sramEnd:
		if addr < sramStart {
			return 0
		}
		return b.sram[addr-sramStart]
	default:
		if b.mapper == nil {
			return 0
		}
		return b.mapper.PrgRead(addr)
	}
}

func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= ramEnd:
		b.ram[addr&(ramSize-1)] = val
	case addr <= ppuEnd:
		b.ppuRegs[addr&0x0007] = val
	case addr < ioRegEnd:
		// APU/controller I/O: out of scope, writes dropped
	case addr <= sramEnd:
		if addr >= sramStart {
			b.sram[addr-sramStart] = val
		}
	default:
		if b.mapper != nil {
			b.mapper.PrgWrite(addr, val)
		}
	}
}
