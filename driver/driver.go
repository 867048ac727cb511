// Package driver wires mos6502.CPU, bus.Bus and a cartridge mapper
// into a runnable Machine, and implements the diagnostic-ROM status
// convention: a test writes a result code to $6000 and a NUL-
// terminated ASCII message starting at $6004. Grounded on the
// teacher's console.Bus.Run ticking loop (console/bus.go) and
// console.machine's CPU/PPU wiring (console/machine.go), generalized
// to drop the PPU/ebiten coupling those carried.
package driver

import (
	"context"
	"fmt"
	"io"

	"nesdiag/bus"
	"nesdiag/ines"
	"nesdiag/mapper"
	"nesdiag/mos6502"
)

const (
	// statusAddr and messageAddr follow the convention used by
	// blargg's NES test ROMs: a running status byte at $6000 and an
	// ASCII message starting at $6004, terminated by a NUL.
	statusAddr  = 0x6000
	messageAddr = 0x6004

	statusRunning = 0x80

	// VBlankPeriod is how many CPU steps elapse between simulated
	// vblank pulses - coarse enough that this core never pretends to
	// track real PPU/CPU cycle ratios, but regular enough that ROMs
	// polling $2002 for vblank make forward progress. It is a package
	// constant; a Machine has no per-instance period setting.
	VBlankPeriod = 1000
)

// Sink receives one Trace per executed instruction. Implementations
// live in package trace; Run accepts nil to skip tracing entirely.
type Sink interface {
	Observe(mos6502.Trace)
}

// Result is the diagnostic outcome extracted from cartridge SRAM after
// a Run completes, either because the status byte left the "running"
// state or maxSteps was reached first.
type Result struct {
	Code      uint8
	Message   string
	StepCount int
	TimedOut  bool // true if maxSteps was reached, or ctx was cancelled, before the ROM signaled completion
}

// Machine is a complete, reentrant diagnostic target: CPU core, memory
// bus and cartridge mapper.
type Machine struct {
	CPU *mos6502.CPU
	Bus *bus.Bus

	steps uint64
}

// New constructs a Machine with no cartridge loaded; LoadROM must be
// called before Reset/Step/Run.
func New() *Machine {
	b := bus.New(nil)
	return &Machine{CPU: mos6502.New(b), Bus: b}
}

// LoadROM parses an iNES image from r, builds its mapper and wires it
// into the bus. It does not reset the CPU - callers decide when to do
// that.
func (m *Machine) LoadROM(r io.Reader) error {
	rom, err := ines.Load(r, mapper.Supported)
	if err != nil {
		return fmt.Errorf("driver: loading ROM: %w", err)
	}
	mp, err := mapper.New(rom.Header.MapperNum(), rom.PRG)
	if err != nil {
		return fmt.Errorf("driver: building mapper: %w", err)
	}
	m.Bus.SetMapper(mp)
	return nil
}

// Reset pulses the CPU's reset vector, per mos6502.CPU.Reset.
func (m *Machine) Reset() {
	m.CPU.Reset()
}

// Step executes exactly one instruction and returns its Trace.
func (m *Machine) Step() mos6502.Trace {
	m.steps++
	if m.steps%VBlankPeriod == 0 {
		m.Bus.SetVBlank(true)
	}
	return m.CPU.Step()
}

// Read and Write expose the memory bus directly, for callers (the TUI
// debugger, tests) that need to inspect or poke memory without
// stepping the CPU.
func (m *Machine) Read(addr uint16) uint8     { return m.Bus.Read(addr) }
func (m *Machine) Write(addr uint16, v uint8) { m.Bus.Write(addr, v) }

// Run steps the Machine until the $6000 status byte leaves the
// "running" state (0x80) or maxSteps instructions have executed,
// whichever comes first. Every executed Trace is forwarded to sink,
// if non-nil. ctx cancellation stops the loop early with whatever
// partial Result is available.
func (m *Machine) Run(ctx context.Context, maxSteps int, sink Sink) Result {
	// Diagnostic ROMs set $6000 to 0x80 on start; a fresh cartridge
	// with SRAM still zeroed reads 0x00, which would end the run
	// immediately, so prime it the same way the ROM itself would on
	// its first write.
	m.Bus.Write(statusAddr, statusRunning)
	n := 0
	for ; n < maxSteps; n++ {
		select {
		case <-ctx.Done():
			return m.result(n, true)
		default:
		}

		tr := m.Step()
		if sink != nil {
			sink.Observe(tr)
		}

		status := m.Bus.Read(statusAddr)
		if status != statusRunning {
			return m.result(n+1, false)
		}
	}
	return m.result(n, true)
}

func (m *Machine) result(steps int, timedOut bool) Result {
	status := m.Bus.Read(statusAddr)
	var msg []byte
	for addr := uint16(messageAddr); ; addr++ {
		b := m.Bus.Read(addr)
		if b == 0 {
			break
		}
		msg = append(msg, b)
		if len(msg) > 0x1000 {
			break // runaway guard: SRAM has no guaranteed NUL
		}
	}
	return Result{Code: status, Message: string(msg), StepCount: steps, TimedOut: timedOut}
}
