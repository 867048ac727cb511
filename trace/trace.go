// Package trace provides driver.Sink implementations for observing
// executed instructions: a plain nestest-style text log and a
// go-spew-backed structure dump for deeper debugging. Grounded on the
// teacher's fmt.Printf-based BIOS console output (console/bus.go,
// console/machine.go), generalized into the Sink interface so tracing
// is swappable rather than hardwired into the run loop.
package trace

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"nesdiag/mos6502"
)

// TextSink writes one line per instruction to w, in the nestest log
// format mos6502.Trace.String already renders.
type TextSink struct {
	W io.Writer
}

func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{W: w}
}

func (s *TextSink) Observe(t mos6502.Trace) {
	fmt.Fprintln(s.W, t.String())
}

// DumpSink writes a full spew.Sdump of each Trace - every field,
// including the register snapshot's unexported internals made visible
// by spew's reflection-based formatting - for diagnosing mismatches
// the compact TextSink format hides.
type DumpSink struct {
	W io.Writer
}

func NewDumpSink(w io.Writer) *DumpSink {
	return &DumpSink{W: w}
}

func (s *DumpSink) Observe(t mos6502.Trace) {
	fmt.Fprint(s.W, spew.Sdump(t))
}

// CountingSink counts observed instructions without emitting any
// output, useful for tests that only need to assert the number of
// steps actually ran.
type CountingSink struct {
	Count int
}

func (s *CountingSink) Observe(mos6502.Trace) {
	s.Count++
}
