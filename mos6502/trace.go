package mos6502

import "fmt"

// Trace is the post-step event Step emits: everything a disassembler
// or debug sink needs to render one executed instruction, without
// being coupled to how execution produced it (spec.md §9, "Logging
// side channel" - tracing is a consumer, never a participant).
type Trace struct {
	PC       uint16  // address of the opcode byte, before execution
	Opcode   uint8   // the raw opcode byte
	Operands []uint8 // 0, 1 or 2 operand bytes, in memory order
	Mnemonic string
	Mode     Mode
	Snapshot CPU  // register file immediately after the instruction ran
	Unknown  bool // true if Opcode wasn't in the official 151-entry table
}

// String renders a nestest-style one-liner: address, raw bytes,
// mnemonic, then the register snapshot.
func (t Trace) String() string {
	raw := fmt.Sprintf("%02X", t.Opcode)
	for _, b := range t.Operands {
		raw += fmt.Sprintf(" %02X", b)
	}
	if t.Unknown {
		return fmt.Sprintf("%04X  %-8s  ???", t.PC, raw)
	}
	return fmt.Sprintf("%04X  %-8s  %-4s  %s", t.PC, raw, t.Mnemonic, t.Snapshot.String())
}
