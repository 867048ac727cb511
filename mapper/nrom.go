package mapper

// nrom implements mapper 0 (NROM): PRG-ROM is either 16KB, mirrored
// into both halves of 0x8000-0xFFFF, or a full 32KB mapped straight
// through. It is the only mapper spec.md requires (§3, §6 Non-goals
// excludes bank switching), grounded on the teacher's
// mappers/mapper0.go PrgRead split at 0x8000/0xC000, generalized to
// handle both PRG sizes instead of assuming 16KB.
type nrom struct {
	prg []byte
}

func init() {
	register(0, func(prg []byte) Mapper { return &nrom{prg: prg} })
}

func (m *nrom) ID() uint8 { return 0 }

func (m *nrom) PrgRead(addr uint16) uint8 {
	off := int(addr-0x8000) % len(m.prg)
	return m.prg[off]
}

// PrgWrite is a no-op: NROM carries no PRG-RAM or bank-select
// registers, so writes into ROM space are simply dropped, matching
// real NROM hardware and spec.md §3's "writes to ROM are dropped"
// Open Question resolution (see DESIGN.md).
func (m *nrom) PrgWrite(addr uint16, val uint8) {}
