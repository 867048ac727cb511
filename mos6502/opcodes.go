package mos6502

import "fmt"

// Instruction identifies one of the 56 official 6502 mnemonics.
// https://www.nesdev.org/obelisk-6502-guide/instructions.html
type Instruction uint8

const (
	ADC Instruction = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
)

// Opcode is a single entry in the 151-encoding official opcode table:
// which instruction it decodes to, which addressing mode supplies its
// operand, how many bytes (opcode + operand) it occupies, and - for a
// future cycle-accurate extension spec.md §9 anticipates but does not
// require - its base cycle cost and whether a page-crossing indexed
// access adds one more. Step never reads Cycles/PageCrossExtra; they
// exist so a timing layer can be bolted on without restructuring this
// table.
type Opcode struct {
	Op             Instruction
	Name           string
	Mode           Mode
	Length         uint8
	Cycles         uint8
	PageCrossExtra bool
}

func (o Opcode) String() string {
	return fmt.Sprintf("%s %s", o.Name, o.Mode)
}

var opcodeTable = map[uint8]Opcode{
	0x69: {ADC, "ADC", IMMEDIATE, 2, 2, false},
	0x65: {ADC, "ADC", ZERO_PAGE, 2, 3, false},
	0x75: {ADC, "ADC", ZERO_PAGE_X, 2, 4, false},
	0x6D: {ADC, "ADC", ABSOLUTE, 3, 4, false},
	0x7D: {ADC, "ADC", ABSOLUTE_X, 3, 4, true},
	0x79: {ADC, "ADC", ABSOLUTE_Y, 3, 4, true},
	0x61: {ADC, "ADC", INDIRECT_X, 2, 6, false},
	0x71: {ADC, "ADC", INDIRECT_Y, 2, 5, true},

	0x29: {AND, "AND", IMMEDIATE, 2, 2, false},
	0x25: {AND, "AND", ZERO_PAGE, 2, 3, false},
	0x35: {AND, "AND", ZERO_PAGE_X, 2, 4, false},
	0x2D: {AND, "AND", ABSOLUTE, 3, 4, false},
	0x3D: {AND, "AND", ABSOLUTE_X, 3, 4, true},
	0x39: {AND, "AND", ABSOLUTE_Y, 3, 4, true},
	0x21: {AND, "AND", INDIRECT_X, 2, 6, false},
	0x31: {AND, "AND", INDIRECT_Y, 2, 5, true},

	0x0A: {ASL, "ASL", ACCUMULATOR, 1, 2, false},
	0x06: {ASL, "ASL", ZERO_PAGE, 2, 5, false},
	0x16: {ASL, "ASL", ZERO_PAGE_X, 2, 6, false},
	0x0E: {ASL, "ASL", ABSOLUTE, 3, 6, false},
	0x1E: {ASL, "ASL", ABSOLUTE_X, 3, 7, false},

	0x90: {BCC, "BCC", RELATIVE, 2, 2, false},
	0xB0: {BCS, "BCS", RELATIVE, 2, 2, false},
	0xF0: {BEQ, "BEQ", RELATIVE, 2, 2, false},
	0x30: {BMI, "BMI", RELATIVE, 2, 2, false},
	0xD0: {BNE, "BNE", RELATIVE, 2, 2, false},
	0x10: {BPL, "BPL", RELATIVE, 2, 2, false},
	0x50: {BVC, "BVC", RELATIVE, 2, 2, false},
	0x70: {BVS, "BVS", RELATIVE, 2, 2, false},

	0x24: {BIT, "BIT", ZERO_PAGE, 2, 3, false},
	0x2C: {BIT, "BIT", ABSOLUTE, 3, 4, false},

	0x00: {BRK, "BRK", IMPLICIT, 2, 7, false},

	0x18: {CLC, "CLC", IMPLICIT, 1, 2, false},
	0xD8: {CLD, "CLD", IMPLICIT, 1, 2, false},
	0x58: {CLI, "CLI", IMPLICIT, 1, 2, false},
	0xB8: {CLV, "CLV", IMPLICIT, 1, 2, false},

	0xC9: {CMP, "CMP", IMMEDIATE, 2, 2, false},
	0xC5: {CMP, "CMP", ZERO_PAGE, 2, 3, false},
	0xD5: {CMP, "CMP", ZERO_PAGE_X, 2, 4, false},
	0xCD: {CMP, "CMP", ABSOLUTE, 3, 4, false},
	0xDD: {CMP, "CMP", ABSOLUTE_X, 3, 4, true},
	0xD9: {CMP, "CMP", ABSOLUTE_Y, 3, 4, true},
	0xC1: {CMP, "CMP", INDIRECT_X, 2, 6, false},
	0xD1: {CMP, "CMP", INDIRECT_Y, 2, 5, true},

	0xE0: {CPX, "CPX", IMMEDIATE, 2, 2, false},
	0xE4: {CPX, "CPX", ZERO_PAGE, 2, 3, false},
	0xEC: {CPX, "CPX", ABSOLUTE, 3, 4, false},

	0xC0: {CPY, "CPY", IMMEDIATE, 2, 2, false},
	0xC4: {CPY, "CPY", ZERO_PAGE, 2, 3, false},
	0xCC: {CPY, "CPY", ABSOLUTE, 3, 4, false},

	0xC6: {DEC, "DEC", ZERO_PAGE, 2, 5, false},
	0xD6: {DEC, "DEC", ZERO_PAGE_X, 2, 6, false},
	0xCE: {DEC, "DEC", ABSOLUTE, 3, 6, false},
	0xDE: {DEC, "DEC", ABSOLUTE_X, 3, 7, false},

	0xCA: {DEX, "DEX", IMPLICIT, 1, 2, false},
	0x88: {DEY, "DEY", IMPLICIT, 1, 2, false},

	0x49: {EOR, "EOR", IMMEDIATE, 2, 2, false},
	0x45: {EOR, "EOR", ZERO_PAGE, 2, 3, false},
	0x55: {EOR, "EOR", ZERO_PAGE_X, 2, 4, false},
	0x4D: {EOR, "EOR", ABSOLUTE, 3, 4, false},
	0x5D: {EOR, "EOR", ABSOLUTE_X, 3, 4, true},
	0x59: {EOR, "EOR", ABSOLUTE_Y, 3, 4, true},
	0x41: {EOR, "EOR", INDIRECT_X, 2, 6, false},
	0x51: {EOR, "EOR", INDIRECT_Y, 2, 5, true},

	0xE6: {INC, "INC", ZERO_PAGE, 2, 5, false},
	0xF6: {INC, "INC", ZERO_PAGE_X, 2, 6, false},
	0xEE: {INC, "INC", ABSOLUTE, 3, 6, false},
	0xFE: {INC, "INC", ABSOLUTE_X, 3, 7, false},

	0xE8: {INX, "INX", IMPLICIT, 1, 2, false},
	0xC8: {INY, "INY", IMPLICIT, 1, 2, false},

	0x4C: {JMP, "JMP", ABSOLUTE, 3, 3, false},
	0x6C: {JMP, "JMP", INDIRECT, 3, 5, false},

	0x20: {JSR, "JSR", ABSOLUTE, 3, 6, false},

	0xA9: {LDA, "LDA", IMMEDIATE, 2, 2, false},
	0xA5: {LDA, "LDA", ZERO_PAGE, 2, 3, false},
	0xB5: {LDA, "LDA", ZERO_PAGE_X, 2, 4, false},
	0xAD: {LDA, "LDA", ABSOLUTE, 3, 4, false},
	0xBD: {LDA, "LDA", ABSOLUTE_X, 3, 4, true},
	0xB9: {LDA, "LDA", ABSOLUTE_Y, 3, 4, true},
	0xA1: {LDA, "LDA", INDIRECT_X, 2, 6, false},
	0xB1: {LDA, "LDA", INDIRECT_Y, 2, 5, true},

	0xA2: {LDX, "LDX", IMMEDIATE, 2, 2, false},
	0xA6: {LDX, "LDX", ZERO_PAGE, 2, 3, false},
	0xB6: {LDX, "LDX", ZERO_PAGE_Y, 2, 4, false},
	0xAE: {LDX, "LDX", ABSOLUTE, 3, 4, false},
	0xBE: {LDX, "LDX", ABSOLUTE_Y, 3, 4, true},

	0xA0: {LDY, "LDY", IMMEDIATE, 2, 2, false},
	0xA4: {LDY, "LDY", ZERO_PAGE, 2, 3, false},
	0xB4: {LDY, "LDY", ZERO_PAGE_X, 2, 4, false},
	0xAC: {LDY, "LDY", ABSOLUTE, 3, 4, false},
	0xBC: {LDY, "LDY", ABSOLUTE_X, 3, 4, true},

	0x4A: {LSR, "LSR", ACCUMULATOR, 1, 2, false},
	0x46: {LSR, "LSR", ZERO_PAGE, 2, 5, false},
	0x56: {LSR, "LSR", ZERO_PAGE_X, 2, 6, false},
	0x4E: {LSR, "LSR", ABSOLUTE, 3, 6, false},
	0x5E: {LSR, "LSR", ABSOLUTE_X, 3, 7, false},

	0xEA: {NOP, "NOP", IMPLICIT, 1, 2, false},

	0x09: {ORA, "ORA", IMMEDIATE, 2, 2, false},
	0x05: {ORA, "ORA", ZERO_PAGE, 2, 3, false},
	0x15: {ORA, "ORA", ZERO_PAGE_X, 2, 4, false},
	0x0D: {ORA, "ORA", ABSOLUTE, 3, 4, false},
	0x1D: {ORA, "ORA", ABSOLUTE_X, 3, 4, true},
	0x19: {ORA, "ORA", ABSOLUTE_Y, 3, 4, true},
	0x01: {ORA, "ORA", INDIRECT_X, 2, 6, false},
	0x11: {ORA, "ORA", INDIRECT_Y, 2, 5, true},

	0x48: {PHA, "PHA", IMPLICIT, 1, 3, false},
	0x08: {PHP, "PHP", IMPLICIT, 1, 3, false},
	0x68: {PLA, "PLA", IMPLICIT, 1, 4, false},
	0x28: {PLP, "PLP", IMPLICIT, 1, 4, false},

	0x2A: {ROL, "ROL", ACCUMULATOR, 1, 2, false},
	0x26: {ROL, "ROL", ZERO_PAGE, 2, 5, false},
	0x36: {ROL, "ROL", ZERO_PAGE_X, 2, 6, false},
	0x2E: {ROL, "ROL", ABSOLUTE, 3, 6, false},
	0x3E: {ROL, "ROL", ABSOLUTE_X, 3, 7, false},

	0x6A: {ROR, "ROR", ACCUMULATOR, 1, 2, false},
	0x66: {ROR, "ROR", ZERO_PAGE, 2, 5, false},
	0x76: {ROR, "ROR", ZERO_PAGE_X, 2, 6, false},
	0x6E: {ROR, "ROR", ABSOLUTE, 3, 6, false},
	0x7E: {ROR, "ROR", ABSOLUTE_X, 3, 7, false},

	0x40: {RTI, "RTI", IMPLICIT, 1, 6, false},
	0x60: {RTS, "RTS", IMPLICIT, 1, 6, false},

	0xE9: {SBC, "SBC", IMMEDIATE, 2, 2, false},
	0xE5: {SBC, "SBC", ZERO_PAGE, 2, 3, false},
	0xF5: {SBC, "SBC", ZERO_PAGE_X, 2, 4, false},
	0xED: {SBC, "SBC", ABSOLUTE, 3, 4, false},
	0xFD: {SBC, "SBC", ABSOLUTE_X, 3, 4, true},
	0xF9: {SBC, "SBC", ABSOLUTE_Y, 3, 4, true},
	0xE1: {SBC, "SBC", INDIRECT_X, 2, 6, false},
	0xF1: {SBC, "SBC", INDIRECT_Y, 2, 5, true},

	0x38: {SEC, "SEC", IMPLICIT, 1, 2, false},
	0xF8: {SED, "SED", IMPLICIT, 1, 2, false},
	0x78: {SEI, "SEI", IMPLICIT, 1, 2, false},

	0x85: {STA, "STA", ZERO_PAGE, 2, 3, false},
	0x95: {STA, "STA", ZERO_PAGE_X, 2, 4, false},
	0x8D: {STA, "STA", ABSOLUTE, 3, 4, false},
	0x9D: {STA, "STA", ABSOLUTE_X, 3, 5, false},
	0x99: {STA, "STA", ABSOLUTE_Y, 3, 5, false},
	0x81: {STA, "STA", INDIRECT_X, 2, 6, false},
	0x91: {STA, "STA", INDIRECT_Y, 2, 6, false},

	0x86: {STX, "STX", ZERO_PAGE, 2, 3, false},
	0x96: {STX, "STX", ZERO_PAGE_Y, 2, 4, false},
	0x8E: {STX, "STX", ABSOLUTE, 3, 4, false},

	0x84: {STY, "STY", ZERO_PAGE, 2, 3, false},
	0x94: {STY, "STY", ZERO_PAGE_X, 2, 4, false},
	0x8C: {STY, "STY", ABSOLUTE, 3, 4, false},

	0xAA: {TAX, "TAX", IMPLICIT, 1, 2, false},
	0xA8: {TAY, "TAY", IMPLICIT, 1, 2, false},
	0xBA: {TSX, "TSX", IMPLICIT, 1, 2, false},
	0x8A: {TXA, "TXA", IMPLICIT, 1, 2, false},
	0x9A: {TXS, "TXS", IMPLICIT, 1, 2, false},
	0x98: {TYA, "TYA", IMPLICIT, 1, 2, false},
}

// Lookup returns the table entry for b and whether b is one of the 151
// official encodings. It is a pure function of the byte - independent
// of any CPU state - so a disassembler and the executor can share it
// without coupling through execution (spec.md §9, "Implicit coupling
// between addressing-mode side effects and opcode dispatch").
func Lookup(b uint8) (Opcode, bool) {
	op, ok := opcodeTable[b]
	return op, ok
}
