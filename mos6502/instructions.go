package mos6502

// execute dispatches op to its semantic implementation. Kept as a
// plain switch, not the reflect.MethodByName lookup an earlier draft
// of this core used (matching op.Name against a method by string):
// that made every rename of an instruction method a silent runtime
// break. A switch on the decoded Instruction id gets the same one-
// case-per-mnemonic shape with the mismatch caught at compile time.
func (c *CPU) execute(op Opcode) {
	switch op.Op {
	case ADC:
		c.adc(op.Mode)
	case AND:
		c.and(op.Mode)
	case ASL:
		c.asl(op.Mode)
	case BCC:
		c.branch(FLAG_CARRY, false)
	case BCS:
		c.branch(FLAG_CARRY, true)
	case BEQ:
		c.branch(FLAG_ZERO, true)
	case BIT:
		c.bit(op.Mode)
	case BMI:
		c.branch(FLAG_NEGATIVE, true)
	case BNE:
		c.branch(FLAG_ZERO, false)
	case BPL:
		c.branch(FLAG_NEGATIVE, false)
	case BRK:
		c.brk()
	case BVC:
		c.branch(FLAG_OVERFLOW, false)
	case BVS:
		c.branch(FLAG_OVERFLOW, true)
	case CLC:
		c.setFlag(FLAG_CARRY, false)
	case CLD:
		c.setFlag(FLAG_DECIMAL, false)
	case CLI:
		c.setFlag(FLAG_INTERRUPT, false)
	case CLV:
		c.setFlag(FLAG_OVERFLOW, false)
	case CMP:
		c.compare(c.A, c.read(c.resolveAddress(op.Mode)))
	case CPX:
		c.compare(c.X, c.read(c.resolveAddress(op.Mode)))
	case CPY:
		c.compare(c.Y, c.read(c.resolveAddress(op.Mode)))
	case DEC:
		c.dec(op.Mode)
	case DEX:
		c.X--
		c.setZN(c.X)
	case DEY:
		c.Y--
		c.setZN(c.Y)
	case EOR:
		c.A ^= c.read(c.resolveAddress(op.Mode))
		c.setZN(c.A)
	case INC:
		c.inc(op.Mode)
	case INX:
		c.X++
		c.setZN(c.X)
	case INY:
		c.Y++
		c.setZN(c.Y)
	case JMP:
		c.PC = c.resolveAddress(op.Mode)
	case JSR:
		target := c.resolveAddress(op.Mode)
		c.pushAddr(c.PC + 1)
		c.PC = target
	case LDA:
		c.A = c.read(c.resolveAddress(op.Mode))
		c.setZN(c.A)
	case LDX:
		c.X = c.read(c.resolveAddress(op.Mode))
		c.setZN(c.X)
	case LDY:
		c.Y = c.read(c.resolveAddress(op.Mode))
		c.setZN(c.Y)
	case LSR:
		c.lsr(op.Mode)
	case NOP:
		// no effect
	case ORA:
		c.A |= c.read(c.resolveAddress(op.Mode))
		c.setZN(c.A)
	case PHA:
		c.push(c.A)
	case PHP:
		c.push(c.packStatus(true))
	case PLA:
		c.A = c.pull()
		c.setZN(c.A)
	case PLP:
		c.restoreStatus(c.pull())
	case ROL:
		c.rol(op.Mode)
	case ROR:
		c.ror(op.Mode)
	case RTI:
		c.restoreStatus(c.pull())
		c.PC = c.pullAddr()
	case RTS:
		c.PC = c.pullAddr() + 1
	case SBC:
		c.sbc(op.Mode)
	case SEC:
		c.setFlag(FLAG_CARRY, true)
	case SED:
		c.setFlag(FLAG_DECIMAL, true)
	case SEI:
		c.setFlag(FLAG_INTERRUPT, true)
	case STA:
		c.write(c.resolveAddress(op.Mode), c.A)
	case STX:
		c.write(c.resolveAddress(op.Mode), c.X)
	case STY:
		c.write(c.resolveAddress(op.Mode), c.Y)
	case TAX:
		c.X = c.A
		c.setZN(c.X)
	case TAY:
		c.Y = c.A
		c.setZN(c.Y)
	case TSX:
		c.X = c.SP
		c.setZN(c.X)
	case TXA:
		c.A = c.X
		c.setZN(c.A)
	case TXS:
		c.SP = c.X // TXS does not update flags
	case TYA:
		c.A = c.Y
		c.setZN(c.A)
	}
}

// addWithCarry implements ADC's 16-bit-widened sum, carry and
// signed-overflow detection per spec.md §4.3. SBC reuses it against
// the bitwise-negated operand, which is arithmetically identical to
// subtracting with borrow on two's-complement hardware.
func (c *CPU) addWithCarry(operand uint8) {
	carry := uint16(0)
	if c.Flag(FLAG_CARRY) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(operand) + carry
	result := uint8(sum)

	c.setFlag(FLAG_CARRY, sum&0x100 != 0)
	c.setFlag(FLAG_OVERFLOW, (uint16(c.A)^sum)&(uint16(operand)^sum)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) adc(mode Mode) {
	c.addWithCarry(c.read(c.resolveAddress(mode)))
}

func (c *CPU) sbc(mode Mode) {
	c.addWithCarry(^c.read(c.resolveAddress(mode)))
}

func (c *CPU) and(mode Mode) {
	c.A &= c.read(c.resolveAddress(mode))
	c.setZN(c.A)
}

// loadOperand and storeResult let the shift/rotate group share one
// body across ACCUMULATOR and every memory-addressed mode.
func (c *CPU) loadOperand(mode Mode) (v uint8, addr uint16, isAcc bool) {
	if mode == ACCUMULATOR {
		return c.A, 0, true
	}
	addr = c.resolveAddress(mode)
	return c.read(addr), addr, false
}

func (c *CPU) storeResult(addr uint16, isAcc bool, v uint8) {
	if isAcc {
		c.A = v
	} else {
		c.write(addr, v)
	}
}

func (c *CPU) asl(mode Mode) {
	v, addr, isAcc := c.loadOperand(mode)
	result := v << 1
	c.setFlag(FLAG_CARRY, v&0x80 != 0)
	c.storeResult(addr, isAcc, result)
	c.setZN(result)
}

func (c *CPU) lsr(mode Mode) {
	v, addr, isAcc := c.loadOperand(mode)
	result := v >> 1
	c.setFlag(FLAG_CARRY, v&0x01 != 0)
	c.storeResult(addr, isAcc, result)
	c.setZN(result)
}

func (c *CPU) rol(mode Mode) {
	v, addr, isAcc := c.loadOperand(mode)
	var carryIn uint8
	if c.Flag(FLAG_CARRY) {
		carryIn = 1
	}
	result := (v << 1) | carryIn
	c.setFlag(FLAG_CARRY, v&0x80 != 0)
	c.storeResult(addr, isAcc, result)
	c.setZN(result)
}

func (c *CPU) ror(mode Mode) {
	v, addr, isAcc := c.loadOperand(mode)
	var carryIn uint8
	if c.Flag(FLAG_CARRY) {
		carryIn = 1
	}
	result := (v >> 1) | (carryIn << 7)
	c.setFlag(FLAG_CARRY, v&0x01 != 0)
	c.storeResult(addr, isAcc, result)
	c.setZN(result)
}

func (c *CPU) bit(mode Mode) {
	v := c.read(c.resolveAddress(mode))
	c.setFlag(FLAG_ZERO, c.A&v == 0)
	c.setFlag(FLAG_NEGATIVE, v&0x80 != 0)
	c.setFlag(FLAG_OVERFLOW, v&0x40 != 0)
}

// compare implements CMP/CPX/CPY: C is set when reg >= operand, Z when
// equal, N from bit 7 of the (mod-256) difference - spec.md §4.3 and
// §8.
func (c *CPU) compare(reg, operand uint8) {
	c.setFlag(FLAG_CARRY, reg >= operand)
	c.setZN(reg - operand)
}

func (c *CPU) dec(mode Mode) {
	addr := c.resolveAddress(mode)
	v := c.read(addr) - 1
	c.write(addr, v)
	c.setZN(v)
}

func (c *CPU) inc(mode Mode) {
	addr := c.resolveAddress(mode)
	v := c.read(addr) + 1
	c.write(addr, v)
	c.setZN(v)
}

// branch takes the branch iff Flag(mask) == want, reading the signed
// relative offset via RELATIVE addressing regardless of whether the
// branch is taken - the operand byte must be consumed either way. It
// sets PC explicitly in both cases rather than leaving the not-taken
// case for Step to infer, since a taken branch can legally land on the
// very next sequential address.
func (c *CPU) branch(mask uint8, want bool) {
	target := c.resolveAddress(RELATIVE)
	if c.Flag(mask) == want {
		c.PC = target
	} else {
		c.PC = c.nextPC
	}
}

// isControlFlow reports whether op always leaves PC in its final
// state itself, so Step must not additionally advance it by the
// instruction's length.
func isControlFlow(op Instruction) bool {
	switch op {
	case JMP, JSR, RTS, RTI, BRK, BCC, BCS, BEQ, BMI, BNE, BPL, BVC, BVS:
		return true
	default:
		return false
	}
}

func (c *CPU) brk() {
	c.pushAddr(c.PC + 1)
	c.push(c.packStatus(true))
	c.setFlag(FLAG_INTERRUPT, true)
	c.PC = c.read16(VectorBRK)
}
