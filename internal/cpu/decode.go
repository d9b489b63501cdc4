package cpu

// reg8 and setReg8 implement the SM83's 3-bit register field encoding,
// shared by every opcode whose bit layout embeds one: B, C, D, E, H,
// L, (HL), A in that order. Index 6 — (HL) — is a memory access and
// ticks the bus accordingly; the other seven are free.
func (c *CPU) reg8(idx uint8) uint8 {
	switch idx {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.readByte(c.HL.Uint16())
	default:
		return c.A
	}
}

func (c *CPU) setReg8(idx uint8, v uint8) {
	switch idx {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		c.writeByte(c.HL.Uint16(), v)
	default:
		c.A = v
	}
}

func regName(idx uint8) string {
	return [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}[idx]
}

// rr16 returns the 16-bit register pair addressed by the 2-bit field
// used by LD rr,d16 / INC rr / DEC rr / ADD HL,rr — BC, DE, HL, SP.
func (c *CPU) rr16(idx uint8) uint16 {
	switch idx {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		return c.HL.Uint16()
	default:
		return c.SP
	}
}

func (c *CPU) setRR16(idx uint8, v uint16) {
	switch idx {
	case 0:
		c.BC.SetUint16(v)
	case 1:
		c.DE.SetUint16(v)
	case 2:
		c.HL.SetUint16(v)
	default:
		c.SP = v
	}
}

// rr16Name matches rr16's field ordering for instruction labels.
func rr16Name(idx uint8) string {
	return [4]string{"BC", "DE", "HL", "SP"}[idx]
}

// pushPop16 is the PUSH/POP variant of the 2-bit pair field: BC, DE,
// HL, AF — the fourth slot is AF instead of SP.
func (c *CPU) pushPop16(idx uint8) uint16 {
	switch idx {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		return c.HL.Uint16()
	default:
		return c.AF.Uint16()
	}
}

func (c *CPU) setPushPop16(idx uint8, v uint16) {
	switch idx {
	case 0:
		c.BC.SetUint16(v)
	case 1:
		c.DE.SetUint16(v)
	case 2:
		c.HL.SetUint16(v)
	default:
		c.setAF(v)
	}
}

func pushPop16Name(idx uint8) string {
	return [4]string{"BC", "DE", "HL", "AF"}[idx]
}

// condition evaluates one of the four branch conditions encoded in
// JR/JP/CALL/RET cc opcodes: NZ, Z, NC, C.
func (c *CPU) condition(idx uint8) bool {
	switch idx {
	case 0:
		return !c.flagSet(FlagZero)
	case 1:
		return c.flagSet(FlagZero)
	case 2:
		return !c.flagSet(FlagCarry)
	default:
		return c.flagSet(FlagCarry)
	}
}

func conditionName(idx uint8) string {
	return [4]string{"NZ", "Z", "NC", "C"}[idx]
}
