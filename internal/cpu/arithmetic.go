package cpu

import "fmt"

// add adds value (plus carryIn if set) to a and returns the result,
// updating Z, N=0, H, C.
func (c *CPU) add(a, value uint8, carryIn bool) uint8 {
	var carry uint16
	if carryIn {
		carry = 1
	}
	result := uint16(a) + uint16(value) + carry
	c.setFlag(FlagHalfCarry, (a&0xF)+(value&0xF)+uint8(carry) > 0xF)
	c.setFlag(FlagCarry, result > 0xFF)
	c.setFlag(FlagSubtract, false)
	c.zeroFlag(uint8(result))
	return uint8(result)
}

// sub subtracts value (plus carryIn if set) from a and returns the
// result, updating Z, N=1, H, C.
func (c *CPU) sub(a, value uint8, carryIn bool) uint8 {
	var carry uint8
	if carryIn {
		carry = 1
	}
	result := int16(a) - int16(value) - int16(carry)
	c.setFlag(FlagHalfCarry, int16(a&0xF)-int16(value&0xF)-int16(carry) < 0)
	c.setFlag(FlagCarry, result < 0)
	c.setFlag(FlagSubtract, true)
	c.zeroFlag(uint8(result))
	return uint8(result)
}

func (c *CPU) and(value uint8) {
	c.A &= value
	c.zeroFlag(c.A)
	c.setFlag(FlagSubtract, false)
	c.setFlag(FlagHalfCarry, true)
	c.setFlag(FlagCarry, false)
}

func (c *CPU) or(value uint8) {
	c.A |= value
	c.zeroFlag(c.A)
	c.F &= 0x80
}

func (c *CPU) xor(value uint8) {
	c.A ^= value
	c.zeroFlag(c.A)
	c.F &= 0x80
}

// cp compares a against value without storing the result, the
// non-destructive twin of sub.
func (c *CPU) cp(a, value uint8) {
	c.sub(a, value, false)
}

// incR increments an 8-bit value, leaving C untouched per the opcode's
// documented flag effects.
func (c *CPU) incR(v uint8) uint8 {
	result := v + 1
	c.setFlag(FlagHalfCarry, v&0xF == 0xF)
	c.setFlag(FlagSubtract, false)
	c.zeroFlag(result)
	return result
}

func (c *CPU) decR(v uint8) uint8 {
	result := v - 1
	c.setFlag(FlagHalfCarry, v&0xF == 0)
	c.setFlag(FlagSubtract, true)
	c.zeroFlag(result)
	return result
}

// addHL adds a 16-bit value to HL, updating N=0, H, C but leaving Z
// untouched.
func (c *CPU) addHL(value uint16) {
	hl := c.HL.Uint16()
	result := uint32(hl) + uint32(value)
	c.setFlag(FlagHalfCarry, (hl&0xFFF)+(value&0xFFF) > 0xFFF)
	c.setFlag(FlagCarry, result > 0xFFFF)
	c.setFlag(FlagSubtract, false)
	c.internalDelay()
	c.HL.SetUint16(uint16(result))
}

// addSPSigned implements the shared arithmetic behind ADD SP,r8 and
// LD HL,SP+r8: SP plus a sign-extended 8-bit immediate, with Z and N
// always cleared and H/C computed from the low byte per hardware
// quirk.
func (c *CPU) addSPSigned() uint16 {
	offset := int8(c.readOperand())
	sp := c.SP
	result := uint16(int32(sp) + int32(offset))
	c.setFlag(FlagZero, false)
	c.setFlag(FlagSubtract, false)
	c.setFlag(FlagHalfCarry, (sp&0xF)+(uint16(offset)&0xF) > 0xF)
	c.setFlag(FlagCarry, (sp&0xFF)+(uint16(offset)&0xFF) > 0xFF)
	return result
}

func (c *CPU) daa() {
	a := c.A
	var adjust uint8
	carry := false
	if c.flagSet(FlagSubtract) {
		if c.flagSet(FlagHalfCarry) {
			adjust += 0x06
		}
		if c.flagSet(FlagCarry) {
			adjust += 0x60
		}
		a -= adjust
	} else {
		if c.flagSet(FlagHalfCarry) || a&0xF > 0x9 {
			adjust += 0x06
		}
		if c.flagSet(FlagCarry) || a > 0x99 {
			adjust += 0x60
			carry = true
		}
		a += adjust
	}
	c.A = a
	c.zeroFlag(c.A)
	c.setFlag(FlagHalfCarry, false)
	c.setFlag(FlagCarry, carry)
}

func init() {
	for idx := uint8(0); idx < 8; idx++ {
		idx := idx
		instructions[0x80+idx] = Instruction{fmt.Sprintf("ADD A, %s", regName(idx)), func(c *CPU) {
			c.A = c.add(c.A, c.reg8(idx), false)
		}}
		instructions[0x88+idx] = Instruction{fmt.Sprintf("ADC A, %s", regName(idx)), func(c *CPU) {
			c.A = c.add(c.A, c.reg8(idx), c.flagSet(FlagCarry))
		}}
		instructions[0x90+idx] = Instruction{fmt.Sprintf("SUB %s", regName(idx)), func(c *CPU) {
			c.A = c.sub(c.A, c.reg8(idx), false)
		}}
		instructions[0x98+idx] = Instruction{fmt.Sprintf("SBC A, %s", regName(idx)), func(c *CPU) {
			c.A = c.sub(c.A, c.reg8(idx), c.flagSet(FlagCarry))
		}}
		instructions[0xA0+idx] = Instruction{fmt.Sprintf("AND %s", regName(idx)), func(c *CPU) {
			c.and(c.reg8(idx))
		}}
		instructions[0xA8+idx] = Instruction{fmt.Sprintf("XOR %s", regName(idx)), func(c *CPU) {
			c.xor(c.reg8(idx))
		}}
		instructions[0xB0+idx] = Instruction{fmt.Sprintf("OR %s", regName(idx)), func(c *CPU) {
			c.or(c.reg8(idx))
		}}
		instructions[0xB8+idx] = Instruction{fmt.Sprintf("CP %s", regName(idx)), func(c *CPU) {
			c.cp(c.A, c.reg8(idx))
		}}

		instructions[0x04+8*idx] = Instruction{fmt.Sprintf("INC %s", regName(idx)), func(c *CPU) {
			c.setReg8(idx, c.incR(c.reg8(idx)))
		}}
		instructions[0x05+8*idx] = Instruction{fmt.Sprintf("DEC %s", regName(idx)), func(c *CPU) {
			c.setReg8(idx, c.decR(c.reg8(idx)))
		}}
	}

	instructions[0xC6] = Instruction{"ADD A, d8", func(c *CPU) { c.A = c.add(c.A, c.readOperand(), false) }}
	instructions[0xCE] = Instruction{"ADC A, d8", func(c *CPU) { c.A = c.add(c.A, c.readOperand(), c.flagSet(FlagCarry)) }}
	instructions[0xD6] = Instruction{"SUB d8", func(c *CPU) { c.A = c.sub(c.A, c.readOperand(), false) }}
	instructions[0xDE] = Instruction{"SBC A, d8", func(c *CPU) { c.A = c.sub(c.A, c.readOperand(), c.flagSet(FlagCarry)) }}
	instructions[0xE6] = Instruction{"AND d8", func(c *CPU) { c.and(c.readOperand()) }}
	instructions[0xEE] = Instruction{"XOR d8", func(c *CPU) { c.xor(c.readOperand()) }}
	instructions[0xF6] = Instruction{"OR d8", func(c *CPU) { c.or(c.readOperand()) }}
	instructions[0xFE] = Instruction{"CP d8", func(c *CPU) { c.cp(c.A, c.readOperand()) }}

	for idx := uint8(0); idx < 4; idx++ {
		idx := idx
		instructions[0x03+8*idx] = Instruction{fmt.Sprintf("INC %s", rr16Name(idx)), func(c *CPU) {
			c.internalDelay()
			c.setRR16(idx, c.rr16(idx)+1)
		}}
		instructions[0x0B+8*idx] = Instruction{fmt.Sprintf("DEC %s", rr16Name(idx)), func(c *CPU) {
			c.internalDelay()
			c.setRR16(idx, c.rr16(idx)-1)
		}}
		instructions[0x09+8*idx] = Instruction{fmt.Sprintf("ADD HL, %s", rr16Name(idx)), func(c *CPU) {
			c.addHL(c.rr16(idx))
		}}
	}

	instructions[0x27] = Instruction{"DAA", func(c *CPU) { c.daa() }}
	instructions[0x2F] = Instruction{"CPL", func(c *CPU) {
		c.A = ^c.A
		c.setFlag(FlagSubtract, true)
		c.setFlag(FlagHalfCarry, true)
	}}
	instructions[0x37] = Instruction{"SCF", func(c *CPU) {
		c.setFlag(FlagSubtract, false)
		c.setFlag(FlagHalfCarry, false)
		c.setFlag(FlagCarry, true)
	}}
	instructions[0x3F] = Instruction{"CCF", func(c *CPU) {
		c.setFlag(FlagSubtract, false)
		c.setFlag(FlagHalfCarry, false)
		c.setFlag(FlagCarry, !c.flagSet(FlagCarry))
	}}
	instructions[0xE8] = Instruction{"ADD SP, r8", func(c *CPU) {
		c.SP = c.addSPSigned()
		c.internalDelay()
		c.internalDelay()
	}}
}
