package cpu

import "fmt"

func (c *CPU) rlc(v uint8) uint8 {
	carry := v&0x80 != 0
	result := v<<1 | v>>7
	c.setFlag(FlagCarry, carry)
	c.setFlag(FlagSubtract, false)
	c.setFlag(FlagHalfCarry, false)
	c.zeroFlag(result)
	return result
}

func (c *CPU) rrc(v uint8) uint8 {
	carry := v&0x01 != 0
	result := v>>1 | v<<7
	c.setFlag(FlagCarry, carry)
	c.setFlag(FlagSubtract, false)
	c.setFlag(FlagHalfCarry, false)
	c.zeroFlag(result)
	return result
}

func (c *CPU) rl(v uint8) uint8 {
	var in uint8
	if c.flagSet(FlagCarry) {
		in = 1
	}
	carry := v&0x80 != 0
	result := v<<1 | in
	c.setFlag(FlagCarry, carry)
	c.setFlag(FlagSubtract, false)
	c.setFlag(FlagHalfCarry, false)
	c.zeroFlag(result)
	return result
}

func (c *CPU) rr(v uint8) uint8 {
	var in uint8
	if c.flagSet(FlagCarry) {
		in = 0x80
	}
	carry := v&0x01 != 0
	result := v>>1 | in
	c.setFlag(FlagCarry, carry)
	c.setFlag(FlagSubtract, false)
	c.setFlag(FlagHalfCarry, false)
	c.zeroFlag(result)
	return result
}

func init() {
	instructions[0x07] = Instruction{"RLCA", func(c *CPU) {
		c.A = c.rlc(c.A)
		c.setFlag(FlagZero, false)
	}}
	instructions[0x0F] = Instruction{"RRCA", func(c *CPU) {
		c.A = c.rrc(c.A)
		c.setFlag(FlagZero, false)
	}}
	instructions[0x17] = Instruction{"RLA", func(c *CPU) {
		c.A = c.rl(c.A)
		c.setFlag(FlagZero, false)
	}}
	instructions[0x1F] = Instruction{"RRA", func(c *CPU) {
		c.A = c.rr(c.A)
		c.setFlag(FlagZero, false)
	}}

	for idx := uint8(0); idx < 8; idx++ {
		idx := idx
		cbInstructions[0x00+idx] = Instruction{fmt.Sprintf("RLC %s", regName(idx)), func(c *CPU) {
			c.setReg8(idx, c.rlc(c.reg8(idx)))
		}}
		cbInstructions[0x08+idx] = Instruction{fmt.Sprintf("RRC %s", regName(idx)), func(c *CPU) {
			c.setReg8(idx, c.rrc(c.reg8(idx)))
		}}
		cbInstructions[0x10+idx] = Instruction{fmt.Sprintf("RL %s", regName(idx)), func(c *CPU) {
			c.setReg8(idx, c.rl(c.reg8(idx)))
		}}
		cbInstructions[0x18+idx] = Instruction{fmt.Sprintf("RR %s", regName(idx)), func(c *CPU) {
			c.setReg8(idx, c.rr(c.reg8(idx)))
		}}
	}
}
