package cpu

import "fmt"

func (c *CPU) sla(v uint8) uint8 {
	carry := v&0x80 != 0
	result := v << 1
	c.setFlag(FlagCarry, carry)
	c.setFlag(FlagSubtract, false)
	c.setFlag(FlagHalfCarry, false)
	c.zeroFlag(result)
	return result
}

func (c *CPU) sra(v uint8) uint8 {
	carry := v&0x01 != 0
	result := v>>1 | v&0x80
	c.setFlag(FlagCarry, carry)
	c.setFlag(FlagSubtract, false)
	c.setFlag(FlagHalfCarry, false)
	c.zeroFlag(result)
	return result
}

func (c *CPU) srl(v uint8) uint8 {
	carry := v&0x01 != 0
	result := v >> 1
	c.setFlag(FlagCarry, carry)
	c.setFlag(FlagSubtract, false)
	c.setFlag(FlagHalfCarry, false)
	c.zeroFlag(result)
	return result
}

func init() {
	for idx := uint8(0); idx < 8; idx++ {
		idx := idx
		cbInstructions[0x20+idx] = Instruction{fmt.Sprintf("SLA %s", regName(idx)), func(c *CPU) {
			c.setReg8(idx, c.sla(c.reg8(idx)))
		}}
		cbInstructions[0x28+idx] = Instruction{fmt.Sprintf("SRA %s", regName(idx)), func(c *CPU) {
			c.setReg8(idx, c.sra(c.reg8(idx)))
		}}
		cbInstructions[0x38+idx] = Instruction{fmt.Sprintf("SRL %s", regName(idx)), func(c *CPU) {
			c.setReg8(idx, c.srl(c.reg8(idx)))
		}}
	}
}
