package cpu

import "fmt"

func (c *CPU) jumpRelative() {
	offset := int8(c.readOperand())
	c.internalDelay()
	c.PC = uint16(int32(c.PC) + int32(offset))
}

func (c *CPU) jumpAbsolute(target uint16) {
	c.internalDelay()
	c.PC = target
}

func (c *CPU) call(target uint16) {
	c.internalDelay()
	c.push(c.PC)
	c.PC = target
}

func (c *CPU) ret() {
	c.PC = c.pop()
	c.internalDelay()
}

func init() {
	instructions[0x00] = Instruction{"NOP", func(c *CPU) {}}
	instructions[0x10] = Instruction{"STOP", func(c *CPU) {
		c.readOperand() // STOP is followed by an ignored padding byte
		c.stop()
	}}
	instructions[0xF3] = Instruction{"DI", func(c *CPU) { c.disableInterrupts() }}
	instructions[0xFB] = Instruction{"EI", func(c *CPU) { c.enableInterruptsDelayed() }}

	instructions[0x18] = Instruction{"JR r8", func(c *CPU) { c.jumpRelative() }}
	for idx := uint8(0); idx < 4; idx++ {
		idx := idx
		instructions[0x20+8*idx] = Instruction{fmt.Sprintf("JR %s, r8", conditionName(idx)), func(c *CPU) {
			offset := int8(c.readOperand())
			if c.condition(idx) {
				c.internalDelay()
				c.PC = uint16(int32(c.PC) + int32(offset))
			}
		}}
	}

	instructions[0xC3] = Instruction{"JP a16", func(c *CPU) { c.jumpAbsolute(c.readOperand16()) }}
	instructions[0xE9] = Instruction{"JP HL", func(c *CPU) { c.PC = c.HL.Uint16() }}
	for idx := uint8(0); idx < 4; idx++ {
		idx := idx
		instructions[0xC2+8*idx] = Instruction{fmt.Sprintf("JP %s, a16", conditionName(idx)), func(c *CPU) {
			target := c.readOperand16()
			if c.condition(idx) {
				c.jumpAbsolute(target)
			}
		}}
		instructions[0xC4+8*idx] = Instruction{fmt.Sprintf("CALL %s, a16", conditionName(idx)), func(c *CPU) {
			target := c.readOperand16()
			if c.condition(idx) {
				c.call(target)
			}
		}}
		instructions[0xC0+8*idx] = Instruction{fmt.Sprintf("RET %s", conditionName(idx)), func(c *CPU) {
			c.internalDelay()
			if c.condition(idx) {
				c.ret()
			}
		}}
	}

	instructions[0xCD] = Instruction{"CALL a16", func(c *CPU) { c.call(c.readOperand16()) }}
	instructions[0xC9] = Instruction{"RET", func(c *CPU) { c.ret() }}
	instructions[0xD9] = Instruction{"RETI", func(c *CPU) {
		c.IME = true
		c.ret()
	}}

	for idx := uint8(0); idx < 8; idx++ {
		idx := idx
		instructions[0xC7+8*idx] = Instruction{fmt.Sprintf("RST %02Xh", 8*idx), func(c *CPU) {
			c.call(uint16(8 * idx))
		}}
	}
}
