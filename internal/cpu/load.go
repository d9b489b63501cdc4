package cpu

import "fmt"

func init() {
	// LD r, r' — the single largest contiguous block in the base table,
	// 0x40-0x7F, with 0x76 (HALT) carved out of what would otherwise be
	// LD (HL), (HL).
	for dst := uint8(0); dst < 8; dst++ {
		dst := dst
		for src := uint8(0); src < 8; src++ {
			src := src
			op := 0x40 + 8*dst + src
			if op == 0x76 {
				continue
			}
			instructions[op] = Instruction{fmt.Sprintf("LD %s, %s", regName(dst), regName(src)), func(c *CPU) {
				c.setReg8(dst, c.reg8(src))
			}}
		}
	}
	instructions[0x76] = Instruction{"HALT", func(c *CPU) { c.halt() }}

	for idx := uint8(0); idx < 8; idx++ {
		idx := idx
		instructions[0x06+8*idx] = Instruction{fmt.Sprintf("LD %s, d8", regName(idx)), func(c *CPU) {
			c.setReg8(idx, c.readOperand())
		}}
	}

	for idx := uint8(0); idx < 4; idx++ {
		idx := idx
		instructions[0x01+8*idx] = Instruction{fmt.Sprintf("LD %s, d16", rr16Name(idx)), func(c *CPU) {
			c.setRR16(idx, c.readOperand16())
		}}
	}

	instructions[0x02] = Instruction{"LD (BC), A", func(c *CPU) { c.writeByte(c.BC.Uint16(), c.A) }}
	instructions[0x12] = Instruction{"LD (DE), A", func(c *CPU) { c.writeByte(c.DE.Uint16(), c.A) }}
	instructions[0x0A] = Instruction{"LD A, (BC)", func(c *CPU) { c.A = c.readByte(c.BC.Uint16()) }}
	instructions[0x1A] = Instruction{"LD A, (DE)", func(c *CPU) { c.A = c.readByte(c.DE.Uint16()) }}

	instructions[0x22] = Instruction{"LD (HL+), A", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() + 1)
	}}
	instructions[0x32] = Instruction{"LD (HL-), A", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() - 1)
	}}
	instructions[0x2A] = Instruction{"LD A, (HL+)", func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	}}
	instructions[0x3A] = Instruction{"LD A, (HL-)", func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	}}

	instructions[0x08] = Instruction{"LD (a16), SP", func(c *CPU) {
		addr := c.readOperand16()
		c.writeByte(addr, uint8(c.SP))
		c.writeByte(addr+1, uint8(c.SP>>8))
	}}

	instructions[0xEA] = Instruction{"LD (a16), A", func(c *CPU) { c.writeByte(c.readOperand16(), c.A) }}
	instructions[0xFA] = Instruction{"LD A, (a16)", func(c *CPU) { c.A = c.readByte(c.readOperand16()) }}

	instructions[0xE0] = Instruction{"LDH (a8), A", func(c *CPU) { c.writeByte(0xFF00+uint16(c.readOperand()), c.A) }}
	instructions[0xF0] = Instruction{"LDH A, (a8)", func(c *CPU) { c.A = c.readByte(0xFF00 + uint16(c.readOperand())) }}
	instructions[0xE2] = Instruction{"LD (C), A", func(c *CPU) { c.writeByte(0xFF00+uint16(c.C), c.A) }}
	instructions[0xF2] = Instruction{"LD A, (C)", func(c *CPU) { c.A = c.readByte(0xFF00 + uint16(c.C)) }}

	instructions[0xF9] = Instruction{"LD SP, HL", func(c *CPU) {
		c.internalDelay()
		c.SP = c.HL.Uint16()
	}}
	instructions[0xF8] = Instruction{"LD HL, SP+r8", func(c *CPU) {
		c.HL.SetUint16(c.addSPSigned())
		c.internalDelay()
	}}

	for idx := uint8(0); idx < 4; idx++ {
		idx := idx
		instructions[0xC1+16*idx] = Instruction{fmt.Sprintf("POP %s", pushPop16Name(idx)), func(c *CPU) {
			c.setPushPop16(idx, c.pop())
		}}
		instructions[0xC5+16*idx] = Instruction{fmt.Sprintf("PUSH %s", pushPop16Name(idx)), func(c *CPU) {
			c.internalDelay()
			c.push(c.pushPop16(idx))
		}}
	}
}
