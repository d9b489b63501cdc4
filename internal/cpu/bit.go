package cpu

import "fmt"

// bitTest sets Z according to bit b of v, clears N, sets H, leaves C
// untouched — the one flag pattern that doesn't fit the usual
// zeroFlag/setFlag-everything shape.
func (c *CPU) bitTest(b, v uint8) {
	c.setFlag(FlagZero, v&(1<<b) == 0)
	c.setFlag(FlagSubtract, false)
	c.setFlag(FlagHalfCarry, true)
}

// BIT, RES, and SET each occupy a contiguous 0x40-byte block of the CB
// table, addressed as base + 8*bit + reg.
func init() {
	for bit := uint8(0); bit < 8; bit++ {
		bit := bit
		for idx := uint8(0); idx < 8; idx++ {
			idx := idx
			cbInstructions[0x40+8*bit+idx] = Instruction{fmt.Sprintf("BIT %d, %s", bit, regName(idx)), func(c *CPU) {
				c.bitTest(bit, c.reg8(idx))
			}}
			cbInstructions[0x80+8*bit+idx] = Instruction{fmt.Sprintf("RES %d, %s", bit, regName(idx)), func(c *CPU) {
				c.setReg8(idx, c.reg8(idx)&^(1<<bit))
			}}
			cbInstructions[0xC0+8*bit+idx] = Instruction{fmt.Sprintf("SET %d, %s", bit, regName(idx)), func(c *CPU) {
				c.setReg8(idx, c.reg8(idx)|1<<bit)
			}}
		}
	}
}
