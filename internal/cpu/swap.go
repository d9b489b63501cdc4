package cpu

import "fmt"

// swap exchanges the high and low nibbles of v.
func (c *CPU) swap(v uint8) uint8 {
	result := v<<4 | v>>4
	c.zeroFlag(result)
	c.F &= 0x80
	return result
}

func init() {
	for idx := uint8(0); idx < 8; idx++ {
		idx := idx
		cbInstructions[0x30+idx] = Instruction{fmt.Sprintf("SWAP %s", regName(idx)), func(c *CPU) {
			c.setReg8(idx, c.swap(c.reg8(idx)))
		}}
	}
}
