package cpu_test

import (
	"testing"

	"github.com/joserochadev/emuchan-go/internal/cpu"
)

func TestSwapExchangesNibbles(t *testing.T) {
	c, b := newTestCPU()
	c.A = 0xA5
	loadProgram(b, c.PC, 0xCB, 0x37) // SWAP A
	c.Step()
	if c.A != 0x5A {
		t.Errorf("A = %#02x, want 0x5A", c.A)
	}
	if c.F != 0 {
		t.Errorf("SWAP of a non-zero result must clear every flag, F = %#02x", c.F)
	}
}

func TestSwapEveryRegisterSetsZeroFlagOnZero(t *testing.T) {
	for idx := uint8(0); idx < 8; idx++ {
		c, b := newTestCPU()
		setReg(c, b, idx, 0x00)
		loadProgram(b, c.PC, 0xCB, 0x30+idx) // SWAP reg
		c.Step()
		if c.F&cpu.FlagZero == 0 {
			t.Errorf("SWAP %s on 0x00: expected zero flag set", regNames[idx])
		}
	}
}
