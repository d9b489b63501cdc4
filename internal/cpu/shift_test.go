package cpu_test

import (
	"testing"

	"github.com/joserochadev/emuchan-go/internal/cpu"
)

func TestSLAShiftsZeroIntoBit0(t *testing.T) {
	c, b := newTestCPU()
	c.B = 0x81
	loadProgram(b, c.PC, 0xCB, 0x20) // SLA B
	c.Step()
	if c.B != 0x02 {
		t.Errorf("B = %#02x, want 0x02", c.B)
	}
	if c.F&cpu.FlagCarry == 0 {
		t.Errorf("expected carry set from the old bit 7")
	}
}

func TestSRAPreservesSignBit(t *testing.T) {
	c, b := newTestCPU()
	c.B = 0x81 // 1000_0001
	loadProgram(b, c.PC, 0xCB, 0x28) // SRA B
	c.Step()
	if c.B != 0xC0 { // 1100_0000
		t.Errorf("B = %#02x, want 0xC0 (bit 7 preserved)", c.B)
	}
	if c.F&cpu.FlagCarry == 0 {
		t.Errorf("expected carry set from the old bit 0")
	}
}

func TestSRLClearsTopBit(t *testing.T) {
	c, b := newTestCPU()
	c.B = 0x81
	loadProgram(b, c.PC, 0xCB, 0x38) // SRL B
	c.Step()
	if c.B != 0x40 {
		t.Errorf("B = %#02x, want 0x40 (0 shifted into bit 7)", c.B)
	}
	if c.F&cpu.FlagCarry == 0 {
		t.Errorf("expected carry set from the old bit 0")
	}
}

func TestCBShiftsEveryRegisterReportsZeroFlag(t *testing.T) {
	cases := []struct {
		name string
		base uint8
	}{{"SLA", 0x20}, {"SRA", 0x28}, {"SRL", 0x38}}
	for _, tc := range cases {
		for idx := uint8(0); idx < 8; idx++ {
			c, b := newTestCPU()
			setReg(c, b, idx, 0x00)
			loadProgram(b, c.PC, 0xCB, tc.base+idx)
			c.Step()
			if c.F&cpu.FlagZero == 0 {
				t.Errorf("CB %s %s on 0x00: expected zero flag set", tc.name, regNames[idx])
			}
		}
	}
}
