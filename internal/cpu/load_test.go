package cpu_test

import "testing"

func TestLoadHLImmediate(t *testing.T) {
	c, b := newTestCPU()
	loadProgram(b, c.PC, 0x21, 0x34, 0x12) // LD HL, 0x1234
	c.Step()
	if got := c.HL.Uint16(); got != 0x1234 {
		t.Errorf("HL = %#04x, want 0x1234", got)
	}
}

func TestLoadImmediateToEveryRegister(t *testing.T) {
	opcodes := [8]uint8{0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E}
	for idx, op := range opcodes {
		c, b := newTestCPU()
		loadProgram(b, c.PC, op, 0x5A)
		c.Step()
		if got := getReg(c, b, uint8(idx)); got != 0x5A {
			t.Errorf("LD %s, d8: got %#02x, want 0x5A", regNames[idx], got)
		}
	}
}

func TestLoadRegisterToRegister(t *testing.T) {
	// LD B, A (0x47) copies A into B without disturbing A.
	c, b := newTestCPU()
	c.A = 0x77
	loadProgram(b, c.PC, 0x47)
	c.Step()
	if c.B != 0x77 {
		t.Errorf("B = %#02x, want 0x77", c.B)
	}
	if c.A != 0x77 {
		t.Errorf("LD r,r' must not disturb the source register, A = %#02x", c.A)
	}
}

func TestLoadHLIncrementDecrement(t *testing.T) {
	c, b := newTestCPU()
	c.A = 0x99
	c.HL.SetUint16(0xC100)
	loadProgram(b, c.PC, 0x22) // LD (HL+), A
	c.Step()
	if got := b.Read(0xC100); got != 0x99 {
		t.Errorf("(HL) = %#02x, want 0x99", got)
	}
	if c.HL.Uint16() != 0xC101 {
		t.Errorf("HL after LD (HL+),A = %#04x, want 0xC101", c.HL.Uint16())
	}

	c, b = newTestCPU()
	c.A = 0x55
	c.HL.SetUint16(0xC100)
	loadProgram(b, c.PC, 0x32) // LD (HL-), A
	c.Step()
	if c.HL.Uint16() != 0xC0FF {
		t.Errorf("HL after LD (HL-),A = %#04x, want 0xC0FF", c.HL.Uint16())
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	c, b := newTestCPU()
	c.B, c.C = 0xBE, 0xEF
	loadProgram(b, c.PC, 0xC5) // PUSH BC
	dots := c.Step()
	if dots != 16 {
		t.Errorf("PUSH BC took %d dots, want 16", dots)
	}

	c.B, c.C = 0x00, 0x00
	loadProgram(b, c.PC, 0xD1) // POP DE
	c.Step()
	if c.D != 0xBE || c.E != 0xEF {
		t.Errorf("DE after POP = %#02x%02x, want BEEF", c.D, c.E)
	}
}

func TestAFWriteMasksLowNibble(t *testing.T) {
	c, b := newTestCPU()
	c.SP = 0xFFFC
	b.Write(0xFFFC, 0xFF) // low byte popped into F
	b.Write(0xFFFD, 0x12) // high byte popped into A
	loadProgram(b, c.PC, 0xF1) // POP AF
	c.Step()
	if c.A != 0x12 {
		t.Errorf("A = %#02x, want 0x12", c.A)
	}
	if c.F != 0xF0 {
		t.Errorf("F = %#02x, want 0xF0 (low nibble must be forced to zero)", c.F)
	}
}

func TestLoadSPPlusOffsetAlwaysClearsZeroAndSubtract(t *testing.T) {
	c, b := newTestCPU()
	c.SP = 0x0005
	loadProgram(b, c.PC, 0xF8, 0xFF) // LD HL, SP + (-1)
	dots := c.Step()
	if dots != 12 {
		t.Errorf("LD HL,SP+r8 took %d dots, want 12", dots)
	}
	if got := c.HL.Uint16(); got != 0x0004 {
		t.Errorf("HL = %#04x, want 0x0004", got)
	}
	if c.F&0xC0 != 0 {
		t.Errorf("Z and N must both be clear, F = %#02x", c.F)
	}
}
