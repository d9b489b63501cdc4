package cpu_test

import (
	"testing"

	"github.com/joserochadev/emuchan-go/internal/bus"
	"github.com/joserochadev/emuchan-go/internal/cpu"
)

func TestNOP(t *testing.T) {
	c, b := newTestCPU()
	loadProgram(b, c.PC, 0x00)
	dots := c.Step()
	if dots != 4 {
		t.Errorf("NOP took %d dots, want 4", dots)
	}
	if c.PC != 0xC001 {
		t.Errorf("PC = %#04x, want 0xC001", c.PC)
	}
}

func TestUnknownOpcodeRecordsError(t *testing.T) {
	c, b := newTestCPU()
	loadProgram(b, c.PC, 0xD3) // illegal opcode
	c.Step()
	if c.LastError == nil {
		t.Fatal("expected LastError to be set for an illegal opcode")
	}
}

func TestHaltTicksWithoutFetchingUntilInterruptPending(t *testing.T) {
	c, b := newTestCPU()
	loadProgram(b, c.PC, 0x76) // HALT
	c.Step()
	if c.Mode() != cpu.ModeHalt {
		t.Fatalf("Mode() = %v, want ModeHalt", c.Mode())
	}

	dots := c.Step()
	if dots != 4 {
		t.Errorf("a halted Step took %d dots, want 4", dots)
	}
	if c.PC != 0xC001 {
		t.Errorf("PC advanced during HALT, PC = %#04x, want 0xC001", c.PC)
	}

	b.Write(0xFFFF, bus.IntVBlank)
	b.RequestInterrupt(bus.IntVBlank)
	c.Step()
	if c.Mode() != cpu.ModeNormal {
		t.Errorf("Mode() = %v, want ModeNormal once an interrupt is pending", c.Mode())
	}
}
