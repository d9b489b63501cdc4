package cpu_test

import (
	"github.com/joserochadev/emuchan-go/internal/bus"
	"github.com/joserochadev/emuchan-go/internal/cpu"
)

// flatMemory is a trivial Cartridge/VideoBus stand-in: every address
// the Bus would otherwise route to cartridge or VRAM/OAM/LCD registers
// instead hits one flat byte array, which is all these tests need
// beyond the Bus's own WRAM/HRAM storage.
type flatMemory struct {
	mem [0x10000]byte
}

func (f *flatMemory) Read(addr uint16) uint8     { return f.mem[addr] }
func (f *flatMemory) Write(addr uint16, v uint8) { f.mem[addr] = v }

// newTestCPU wires a CPU to a Bus backed by flatMemory, with PC parked
// in WRAM and SP parked at the top of HRAM — the same regions a real
// cartridge's code and stack would use.
func newTestCPU() (*cpu.CPU, *bus.Bus) {
	mem := &flatMemory{}
	b := bus.New(mem, mem, nil, nil)
	c := cpu.New(b, nil)
	c.PC = 0xC000
	c.SP = 0xFFFE
	return c, b
}

// loadProgram writes bytes starting at addr through the Bus, so every
// test observes exactly what CPU.Step would read regardless of which
// region addr falls in (WRAM, HRAM, or flatMemory's cartridge/video
// ranges all dispatch correctly through b.Write).
func loadProgram(b *bus.Bus, addr uint16, bytes ...uint8) {
	for i, v := range bytes {
		b.Write(addr+uint16(i), v)
	}
}

// regNames mirrors the CPU's 3-bit register field encoding (B, C, D, E,
// H, L, (HL), A) so tests can drive every register operand of an
// opcode family without reaching into unexported decode helpers.
var regNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func getReg(c *cpu.CPU, b *bus.Bus, idx uint8) uint8 {
	switch idx {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return b.Read(c.HL.Uint16())
	default:
		return c.A
	}
}

func setReg(c *cpu.CPU, b *bus.Bus, idx uint8, v uint8) {
	switch idx {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		b.Write(c.HL.Uint16(), v)
	default:
		c.A = v
	}
}
