// Package cpu implements the Sharp SM83 instruction set: the full
// base and CB-prefixed opcode tables, flag semantics, and dots-based
// cycle accounting. It knows nothing about frames or scanlines; the
// frame driver steps it instruction by instruction.
package cpu

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/joserochadev/emuchan-go/internal/bus"
)

// Instruction is one entry of the 256-slot base or CB-prefixed
// dispatch table. Execute fetches any operand bytes it needs itself
// (via the CPU's readOperand), so that every memory access ticks the
// dot counter at the moment it actually happens, rather than against a
// precomputed cycle count.
type Instruction struct {
	Name    string
	Execute func(c *CPU)
}

// instructions and cbInstructions are populated by init() functions
// spread across arithmetic.go, rotate.go, shift.go, bit.go, swap.go,
// load.go, and jump.go — one file per opcode family, mirroring how the
// instruction set is documented.
var instructions [256]Instruction
var cbInstructions [256]Instruction

// Mode distinguishes the CPU's run state from straight-line execution.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeHalt
	ModeStop
	ModeHaltBug
)

// EmuError is returned (and recorded) when the CPU encounters an
// opcode with no table entry. It carries enough context for a host to
// print a useful diagnostic without the core needing to know how.
type EmuError struct {
	PC     uint16
	Opcode uint8
	Msg    string
}

func (e *EmuError) Error() string {
	return fmt.Sprintf("cpu: %s (opcode 0x%02X at PC 0x%04X)", e.Msg, e.Opcode, e.PC)
}

// CPU is the SM83 core: registers, program counter, stack pointer, and
// the bus it reads and writes through. It holds no PPU or timer
// reference; the frame driver is solely responsible for advancing
// those components based on the dots CPU.Step reports.
type CPU struct {
	Registers

	PC uint16
	SP uint16

	IME        bool
	imePending bool

	mode Mode

	Bus *bus.Bus
	Log *logrus.Logger

	dots int

	LastError error
}

// New constructs a CPU wired to bus. Registers start zeroed; a caller
// that wants the post-boot-ROM register state (as if the DMG boot ROM
// had already run) should set them directly before the first Step.
func New(b *bus.Bus, log *logrus.Logger) *CPU {
	if log == nil {
		log = logrus.New()
	}
	c := &CPU{Bus: b, Log: log}
	c.Registers.link()
	return c
}

// tick accounts one M-cycle (4 dots) of bus activity.
func (c *CPU) tick() {
	c.dots += 4
}

// readOperand fetches the byte at PC, advances PC, and ticks once.
// Every opcode and operand byte goes through this single path so the
// dot count always matches the number of bus accesses actually made.
func (c *CPU) readOperand() uint8 {
	v := c.Bus.Read(c.PC)
	c.PC++
	c.tick()
	return v
}

// readOperand16 reads a little-endian 16-bit immediate.
func (c *CPU) readOperand16() uint16 {
	lo := c.readOperand()
	hi := c.readOperand()
	return uint16(hi)<<8 | uint16(lo)
}

// readByte reads addr without advancing PC, ticking once.
func (c *CPU) readByte(addr uint16) uint8 {
	v := c.Bus.Read(addr)
	c.tick()
	return v
}

// writeByte writes value to addr, ticking once.
func (c *CPU) writeByte(addr uint16, value uint8) {
	c.Bus.Write(addr, value)
	c.tick()
}

// internalDelay accounts for an M-cycle of internal CPU activity that
// touches no bus line — 16-bit ALU ops, PUSH's extra cycle, a taken
// branch's extra cycle.
func (c *CPU) internalDelay() {
	c.tick()
}

// push writes a 16-bit value onto the stack, high byte first, SP
// predecrementing before each byte.
func (c *CPU) push(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// pop reads a 16-bit value off the stack, low byte first.
func (c *CPU) pop() uint16 {
	lo := c.readByte(c.SP)
	c.SP++
	hi := c.readByte(c.SP)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// Step executes exactly one instruction (or one halted/stopped tick)
// and returns the number of dots it consumed. The frame driver calls
// Step in a loop, feeding each return value to the PPU.
func (c *CPU) Step() int {
	c.dots = 0

	if c.imePending {
		c.IME = true
		c.imePending = false
	}

	switch c.mode {
	case ModeHalt, ModeStop:
		c.tick()
		if c.Bus.PendingInterrupts() != 0 {
			c.mode = ModeNormal
		}
	default:
		c.step()
	}

	if c.IME && c.Bus.PendingInterrupts() != 0 {
		c.serviceInterrupt()
	}

	return c.dots
}

func (c *CPU) step() {
	pc := c.PC
	opcode := c.readOperand()

	if c.mode == ModeHaltBug {
		c.PC--
		c.mode = ModeNormal
	}

	var instr Instruction
	if opcode == 0xCB {
		sub := c.readOperand()
		instr = cbInstructions[sub]
	} else {
		instr = instructions[opcode]
	}

	if instr.Execute == nil {
		err := &EmuError{PC: pc, Opcode: opcode, Msg: "unknown opcode"}
		c.LastError = err
		c.Log.Errorf(err.Error())
		return
	}

	instr.Execute(c)
}

// serviceInterrupt jumps to the highest-priority pending interrupt's
// vector, matching the spec's minimal model: only VBlank (bit 0,
// vector 0x0040) is ever actually requested by the PPU in this core,
// but the full five-bit priority scan is implemented since nothing
// prevents a host from wiring a different interrupt source onto IF.
func (c *CPU) serviceInterrupt() {
	pending := c.Bus.PendingInterrupts()
	var bit uint8
	var vector uint16
	switch {
	case pending&bus.IntVBlank != 0:
		bit, vector = bus.IntVBlank, 0x0040
	case pending&bus.IntLCDStat != 0:
		bit, vector = bus.IntLCDStat, 0x0048
	case pending&bus.IntTimer != 0:
		bit, vector = bus.IntTimer, 0x0050
	case pending&bus.IntSerial != 0:
		bit, vector = bus.IntSerial, 0x0058
	case pending&bus.IntJoypad != 0:
		bit, vector = bus.IntJoypad, 0x0060
	default:
		return
	}

	c.IME = false
	c.Bus.SetIF(c.Bus.IF() &^ bit)

	c.internalDelay()
	c.internalDelay()
	c.push(c.PC)
	c.PC = vector
}

// halt enters HALT mode; called by the 0x76 opcode handler.
func (c *CPU) halt() {
	if !c.IME && c.Bus.PendingInterrupts() != 0 {
		c.mode = ModeHaltBug
		return
	}
	c.mode = ModeHalt
}

// stop enters STOP mode; called by the 0x10 opcode handler.
func (c *CPU) stop() {
	c.mode = ModeStop
}

// enableInterruptsDelayed schedules IME to become true after the next
// instruction completes, matching EI's documented one-instruction
// delay.
func (c *CPU) enableInterruptsDelayed() {
	c.imePending = true
}

// disableInterrupts implements DI: immediate, no delay.
func (c *CPU) disableInterrupts() {
	c.IME = false
	c.imePending = false
}

// Mode reports the CPU's current run mode, for tests and debugging.
func (c *CPU) Mode() Mode {
	return c.mode
}
