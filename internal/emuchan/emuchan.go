// Package emuchan is the frame driver: it owns a CPU, Bus, PPU, and
// Cartridge and exposes the host-facing surface a shell drives one
// frame at a time.
package emuchan

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/joserochadev/emuchan-go/internal/boot"
	"github.com/joserochadev/emuchan-go/internal/bus"
	"github.com/joserochadev/emuchan-go/internal/cartridge"
	"github.com/joserochadev/emuchan-go/internal/cpu"
	"github.com/joserochadev/emuchan-go/internal/ppu"
)

// DotsPerFrame is the number of 4.194304MHz dots a single DMG frame
// takes: 154 scanlines of 456 dots each.
const DotsPerFrame = 70224

// TargetFPS is the DMG's native refresh rate.
const TargetFPS = 4194304.0 / float64(DotsPerFrame)

// State is the emulator's run state.
type State uint8

const (
	StateRunning State = iota
	StatePaused
)

// Emulator is the single owner of a loaded game's CPU, Bus, PPU, and
// Cartridge. None of its methods are safe for concurrent use; a host
// driving it from multiple goroutines must serialize its own calls.
type Emulator struct {
	cpu  *cpu.CPU
	bus  *bus.Bus
	ppu  *ppu.PPU
	cart *cartridge.Cartridge

	state State
	err   error

	log       *logrus.Logger
	bootImage []byte
	model     string

	lastFrameWall time.Duration
	speedPercent  float64
}

// New loads rom and wires up a fresh CPU/Bus/PPU/Cartridge, applying
// opts before the first instruction is fetched.
func New(rom []byte, opts ...Option) (*Emulator, error) {
	if len(rom) == 0 {
		return nil, fmt.Errorf("emuchan: empty ROM image")
	}

	e := &Emulator{speedPercent: 100}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logrus.New()
		e.log.Formatter = &logrus.TextFormatter{
			DisableColors:    true,
			DisableTimestamp: true,
		}
	}

	e.cart = cartridge.New(rom)
	e.ppu = ppu.New()

	var bootROM *boot.ROM
	if len(e.bootImage) > 0 {
		bootROM = boot.New(e.bootImage)
	}
	e.bus = bus.New(e.cart, e.ppu, bootROM, e.log)
	e.cpu = cpu.New(e.bus, e.log)

	e.resetRegisters(bootROM.Loaded())

	return e, nil
}

// LoadROM replaces the currently loaded cartridge and resets CPU/PPU
// state, as if the console had been power-cycled with a new cartridge
// inserted.
func (e *Emulator) LoadROM(rom []byte) error {
	if len(rom) == 0 {
		return fmt.Errorf("emuchan: empty ROM image")
	}
	e.cart = cartridge.New(rom)
	e.ppu = ppu.New()

	var bootROM *boot.ROM
	if len(e.bootImage) > 0 {
		bootROM = boot.New(e.bootImage)
	}
	e.bus = bus.New(e.cart, e.ppu, bootROM, e.log)
	e.cpu = cpu.New(e.bus, e.log)
	e.resetRegisters(bootROM.Loaded())
	e.state = StateRunning
	e.err = nil
	return nil
}

// resetRegisters sets the CPU to its post-boot-ROM register state
// (matching the values the real DMG boot ROM leaves behind) unless an
// actual boot image was supplied, in which case execution starts at
// 0x0000 with zeroed registers and the overlay runs first.
func (e *Emulator) resetRegisters(hasBootROM bool) {
	if hasBootROM {
		e.cpu.PC, e.cpu.SP = 0x0000, 0x0000
		e.cpu.A, e.cpu.F = 0x00, 0x00
		e.cpu.B, e.cpu.C = 0x00, 0x00
		e.cpu.D, e.cpu.E = 0x00, 0x00
		e.cpu.H, e.cpu.L = 0x00, 0x00
		return
	}
	e.cpu.PC, e.cpu.SP = 0x0100, 0xFFFE
	e.cpu.A, e.cpu.F = 0x01, 0xB0
	e.cpu.B, e.cpu.C = 0x00, 0x13
	e.cpu.D, e.cpu.E = 0x00, 0xD8
	e.cpu.H, e.cpu.L = 0x01, 0x4D
}

// SetState transitions between Running and Paused. Pausing never
// discards state: a subsequent SetState(StateRunning) resumes exactly
// where execution left off.
func (e *Emulator) SetState(s State) {
	e.state = s
}

// State reports the emulator's current run state.
func (e *Emulator) State() State {
	return e.state
}

// Err returns the last fault recorded by RunOneFrame (an unknown
// opcode, per the CPU's EmuError), or nil.
func (e *Emulator) Err() error {
	return e.err
}

// RunOneFrame steps the CPU until DotsPerFrame dots have been
// consumed, feeding each instruction's dot count to the PPU in
// lock-step and requesting the VBlank interrupt when the PPU reports
// entering it. If paused, or if a prior fault left the emulator
// paused, RunOneFrame returns immediately without advancing state.
func (e *Emulator) RunOneFrame() {
	if e.state != StateRunning {
		return
	}

	start := time.Now()
	dots := 0
	for dots < DotsPerFrame {
		spent := e.cpu.Step()
		dots += spent

		if e.cpu.LastError != nil {
			e.err = e.cpu.LastError
			e.state = StatePaused
			return
		}

		if e.ppu.Step(spent) {
			e.bus.RequestInterrupt(bus.IntVBlank)
		}
	}

	elapsed := time.Since(start)
	e.lastFrameWall = elapsed
	const frameInterval = time.Second * DotsPerFrame / 4194304
	if elapsed > 0 {
		e.speedPercent = 100 * float64(frameInterval) / float64(elapsed)
	}
}

// VideoBuffer returns the most recently completed frame as raw 2-bit
// shade indices (0-3), row-major, 160x144. Mapping those indices to
// displayable colors is left to the host.
func (e *Emulator) VideoBuffer() [ppu.ScreenHeight][ppu.ScreenWidth]uint8 {
	return e.ppu.VideoBuffer()
}

// GameTitle returns the cartridge header's game title.
func (e *Emulator) GameTitle() string {
	return e.cart.Title()
}

// FPS returns the DMG's native frame rate, independent of how fast
// RunOneFrame is actually being called.
func (e *Emulator) FPS() float64 {
	return TargetFPS
}

// SpeedPercent returns the ratio of native DMG frame time to the wall-
// clock time the most recent RunOneFrame call took, as a percentage —
// 100 means real-time, above 100 means running faster than a real
// console would. It reflects only the cost of emulation itself, not the
// time a host spends between calls, so a host that throttles
// RunOneFrame to a fixed rate still sees well above 100 on a fast
// machine.
func (e *Emulator) SpeedPercent() float64 {
	return e.speedPercent
}
