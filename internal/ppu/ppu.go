// Package ppu implements the scanline-granular picture processing
// unit: the four-mode timing state machine, VRAM/OAM storage, and
// background/window/sprite composition into a raw shade-index
// framebuffer. It never produces RGB — that remapping is a host/GUI
// concern.
package ppu

import (
	"github.com/joserochadev/emuchan-go/internal/ppu/lcd"
	"github.com/joserochadev/emuchan-go/internal/ppu/palette"
)

const (
	ScreenWidth  = 160
	ScreenHeight = 144

	dotsOAM    = 80
	dotsVRAM   = 172
	dotsHBlank = 204
	dotsLine   = dotsOAM + dotsVRAM + dotsHBlank // 456
	totalLines = 154
)

// PPU owns VRAM, OAM, the LCD registers, and the composited
// framebuffer. It satisfies bus.VideoBus.
type PPU struct {
	vram [0x2000]byte
	oam  [0xA0]byte

	LCDC *lcd.Controller
	STAT *lcd.Status

	scy, scx uint8
	ly, lyc  uint8
	wy, wx   uint8

	bgp, obp0, obp1 palette.Palette

	dotClock int

	buffer      [ScreenHeight][ScreenWidth]uint8
	bgColorID   [ScreenHeight][ScreenWidth]uint8 // for sprite BG-priority tests
	windowLine  int
	framePixels [ScreenHeight][ScreenWidth]uint8
}

// New returns a PPU in its post-boot-ROM power-up state.
func New() *PPU {
	p := &PPU{
		LCDC: lcd.NewController(),
		STAT: lcd.NewStatus(),
		bgp:  palette.FromByte(0xFC),
		obp0: palette.FromByte(0xFF),
		obp1: palette.FromByte(0xFF),
	}
	p.STAT.Mode = lcd.AccessOAM
	return p
}

// Read dispatches a guest read to VRAM, OAM, or an LCD register.
func (p *PPU) Read(addr uint16) uint8 {
	switch {
	case addr >= 0x8000 && addr < 0xA000:
		return p.vram[addr-0x8000]
	case addr >= 0xFE00 && addr < 0xFEA0:
		return p.oam[addr-0xFE00]
	case addr == 0xFF40:
		return p.LCDC.Read()
	case addr == 0xFF41:
		return p.STAT.Read()
	case addr == 0xFF42:
		return p.scy
	case addr == 0xFF43:
		return p.scx
	case addr == 0xFF44:
		return p.ly
	case addr == 0xFF45:
		return p.lyc
	case addr == 0xFF46:
		return 0xFF // DMA register is write-only in practice
	case addr == 0xFF47:
		return p.bgp.ToByte()
	case addr == 0xFF48:
		return p.obp0.ToByte()
	case addr == 0xFF49:
		return p.obp1.ToByte()
	case addr == 0xFF4A:
		return p.wy
	case addr == 0xFF4B:
		return p.wx
	default:
		return 0xFF
	}
}

// Write dispatches a guest write the same way Read dispatches reads.
// OAM DMA (0xFF46) is not handled here: the Bus performs the 160-byte
// copy itself, since it needs read access to the rest of the address
// space, and delivers each byte through this method's OAM range.
func (p *PPU) Write(addr uint16, value uint8) {
	switch {
	case addr >= 0x8000 && addr < 0xA000:
		p.vram[addr-0x8000] = value
	case addr >= 0xFE00 && addr < 0xFEA0:
		p.oam[addr-0xFE00] = value
	case addr == 0xFF40:
		p.LCDC.Write(value)
	case addr == 0xFF41:
		p.STAT.Write(value)
	case addr == 0xFF42:
		p.scy = value
	case addr == 0xFF43:
		p.scx = value
	case addr == 0xFF45:
		p.lyc = value
	case addr == 0xFF47:
		p.bgp = palette.FromByte(value)
	case addr == 0xFF48:
		p.obp0 = palette.FromByte(value)
	case addr == 0xFF49:
		p.obp1 = palette.FromByte(value)
	case addr == 0xFF4A:
		p.wy = value
	case addr == 0xFF4B:
		p.wx = value
	}
}

// Step advances the PPU by dots (the value CPU.Step just returned)
// and reports whether this call caused entry into VBlank, so the
// frame driver can request the VBlank interrupt.
func (p *PPU) Step(dots int) (enteredVBlank bool) {
	if !p.LCDC.Enabled {
		return false
	}

	p.dotClock += dots
	for p.dotClock >= dotsLine {
		p.dotClock -= dotsLine
		p.advanceLine()
		if p.ly == ScreenHeight {
			enteredVBlank = true
		}
	}
	p.updateMode()
	return enteredVBlank
}

func (p *PPU) advanceLine() {
	if p.ly < ScreenHeight {
		p.renderLine(p.ly)
	}
	p.ly++
	if p.ly >= totalLines {
		p.ly = 0
		p.windowLine = 0
		p.endOfFrame()
	}
	p.STAT.Coincidence = p.ly == p.lyc
}

func (p *PPU) updateMode() {
	switch {
	case p.ly >= ScreenHeight:
		p.STAT.Mode = lcd.VBlank
	case p.dotClock < dotsOAM:
		p.STAT.Mode = lcd.AccessOAM
	case p.dotClock < dotsOAM+dotsVRAM:
		p.STAT.Mode = lcd.AccessVRAM
	default:
		p.STAT.Mode = lcd.HBlank
	}
}

// VideoBuffer returns the last fully composed frame as raw 2-bit shade
// indices, row-major, 160x144.
func (p *PPU) VideoBuffer() [ScreenHeight][ScreenWidth]uint8 {
	return p.framePixels
}

func (p *PPU) endOfFrame() {
	p.framePixels = p.buffer
}
