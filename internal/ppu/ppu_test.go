package ppu_test

import (
	"testing"

	"github.com/joserochadev/emuchan-go/internal/ppu"
)

func newEnabledPPU() *ppu.PPU {
	p := ppu.New()
	p.Write(0xFF40, 0x91) // LCD on, BG on, BG tile map 0x9800, tile data 0x8000
	return p
}

func TestModeCycleTiming(t *testing.T) {
	p := newEnabledPPU()
	if got := p.Read(0xFF41) & 0x03; got != 2 {
		t.Fatalf("initial mode = %d, want 2 (AccessOAM, per the power-up state)", got)
	}

	p.Step(80)
	if mode := p.Read(0xFF41) & 0x03; mode != 3 {
		t.Errorf("mode after 80 dots = %d, want 3 (AccessVRAM)", mode)
	}
	p.Step(172)
	if mode := p.Read(0xFF41) & 0x03; mode != 0 {
		t.Errorf("mode after OAM+VRAM dots = %d, want 0 (HBlank)", mode)
	}
	p.Step(204)
	if ly := p.Read(0xFF44); ly != 1 {
		t.Errorf("LY after one full line = %d, want 1", ly)
	}
}

func TestVBlankEntryReported(t *testing.T) {
	p := newEnabledPPU()
	entered := false
	for i := 0; i < 144 && !entered; i++ {
		entered = p.Step(456)
	}
	if !entered {
		t.Fatal("expected Step to report VBlank entry after 144 lines")
	}
	if ly := p.Read(0xFF44); ly != 144 {
		t.Errorf("LY at VBlank entry = %d, want 144", ly)
	}
}

func TestBackgroundTileRendersSolidColor(t *testing.T) {
	p := newEnabledPPU()

	// tile 0 at 0x8000: every row's bit planes 0xFF/0x00 -> color ID 1
	// everywhere, which BGP (0xFC default decodes slot 1 -> shade 3).
	for row := 0; row < 8; row++ {
		p.Write(0x8000+uint16(row*2), 0xFF)
		p.Write(0x8001+uint16(row*2), 0x00)
	}
	// tile map entry (0,0) at 0x9800 already defaults to 0 (tile 0).

	for line := 0; line < ppu.ScreenHeight+ppu.ScreenHeight; line++ {
		p.Step(456)
	}

	buf := p.VideoBuffer()
	if buf[0][0] == 0 {
		t.Errorf("expected non-zero shade for solid tile-0 pixel, got %d", buf[0][0])
	}
}
