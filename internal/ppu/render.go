package ppu

// tilePixel decodes one pixel out of an 8x8 tile's bit-plane encoded
// data: two bytes per row, the low and high bit of the 2-bit color ID
// stored in separate planes, MSB-first within each byte.
func tilePixel(lo, hi uint8, x int) uint8 {
	shift := 7 - x
	return (lo>>shift)&1 | (hi>>shift)&1<<1
}

// tileBytes returns the two bit-plane bytes for row y of the tile
// addressed by tileIndex under LCDC's current addressing mode.
func (p *PPU) tileBytes(tileIndex uint8, y int) (lo, hi uint8) {
	var base uint16
	if p.LCDC.UsingSignedTileData() {
		base = uint16(0x9000 + int32(int8(tileIndex))*16)
	} else {
		base = p.LCDC.TileDataAddress + uint16(tileIndex)*16
	}
	addr := base + uint16(y*2) - 0x8000
	return p.vram[addr], p.vram[addr+1]
}

// tileBytesUnsigned is used by sprites, whose unsigned tile index is
// always relative to 0x8000, bypassing LCDC's signed-addressing mode
// entirely. Background and window lookups go through tileBytes.
func (p *PPU) tileBytesUnsigned(tileIndex uint8, y int) (lo, hi uint8) {
	addr := 0x8000 + uint16(tileIndex)*16 + uint16(y*2) - 0x8000
	return p.vram[addr], p.vram[addr+1]
}

// renderLine composes one scanline: background, then window, then
// sprites, into p.buffer and p.bgColorID (kept for sprite
// BG-priority comparisons).
func (p *PPU) renderLine(line uint8) {
	if p.LCDC.BackgroundEnabled {
		p.renderBackground(line)
	} else {
		for x := 0; x < ScreenWidth; x++ {
			p.buffer[line][x] = 0
			p.bgColorID[line][x] = 0
		}
	}
	if p.LCDC.WindowEnabled && p.wx <= 166 && line >= p.wy {
		p.renderWindow(line)
	}
	if p.LCDC.SpriteEnabled {
		p.renderSprites(line)
	}
}

func (p *PPU) renderBackground(line uint8) {
	y := uint8(int(line) + int(p.scy))
	tileRow := uint16(y/8) * 32
	for screenX := 0; screenX < ScreenWidth; screenX++ {
		x := uint8(screenX + int(p.scx))
		tileCol := uint16(x / 8)
		tileMapAddr := p.LCDC.BackgroundTileMapAddress + tileRow + tileCol - 0x8000
		tileIndex := p.vram[tileMapAddr]
		lo, hi := p.tileBytes(tileIndex, int(y%8))
		colorID := tilePixel(lo, hi, int(x%8))
		p.bgColorID[line][screenX] = colorID
		p.buffer[line][screenX] = p.bgp.Apply(colorID)
	}
}

func (p *PPU) renderWindow(line uint8) {
	if int(p.wx)-7 >= ScreenWidth {
		return
	}
	y := uint8(p.windowLine)
	tileRow := uint16(y/8) * 32
	startX := int(p.wx) - 7
	for screenX := startX; screenX < ScreenWidth; screenX++ {
		if screenX < 0 {
			continue
		}
		x := uint8(screenX - startX)
		tileCol := uint16(x / 8)
		tileMapAddr := p.LCDC.WindowTileMapAddress + tileRow + tileCol - 0x8000
		tileIndex := p.vram[tileMapAddr]
		lo, hi := p.tileBytes(tileIndex, int(y%8))
		colorID := tilePixel(lo, hi, int(x%8))
		p.bgColorID[line][screenX] = colorID
		p.buffer[line][screenX] = p.bgp.Apply(colorID)
	}
	p.windowLine++
}

// spriteAttributes decodes one of OAM's 40 4-byte entries.
type spriteAttributes struct {
	y, x, tile, flags uint8
}

func (p *PPU) spriteAt(idx int) spriteAttributes {
	off := idx * 4
	return spriteAttributes{
		y:     p.oam[off],
		x:     p.oam[off+1],
		tile:  p.oam[off+2],
		flags: p.oam[off+3],
	}
}

func (s spriteAttributes) priority() bool { return s.flags&0x80 != 0 }
func (s spriteAttributes) flipY() bool    { return s.flags&0x40 != 0 }
func (s spriteAttributes) flipX() bool    { return s.flags&0x20 != 0 }
func (s spriteAttributes) useObp1() bool  { return s.flags&0x10 != 0 }
func (s spriteAttributes) screenY() int   { return int(s.y) - 16 }
func (s spriteAttributes) screenX() int   { return int(s.x) - 8 }

// renderSprites scans all 40 OAM entries for ones intersecting line,
// keeps the first 10 in OAM order (the hardware's per-line limit), and
// draws them in reverse so that where sprites overlap the lowest OAM
// index ends up on top. The X coordinate plays no part in priority.
func (p *PPU) renderSprites(line uint8) {
	height := int(p.LCDC.SpriteSize)
	var selected [10]int
	drawn := 0
	for i := 0; i < 40 && drawn < 10; i++ {
		sy := p.spriteAt(i).screenY()
		if int(line) < sy || int(line) >= sy+height {
			continue
		}
		selected[drawn] = i
		drawn++
	}

	for n := drawn - 1; n >= 0; n-- {
		s := p.spriteAt(selected[n])
		sy := s.screenY()
		row := int(line) - sy
		if s.flipY() {
			row = height - 1 - row
		}
		tile := s.tile
		if height == 16 {
			tile &^= 1
			if row >= 8 {
				tile |= 1
				row -= 8
			}
		}
		lo, hi := p.tileBytesUnsigned(tile, row)

		pal := p.obp0
		if s.useObp1() {
			pal = p.obp1
		}

		sx := s.screenX()
		for col := 0; col < 8; col++ {
			screenX := sx + col
			if screenX < 0 || screenX >= ScreenWidth {
				continue
			}
			tx := col
			if s.flipX() {
				tx = 7 - col
			}
			colorID := tilePixel(lo, hi, tx)
			if colorID == 0 {
				continue // color 0 is always transparent for sprites
			}
			if s.priority() && p.bgColorID[line][screenX] != 0 {
				continue // behind non-zero background pixels
			}
			p.buffer[line][screenX] = pal.Apply(colorID)
		}
	}
}
