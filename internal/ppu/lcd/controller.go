// Package lcd holds the small register types the PPU's LCDC/STAT
// registers decode into: bitfields are unpacked once on write rather
// than re-tested bit by bit on every scanline.
package lcd

// Controller represents LCDC (0xFF40), decoded into its component
// fields. Its value is stored as:
//
//	Bit 7 - LCD Enable             (0=Off, 1=On)
//	Bit 6 - Window Tile Map Select (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 5 - Window Display Enable  (0=Off, 1=On)
//	Bit 4 - BG & Window Tile Data Select (0=8800-97FF signed, 1=8000-8FFF)
//	Bit 3 - BG Tile Map Select     (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 2 - OBJ Size               (0=8x8, 1=8x16)
//	Bit 1 - OBJ Display Enable     (0=Off, 1=On)
//	Bit 0 - BG/Window Display Priority (0=Off, 1=On)
type Controller struct {
	Enabled                  bool
	WindowTileMapAddress     uint16
	WindowEnabled            bool
	TileDataAddress          uint16
	BackgroundTileMapAddress uint16
	SpriteSize               uint8
	SpriteEnabled            bool
	BackgroundEnabled        bool
}

// NewController returns the post-boot-ROM reset state of LCDC.
func NewController() *Controller {
	c := &Controller{}
	c.Write(0x91)
	return c
}

func (c *Controller) Write(value uint8) {
	c.Enabled = value&0x80 != 0
	if value&0x40 != 0 {
		c.WindowTileMapAddress = 0x9C00
	} else {
		c.WindowTileMapAddress = 0x9800
	}
	c.WindowEnabled = value&0x20 != 0
	if value&0x10 != 0 {
		c.TileDataAddress = 0x8000
	} else {
		c.TileDataAddress = 0x8800
	}
	if value&0x08 != 0 {
		c.BackgroundTileMapAddress = 0x9C00
	} else {
		c.BackgroundTileMapAddress = 0x9800
	}
	c.SpriteSize = 8 + 8*(value>>2&1)
	c.SpriteEnabled = value&0x02 != 0
	c.BackgroundEnabled = value&0x01 != 0
}

func (c *Controller) Read() uint8 {
	var v uint8
	if c.Enabled {
		v |= 0x80
	}
	if c.WindowTileMapAddress == 0x9C00 {
		v |= 0x40
	}
	if c.WindowEnabled {
		v |= 0x20
	}
	if c.TileDataAddress == 0x8000 {
		v |= 0x10
	}
	if c.BackgroundTileMapAddress == 0x9C00 {
		v |= 0x08
	}
	if c.SpriteSize == 16 {
		v |= 0x04
	}
	if c.SpriteEnabled {
		v |= 0x02
	}
	if c.BackgroundEnabled {
		v |= 0x01
	}
	return v
}

// UsingSignedTileData reports whether tile indices into
// TileDataAddress are signed (the 0x8800-based addressing mode).
func (c *Controller) UsingSignedTileData() bool {
	return c.TileDataAddress == 0x8800
}
