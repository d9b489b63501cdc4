// Package cartridge decodes a Game Boy ROM image's header and wraps it
// in the appropriate bank-switching controller.
package cartridge

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash"
)

// Cartridge owns the decoded header and the bank controller for a
// loaded ROM image. The Bus routes 0x0000-0x7FFF and 0xA000-0xBFFF
// reads/writes straight through to it.
type Cartridge struct {
	Header Header
	mbc    MemoryBankController
	hash   uint64
	raw    []byte
}

// New decodes rom's header and constructs the matching bank
// controller. It never fails: an unrecognized cartridge type is a
// programmer error worth surfacing loudly, so newMBC panics naming the
// type rather than silently mis-banking (per SPEC_FULL.md §4.2).
func New(rom []byte) *Cartridge {
	h := ParseHeader(rom)
	return &Cartridge{
		Header: h,
		mbc:    newMBC(h, rom),
		hash:   xxhash.Sum64(rom),
		raw:    rom,
	}
}

func newMBC(h Header, rom []byte) MemoryBankController {
	switch h.CartridgeType {
	case ROM, ROMRAM, ROMRAMBATT:
		return newROM0Only(rom, h.RAMSize)
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return newMBC1(rom, h.RAMSize)
	case MBC3, MBC3RAM, MBC3RAMBATT, MBC3TIMERBATT, MBC3TIMERRAMBATT:
		return newMBC3(rom, h.RAMSize)
	case MBC5, MBC5RAM, MBC5RAMBATT:
		return newMBC5(rom, h.RAMSize, false)
	case MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		return newMBC5(rom, h.RAMSize, true)
	default:
		panic(fmt.Sprintf("cartridge: unsupported cartridge type %s", h.CartridgeType))
	}
}

// Read dispatches a guest read into ROM (0x0000-0x7FFF) or external RAM
// (0xA000-0xBFFF) to the active bank controller.
func (c *Cartridge) Read(addr uint16) uint8 {
	return c.mbc.Read(addr)
}

// Write dispatches a guest write to the active bank controller; for
// ROM addresses this hits banking registers rather than storage.
func (c *Cartridge) Write(addr uint16, value uint8) {
	c.mbc.Write(addr, value)
}

// Hash is a 64-bit content fingerprint of the loaded ROM image, stable
// across runs, suitable as a host-side cache key.
func (c *Cartridge) Hash() uint64 {
	return c.hash
}

// Title returns the header's game title, trimmed of trailing NULs.
func (c *Cartridge) Title() string {
	return c.Header.Title
}

// Filename returns a human-readable identifier for the cartridge: the
// header title if non-empty, otherwise an MD5 hash of the raw image,
// matching the teacher's title-or-hash fallback.
func (c *Cartridge) Filename() string {
	if c.Header.Title != "" {
		return c.Header.Title
	}
	sum := md5.Sum(c.raw)
	return hex.EncodeToString(sum[:])
}
