// Package bus provides the shared address space that mediates
// cartridge ROM/RAM, VRAM/OAM (via the PPU), working RAM, and the
// memory-mapped I/O registers.
package bus

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/joserochadev/emuchan-go/internal/boot"
)

// VideoBus is the interface the PPU satisfies so the Bus can route
// VRAM, OAM, and LCD-register accesses to it without importing the ppu
// package directly. The PPU holds no reference to the Bus: it reports
// VBlank entry to the frame driver, which requests the interrupt here.
type VideoBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Cartridge is the interface the Bus uses to route ROM and external
// RAM accesses, satisfied by *cartridge.Cartridge.
type Cartridge interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Interrupt bit positions within IE (0xFFFF) and IF (0xFF0F).
const (
	IntVBlank  uint8 = 1 << 0
	IntLCDStat uint8 = 1 << 1
	IntTimer   uint8 = 1 << 2
	IntSerial  uint8 = 1 << 3
	IntJoypad  uint8 = 1 << 4
)

// Bus is the single owner of the 64KB DMG address space. It holds no
// goroutines and performs no I/O beyond logging; every access is a
// direct, synchronous array index or a dispatch to Cartridge/Video.
type Bus struct {
	Cart  Cartridge
	Video VideoBus

	bootROM      *boot.ROM
	bootDisabled bool

	wram [0x2000]byte // 0xC000-0xDFFF, plus echo at 0xE000-0xFDFF
	hram [0x7F]byte   // 0xFF80-0xFFFE
	io   [0x80]byte   // flat fallback store for 0xFF00-0xFF7F

	ie uint8 // 0xFFFF

	Log *logrus.Logger
}

// New constructs a Bus wired to the given cartridge, video component,
// and optional boot ROM overlay (pass nil to disable the overlay).
func New(cart Cartridge, video VideoBus, bootROM *boot.ROM, log *logrus.Logger) *Bus {
	if log == nil {
		log = logrus.New()
		log.Formatter = &logrus.TextFormatter{
			DisableColors:    true,
			DisableTimestamp: true,
		}
	}
	b := &Bus{
		Cart:    cart,
		Video:   video,
		bootROM: bootROM,
		Log:     log,
	}
	if bootROM == nil || !bootROM.Loaded() {
		b.bootDisabled = true
	}
	return b
}

// Read returns the byte visible at addr, applying the boot-ROM
// overlay, cartridge/VRAM/OAM dispatch, WRAM echo mirroring, and the
// flat I/O fallback, per the address map.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x100 && !b.bootDisabled:
		return b.bootROM.Read(addr)
	case addr < 0x8000:
		return b.Cart.Read(addr)
	case addr < 0xA000:
		return b.Video.Read(addr)
	case addr < 0xC000:
		return b.Cart.Read(addr)
	case addr < 0xE000:
		return b.wram[addr-0xC000]
	case addr < 0xFE00:
		return b.wram[addr-0xE000]
	case addr < 0xFEA0:
		return b.Video.Read(addr)
	case addr < 0xFF00:
		b.Log.Errorf("unhandled read from address %04x", addr)
		return 0xFF
	case addr == 0xFFFF:
		return b.ie
	case addr >= 0xFF80 && addr <= 0xFFFE:
		return b.hram[addr-0xFF80]
	case isVideoRegister(addr):
		return b.Video.Read(addr)
	default:
		return b.io[addr-0xFF00]
	}
}

// Write stores value at addr, observing the one-shot boot-disable
// latch at 0xFF50 and the same region dispatch as Read.
func (b *Bus) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x8000:
		b.Cart.Write(addr, value)
	case addr < 0xA000:
		b.Video.Write(addr, value)
	case addr < 0xC000:
		b.Cart.Write(addr, value)
	case addr < 0xE000:
		b.wram[addr-0xC000] = value
	case addr < 0xFE00:
		b.wram[addr-0xE000] = value
	case addr < 0xFEA0:
		b.Video.Write(addr, value)
	case addr < 0xFF00:
		b.Log.Errorf("unhandled write to address %04x", addr)
	case addr == 0xFFFF:
		b.ie = value
	case addr >= 0xFF80 && addr <= 0xFFFE:
		b.hram[addr-0xFF80] = value
	case addr == 0xFF50:
		b.bootDisabled = true
	case addr == 0xFF46:
		b.oamDMA(value)
	case isVideoRegister(addr):
		b.Video.Write(addr, value)
	default:
		b.io[addr-0xFF00] = value
	}
}

// oamDMA implements the 0xFF46 OAM DMA transfer: 160 bytes are copied
// from source<<8 into OAM. Real hardware takes 160 M-cycles and locks
// out most of the address space during the copy; this core performs
// the copy instantaneously within the triggering write, a simplification
// acceptable for the minimal-interrupt, no-mid-instruction-PPU-observation
// model this core targets.
func (b *Bus) oamDMA(source uint8) {
	base := uint16(source) << 8
	for i := uint16(0); i < 0xA0; i++ {
		b.Video.Write(0xFE00+i, b.Read(base+i))
	}
}

// isVideoRegister reports whether addr is one of the LCD control/
// status registers the PPU owns directly (LCDC, STAT, SCY, SCX, LY,
// LYC, DMA, BGP, OBP0, OBP1, WY, WX). Writes to DMA (0xFF46) never reach
// this check: Write hands them to oamDMA first.
func isVideoRegister(addr uint16) bool {
	return addr >= 0xFF40 && addr <= 0xFF4B
}

// IE returns the interrupt-enable register.
func (b *Bus) IE() uint8 {
	return b.ie
}

// IF returns the interrupt-flag register (0xFF0F), which lives in the
// flat I/O store since nothing else claims it.
func (b *Bus) IF() uint8 {
	return b.io[0xFF0F-0xFF00]
}

// SetIF overwrites the interrupt-flag register.
func (b *Bus) SetIF(v uint8) {
	b.io[0xFF0F-0xFF00] = v
}

// RequestInterrupt ORs the given interrupt bit into IF. The frame
// driver calls this when the PPU reports entry into VBlank, since PPU
// ticking happens only after a CPU instruction completes and is never
// observed mid-instruction.
func (b *Bus) RequestInterrupt(bit uint8) {
	b.io[0xFF0F-0xFF00] |= bit
}

// PendingInterrupts returns the set of requested-and-enabled
// interrupt bits, lowest bit first being highest priority.
func (b *Bus) PendingInterrupts() uint8 {
	return b.ie & b.IF() & 0x1F
}

// String is a debugging aid, not part of any guest-visible contract.
func (b *Bus) String() string {
	return fmt.Sprintf("Bus{bootDisabled=%v ie=%02x if=%02x}", b.bootDisabled, b.ie, b.IF())
}
