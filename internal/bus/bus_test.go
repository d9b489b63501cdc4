package bus_test

import (
	"testing"

	"github.com/joserochadev/emuchan-go/internal/boot"
	"github.com/joserochadev/emuchan-go/internal/bus"
)

type fakeCart struct{ mem [0x10000]byte }

func (f *fakeCart) Read(addr uint16) uint8     { return f.mem[addr] }
func (f *fakeCart) Write(addr uint16, v uint8) { f.mem[addr] = v }

type fakeVideo struct {
	mem        [0x10000]byte
	lastDMAAt  uint16
	writeCount int
}

func (f *fakeVideo) Read(addr uint16) uint8 { return f.mem[addr] }
func (f *fakeVideo) Write(addr uint16, v uint8) {
	f.mem[addr] = v
	f.lastDMAAt = addr
	f.writeCount++
}

func TestWRAMEchoMirroring(t *testing.T) {
	cart, video := &fakeCart{}, &fakeVideo{}
	b := bus.New(cart, video, nil, nil)

	b.Write(0xC010, 0x42)
	if got := b.Read(0xE010); got != 0x42 {
		t.Errorf("echo read at 0xE010 = %#02x, want 0x42", got)
	}
	b.Write(0xE020, 0x99)
	if got := b.Read(0xC020); got != 0x99 {
		t.Errorf("WRAM read at 0xC020 after echo write = %#02x, want 0x99", got)
	}
}

func TestHRAMAndInterruptEnable(t *testing.T) {
	cart, video := &fakeCart{}, &fakeVideo{}
	b := bus.New(cart, video, nil, nil)

	b.Write(0xFF90, 0x77)
	if got := b.Read(0xFF90); got != 0x77 {
		t.Errorf("HRAM read = %#02x, want 0x77", got)
	}

	b.Write(0xFFFF, 0x1F)
	if b.IE() != 0x1F {
		t.Errorf("IE = %#02x, want 0x1F", b.IE())
	}
}

func TestRequestInterruptAndPendingMask(t *testing.T) {
	cart, video := &fakeCart{}, &fakeVideo{}
	b := bus.New(cart, video, nil, nil)

	b.Write(0xFFFF, bus.IntVBlank|bus.IntTimer)
	b.RequestInterrupt(bus.IntVBlank)
	b.RequestInterrupt(bus.IntSerial)

	if got := b.PendingInterrupts(); got != bus.IntVBlank {
		t.Errorf("PendingInterrupts = %#02x, want only IntVBlank (%#02x) since Serial isn't enabled", got, bus.IntVBlank)
	}
}

func TestOAMDMACopiesFromSourcePage(t *testing.T) {
	cart, video := &fakeCart{}, &fakeVideo{}
	b := bus.New(cart, video, nil, nil)

	for i := 0; i < 0xA0; i++ {
		b.Write(0xC000+uint16(i), uint8(i)) // WRAM, owned by the Bus itself
	}

	b.Write(0xFF46, 0xC0) // DMA source page 0xC000

	for i := 0; i < 0xA0; i++ {
		if got := video.mem[0xFE00+uint16(i)]; got != uint8(i) {
			t.Fatalf("OAM byte %d = %#02x, want %#02x", i, got, uint8(i))
		}
	}
}

func TestReadsFallThroughToCartridgeWithoutBootROM(t *testing.T) {
	cart, video := &fakeCart{}, &fakeVideo{}
	cart.mem[0] = 0xAA // what the cartridge itself holds at 0x0000

	b := bus.New(cart, video, nil, nil)
	// No boot ROM supplied: bootDisabled starts true, so 0x0000 should
	// already read straight through to the cartridge.
	if got := b.Read(0x0000); got != 0xAA {
		t.Errorf("Read(0x0000) without a boot ROM = %#02x, want cartridge byte 0xAA", got)
	}
}

func TestBootOverlayDisabledByAnyWriteValueIncludingZero(t *testing.T) {
	cart, video := &fakeCart{}, &fakeVideo{}
	cart.mem[0] = 0xAA

	var img [boot.Size]byte
	img[0] = 0x55
	bootROM := boot.New(img[:])
	b := bus.New(cart, video, bootROM, nil)

	if got := b.Read(0x0000); got != 0x55 {
		t.Fatalf("Read(0x0000) before disabling = %#02x, want boot overlay byte 0x55", got)
	}

	b.Write(0xFF50, 0x00) // the value itself must not matter, only the write
	if got := b.Read(0x0000); got != 0xAA {
		t.Errorf("Read(0x0000) after writing 0x00 to 0xFF50 = %#02x, want cartridge byte 0xAA (overlay must disable on any value)", got)
	}
}
