package cartridge

import "fmt"

// Type is the cartridge type byte at 0x0147.
type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
)

func (t Type) String() string {
	switch t {
	case ROM:
		return "ROM ONLY"
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return "MBC1"
	case MBC2, MBC2BATT:
		return "MBC2"
	case ROMRAM, ROMRAMBATT:
		return "ROM+RAM"
	case MBC3TIMERBATT, MBC3TIMERRAMBATT, MBC3, MBC3RAM, MBC3RAMBATT:
		return "MBC3"
	case MBC5, MBC5RAM, MBC5RAMBATT, MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		return "MBC5"
	default:
		return fmt.Sprintf("unknown (0x%02X)", uint8(t))
	}
}

// romSizeNames decodes the ROM-size byte at 0x0148 (32KiB << n) into a
// display string, per the lookup table the header decoder uses.
var romSizeNames = map[uint8]string{
	0x00: "32KB (no banking)",
	0x01: "64KB (4 banks)",
	0x02: "128KB (8 banks)",
	0x03: "256KB (16 banks)",
	0x04: "512KB (32 banks)",
	0x05: "1MB (64 banks)",
	0x06: "2MB (128 banks)",
	0x07: "4MB (256 banks)",
	0x08: "8MB (512 banks)",
}

// ramSizeBytes decodes the RAM-size byte at 0x0149 into a byte count.
var ramSizeBytes = map[uint8]uint{
	0x00: 0,
	0x01: 2 * 1024,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

var ramSizeNames = map[uint8]string{
	0x00: "None",
	0x01: "2KB",
	0x02: "8KB",
	0x03: "32KB (4 banks of 8KB)",
	0x04: "128KB (16 banks of 8KB)",
	0x05: "64KB (8 banks of 8KB)",
}

var destinationNames = map[uint8]string{
	0x00: "Japan",
	0x01: "Overseas",
}

// Header is the set of fields decoded once, at load, from the cartridge
// header (0x0100-0x014F). Its display helpers (ROMSizeName, RAMSizeName,
// DestinationName) exist only to produce the strings the out-of-scope
// GUI shell would show; the core never needs them for address decoding.
type Header struct {
	Title           string
	NewLicenseeCode string
	OldLicenseeCode uint8
	CartridgeType   Type
	ROMSizeCode     uint8
	RAMSizeCode     uint8
	RAMSize         uint
	Destination     uint8
	HeaderChecksum  uint8
	GlobalChecksum  uint16

	// ComputedChecksum is the running 8-bit value computed over
	// 0x134..=0x14C, reported (not enforced) against HeaderChecksum.
	ComputedChecksum uint8
}

// ParseHeader decodes the header fields from a full cartridge image.
// If rom is shorter than the header region, a header describing an
// empty title and ROM-only type is returned (load failure is the
// caller's concern; the header decoder itself never fails).
func ParseHeader(rom []byte) Header {
	if len(rom) < 0x150 {
		return Header{CartridgeType: ROM}
	}

	h := Header{}
	h.Title = trimTitle(rom[0x134:0x144])
	h.NewLicenseeCode = string(rom[0x144:0x146])
	h.OldLicenseeCode = rom[0x14B]
	h.CartridgeType = Type(rom[0x147])
	h.ROMSizeCode = rom[0x148]
	h.RAMSizeCode = rom[0x149]
	h.RAMSize = ramSizeBytes[h.RAMSizeCode]
	h.Destination = rom[0x14A]
	h.HeaderChecksum = rom[0x14D]
	h.GlobalChecksum = uint16(rom[0x14E])<<8 | uint16(rom[0x14F])

	var c uint8
	for _, b := range rom[0x134:0x14D] {
		c = c - b - 1
	}
	h.ComputedChecksum = c

	return h
}

func trimTitle(raw []byte) string {
	end := len(raw)
	for i, b := range raw {
		if b == 0x00 {
			end = i
			break
		}
	}
	return string(raw[:end])
}

// ChecksumOK reports whether the header checksum invariant from §3
// holds. The caller decides whether a mismatch is worth logging; it is
// never treated as fatal.
func (h Header) ChecksumOK() bool {
	return h.ComputedChecksum == h.HeaderChecksum
}

func (h Header) ROMSizeName() string {
	if name, ok := romSizeNames[h.ROMSizeCode]; ok {
		return name
	}
	return fmt.Sprintf("unknown (0x%02X)", h.ROMSizeCode)
}

func (h Header) RAMSizeName() string {
	if name, ok := ramSizeNames[h.RAMSizeCode]; ok {
		return name
	}
	return fmt.Sprintf("unknown (0x%02X)", h.RAMSizeCode)
}

func (h Header) DestinationName() string {
	if name, ok := destinationNames[h.Destination]; ok {
		return name
	}
	return "unknown"
}

func (h Header) String() string {
	return fmt.Sprintf("%s [%s] ROM=%s RAM=%s", h.Title, h.CartridgeType, h.ROMSizeName(), h.RAMSizeName())
}
