// Package palette decodes the BGP/OBP0/OBP1 registers' 2-bit-per-slot
// shade mapping. It stops at the raw 0-3 shade index — turning that
// into RGB is a host/GUI concern the core does not take on.
package palette

// Palette maps a 2-bit pixel color ID (0-3, straight out of tile bit
// plane decoding) to a 2-bit shade index, as BGP/OBP0/OBP1 define it.
type Palette [4]uint8

// FromByte unpacks a palette register's four 2-bit slots.
func FromByte(value uint8) Palette {
	return Palette{
		value & 0x03,
		(value >> 2) & 0x03,
		(value >> 4) & 0x03,
		(value >> 6) & 0x03,
	}
}

// ToByte repacks a Palette back into register form.
func (p Palette) ToByte() uint8 {
	return p[0] | p[1]<<2 | p[2]<<4 | p[3]<<6
}

// Apply maps a raw color ID through the palette to its shade index.
func (p Palette) Apply(colorID uint8) uint8 {
	return p[colorID&0x03]
}
