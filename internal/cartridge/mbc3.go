package cartridge

// mbc3 implements the MBC3 banking scheme: a 7-bit ROM bank register
// and a RAM-bank/RTC-register select in 0xA000-0xBFFF. The real-time
// clock is not modeled; RTC register selects (0x08-0x0C) read back
// zero and latch writes are accepted and otherwise ignored, per
// DESIGN.md.
type mbc3 struct {
	rom [][]byte
	ram [][]byte

	ramEnabled bool
	romBankNo  uint8
	ramOrRTC   uint8
	latch      uint8
}

func newMBC3(rom []byte, ramSize uint) *mbc3 {
	m := &mbc3{
		rom:       bankify(rom, romBankSize),
		romBankNo: 1,
	}
	n := int((ramSize + ramBankSize - 1) / ramBankSize)
	if n == 0 {
		n = 1
	}
	m.ram = make([][]byte, n)
	for i := range m.ram {
		m.ram[i] = make([]byte, ramBankSize)
	}
	return m
}

func (m *mbc3) Read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		return m.rom[0][addr]
	case addr < 0x8000:
		bank := int(m.romBankNo) % len(m.rom)
		return m.rom[bank][addr-0x4000]
	case addr >= 0xA000 && addr < 0xC000:
		if !m.ramEnabled {
			return 0xFF
		}
		if m.ramOrRTC >= 0x08 && m.ramOrRTC <= 0x0C {
			return 0 // RTC registers are unimplemented; report zero.
		}
		bank := int(m.ramOrRTC) % len(m.ram)
		return m.ram[bank][addr-0xA000]
	default:
		return 0xFF
	}
}

func (m *mbc3) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case addr < 0x4000:
		v := value & 0x7F
		if v == 0 {
			v = 1
		}
		m.romBankNo = v
	case addr < 0x6000:
		m.ramOrRTC = value
	case addr < 0x8000:
		// RTC latch: writing 0x00 then 0x01 would latch the clock. No
		// clock is modeled, so the write is accepted and discarded.
		m.latch = value
	case addr >= 0xA000 && addr < 0xC000:
		if !m.ramEnabled || m.ramOrRTC >= 0x08 {
			return
		}
		bank := int(m.ramOrRTC) % len(m.ram)
		m.ram[bank][addr-0xA000] = value
	}
}
