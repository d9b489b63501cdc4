package emuchan

import "github.com/sirupsen/logrus"

// Option configures an Emulator at construction time.
type Option func(e *Emulator)

// WithLogger overrides the default logrus logger used for bus and CPU
// diagnostics.
func WithLogger(log *logrus.Logger) Option {
	return func(e *Emulator) {
		e.log = log
	}
}

// WithBootROM supplies a 256-byte DMG boot ROM dump to overlay
// 0x0000-0x00FF until the guest disables it. Without this option the
// emulator starts directly at the cartridge entry point with the
// registers already in their post-boot-ROM state, since this core
// does not ship Nintendo's copyrighted boot ROM.
func WithBootROM(img []byte) Option {
	return func(e *Emulator) {
		e.bootImage = img
	}
}

// WithModel is reserved for forward compatibility with a CGB mode;
// DMG is the only model this core implements.
func WithModel(name string) Option {
	return func(e *Emulator) {
		e.model = name
	}
}
