// Command emuchan loads a cartridge and runs it headless for a fixed
// number of frames, printing the game title and measured speed. It
// exists to exercise the core from the command line; it renders no
// pixels and has no GUI, which stays an external concern.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joserochadev/emuchan-go/internal/emuchan"
	"github.com/joserochadev/emuchan-go/internal/romio"
)

func main() {
	romFile := flag.String("rom", "", "the ROM file to load (.gb, .gbc, .zip, .7z, .gz)")
	bootFile := flag.String("boot", "", "an optional 256-byte DMG boot ROM image")
	frames := flag.Int("frames", 60, "number of frames to run before exiting")
	flag.Parse()

	if *romFile == "" {
		fmt.Fprintln(os.Stderr, "emuchan: -rom is required")
		os.Exit(2)
	}

	rom, err := romio.Load(*romFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "emuchan:", err)
		os.Exit(1)
	}

	var opts []emuchan.Option
	if *bootFile != "" {
		boot, err := romio.Load(*bootFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "emuchan:", err)
			os.Exit(1)
		}
		opts = append(opts, emuchan.WithBootROM(boot))
	}

	emu, err := emuchan.New(rom, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "emuchan:", err)
		os.Exit(1)
	}

	emu.SetState(emuchan.StateRunning)
	for i := 0; i < *frames; i++ {
		emu.RunOneFrame()
		if err := emu.Err(); err != nil {
			fmt.Fprintln(os.Stderr, "emuchan:", err)
			os.Exit(1)
		}
	}

	fmt.Printf("%s: %d frames at %.1f%% speed (native %.2f FPS)\n",
		emu.GameTitle(), *frames, emu.SpeedPercent(), emu.FPS())
}
