package main

import "flag"

// cliFlags holds the gbemu command line: windowed-mode options plus a
// headless mode for running a ROM to completion without a display, used
// by the test-ROM harness and CI.
type cliFlags struct {
	ROMPath string
	BootROM string
	Scale   int
	Title   string
	Trace   bool
	SaveRAM bool // persist battery RAM next to the ROM as a .sav file

	Headless bool
	Frames   int
	PNGOut   string
	Expect   string // expected framebuffer CRC32, hex
}

func parseFlags() cliFlags {
	var f cliFlags
	flag.StringVar(&f.ROMPath, "rom", "", "path to ROM (.gb)")
	flag.StringVar(&f.BootROM, "bootrom", "", "optional DMG boot ROM")
	flag.IntVar(&f.Scale, "scale", 3, "window scale")
	flag.StringVar(&f.Title, "title", "gbemu", "window title")
	flag.BoolVar(&f.Trace, "trace", false, "CPU trace flag (stored in emu.Config; no log is written)")
	flag.BoolVar(&f.SaveRAM, "save", true, "persist battery RAM to ROM.sav on exit and load on start")

	flag.BoolVar(&f.Headless, "headless", false, "run without a window")
	flag.IntVar(&f.Frames, "frames", 300, "frames to run in headless mode")
	flag.StringVar(&f.PNGOut, "outpng", "", "write the last framebuffer to a PNG at path")
	flag.StringVar(&f.Expect, "expect", "", "assert the framebuffer's CRC32 (hex)")
	flag.Parse()
	return f
}
