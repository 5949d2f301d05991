// Command gbemu runs a DMG ROM, either in an ebiten window or (with
// -headless) stepped to completion for CI/test-ROM use.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/FabianRolfMatthiasNoll/GameBoyEmulator/internal/cart"
	"github.com/FabianRolfMatthiasNoll/GameBoyEmulator/internal/emu"
	"github.com/FabianRolfMatthiasNoll/GameBoyEmulator/internal/ui"
)

func mustRead(path string) []byte {
	if path == "" {
		return nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}
	return b
}

func main() {
	f := parseFlags()

	var rom []byte
	if f.ROMPath != "" {
		rom = mustRead(f.ROMPath)
	}
	boot := mustRead(f.BootROM)

	if len(rom) >= 0x150 {
		if h, err := cart.ParseHeader(rom); err == nil {
			log.Printf("ROM: %q type=%s banks=%d ram=%dB", h.Title, h.CartTypeStr, h.ROMBanks, h.RAMSizeBytes)
		}
	}

	m := emu.New(emu.Config{Trace: f.Trace, LimitFPS: false}) // headless wants max speed
	if len(boot) >= 0x100 {
		m.SetBootROM(boot)
	}
	if len(rom) > 0 {
		if err := m.LoadCartridge(rom, boot); err != nil {
			log.Fatalf("load cart: %v", err)
		}
		if f.ROMPath != "" {
			abs, err := filepath.Abs(f.ROMPath)
			if err != nil {
				abs = f.ROMPath
			}
			_ = m.LoadROMFromFile(abs)
		}
	}

	var savPath string
	if f.SaveRAM {
		savPath = savePathFor(f.ROMPath, m)
		loadBatteryIfPresent(m, savPath)
	}

	if f.Headless {
		if err := runHeadless(m, f.Frames, f.PNGOut, f.Expect); err != nil {
			log.Fatal(err)
		}
		if f.SaveRAM {
			saveBatteryIfPresent(m, savPath)
		}
		return
	}

	app := ui.NewApp(ui.Config{Title: f.Title, Scale: f.Scale}, m)
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
	if s, ok := any(app).(interface{ SaveSettings() }); ok {
		s.SaveSettings()
	}
	if f.SaveRAM {
		if savPath == "" {
			savPath = savePathFor("", m)
		}
		saveBatteryIfPresent(m, savPath)
	}
}
