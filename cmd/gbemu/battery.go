package main

import (
	"log"
	"os"
	"strings"

	"github.com/FabianRolfMatthiasNoll/GameBoyEmulator/internal/emu"
)

// savePathFor derives a battery-RAM path (<rom>.sav) from whichever ROM
// path is available: the one passed on the command line, or (after a UI
// session, where the flag might have been empty) the one the machine
// recorded when the cartridge was loaded.
func savePathFor(romPath string, m *emu.Machine) string {
	if romPath != "" {
		return strings.TrimSuffix(romPath, ".gb") + ".sav"
	}
	if p := m.ROMPath(); strings.HasSuffix(strings.ToLower(p), ".gb") {
		return strings.TrimSuffix(p, ".gb") + ".sav"
	}
	return ""
}

func loadBatteryIfPresent(m *emu.Machine, savPath string) {
	if savPath == "" {
		return
	}
	data, err := os.ReadFile(savPath)
	if err != nil {
		return
	}
	if m.LoadBattery(data) {
		log.Printf("loaded save RAM: %s (%d bytes)", savPath, len(data))
	}
}

func saveBatteryIfPresent(m *emu.Machine, savPath string) {
	if savPath == "" {
		return
	}
	data, ok := m.SaveBattery()
	if !ok {
		return
	}
	if err := os.WriteFile(savPath, data, 0644); err == nil {
		log.Printf("wrote %s", savPath)
	}
}
