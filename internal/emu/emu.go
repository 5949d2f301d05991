// Package emu wires the CPU, Bus, PPU, and Cartridge into a single runnable
// machine: the thing cmd/gbemu and internal/ui actually drive frame by
// frame.
package emu

import (
	"path/filepath"

	"github.com/FabianRolfMatthiasNoll/GameBoyEmulator/internal/bus"
	"github.com/FabianRolfMatthiasNoll/GameBoyEmulator/internal/cart"
	"github.com/FabianRolfMatthiasNoll/GameBoyEmulator/internal/cpu"
)

// Buttons is the joypad state for one frame; see bus.Joyp* for the bit
// layout SetButtons maps onto.
type Buttons struct {
	A, B, Start, Select   bool
	Up, Down, Left, Right bool
}

func (b Buttons) mask() byte {
	var m byte
	if b.Right {
		m |= bus.JoypRight
	}
	if b.Left {
		m |= bus.JoypLeft
	}
	if b.Up {
		m |= bus.JoypUp
	}
	if b.Down {
		m |= bus.JoypDown
	}
	if b.A {
		m |= bus.JoypA
	}
	if b.B {
		m |= bus.JoypB
	}
	if b.Select {
		m |= bus.JoypSelectBtn
	}
	if b.Start {
		m |= bus.JoypStart
	}
	return m
}

// Machine is the assembled DMG: CPU + Bus (which in turn owns the PPU and
// cartridge). Callers drive it one frame at a time with StepFrame.
type Machine struct {
	cfg Config

	cpu *cpu.CPU
	bus *bus.Bus

	romPath string

	// fb is copied out of the PPU canvas once per VBlank so
	// Framebuffer() always returns a complete, stable frame even if called
	// mid-frame from a host render loop.
	fb []byte
}

// New constructs an empty Machine; call LoadCartridge before StepFrame.
func New(cfg Config) *Machine {
	return &Machine{cfg: cfg, fb: make([]byte, 160*144*4)}
}

// SetBootROM loads a DMG boot image, mapped at 0x0000-0x00FF until the
// cartridge disables it via the FF50 register.
func (m *Machine) SetBootROM(data []byte) {
	if m.bus == nil {
		return
	}
	m.bus.SetBootROM(data)
}

// LoadCartridge wires a fresh Bus+CPU around rom, resetting to the DMG
// post-boot register state unless a boot image is supplied (in which case
// the CPU starts at 0x0000 and the boot ROM itself performs the reset).
func (m *Machine) LoadCartridge(rom []byte, boot []byte) error {
	if _, err := cart.ParseHeader(rom); err != nil {
		return err
	}
	m.bus = bus.New(rom)
	if len(boot) >= 0x100 {
		m.bus.SetBootROM(boot)
	}
	m.cpu = cpu.New(m.bus)
	if len(boot) >= 0x100 {
		m.cpu.PC = 0x0000
		m.cpu.SP = 0xFFFE
	} else {
		m.cpu.ResetPostBoot()
	}
	return nil
}

// LoadROMFromFile records the ROM path used for battery-save placement; it
// does not re-read or reload the cartridge.
func (m *Machine) LoadROMFromFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	m.romPath = abs
	return nil
}

// ROMPath returns the path set by LoadROMFromFile, if any.
func (m *Machine) ROMPath() string { return m.romPath }

// LoadBattery restores persisted cartridge RAM (a ".sav" file) into the
// current cartridge, if it supports battery backing.
func (m *Machine) LoadBattery(data []byte) bool {
	if m.bus == nil {
		return false
	}
	if bb, ok := m.bus.Cart().(cart.BatteryBacked); ok {
		bb.LoadRAM(data)
		return true
	}
	return false
}

// SaveBattery returns the current cartridge RAM contents for persistence.
func (m *Machine) SaveBattery() ([]byte, bool) {
	if m.bus == nil {
		return nil, false
	}
	if bb, ok := m.bus.Cart().(cart.BatteryBacked); ok {
		data := bb.SaveRAM()
		return data, data != nil
	}
	return nil, false
}

// StepFrame runs the CPU until the PPU completes one VBlank (or the CPU
// faults), leaving Framebuffer() holding the just-rendered frame.
func (m *Machine) StepFrame() {
	if m.cpu == nil || m.bus == nil {
		return
	}
	ppu := m.bus.PPU()
	for i := 0; i < 200000; i++ { // generous bound: a full frame is ~17556 M-cycle steps
		if m.cpu.Fault != nil {
			return
		}
		m.cpu.Step()
		if ppu.ConsumeVBlank() {
			copy(m.fb, ppu.Canvas())
			return
		}
	}
}

// Framebuffer returns the most recently completed frame: 160x144 pixels,
// 4 bytes each, RGBA in that byte order, copied verbatim from the PPU
// canvas (ppu.PPU.Canvas) with no conversion.
func (m *Machine) Framebuffer() []byte { return m.fb }

// SetButtons updates joypad state ahead of the next StepFrame.
func (m *Machine) SetButtons(b Buttons) {
	if m.bus == nil {
		return
	}
	m.bus.SetJoypadState(b.mask())
}

// SaveState/LoadState serialize the Bus (which recursively covers PPU and
// cartridge) for save-state slots; CPU registers, IME and halt state are
// not included.
func (m *Machine) SaveState() []byte {
	if m.bus == nil {
		return nil
	}
	return m.bus.SaveState()
}

func (m *Machine) LoadState(data []byte) {
	if m.bus == nil {
		return
	}
	m.bus.LoadState(data)
}

// CPUFault reports whether the CPU has stopped on an unrecognized opcode.
func (m *Machine) CPUFault() error {
	if m.cpu == nil {
		return nil
	}
	return m.cpu.Fault
}
