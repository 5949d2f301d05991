package cart

import "testing"

func TestMBC1_SaveLoadStateRoundTrip(t *testing.T) {
	rom := make([]byte, 128*1024)
	for bank := 0; bank < 8; bank++ {
		rom[bank*0x4000] = byte(bank)
	}
	m := NewMBC1(rom, 32*1024)
	m.Write(0x0000, 0x0A) // enable RAM
	m.Write(0x2000, 0x05) // ROM bank 5
	m.Write(0xA000, 0x42) // RAM byte

	saved := m.SaveState()

	m2 := NewMBC1(rom, 32*1024)
	m2.LoadState(saved)

	if got := m2.Read(0x4000); got != 0x05 {
		t.Fatalf("ROM bank after LoadState got %02X want 05", got)
	}
	if got := m2.Read(0xA000); got != 0x42 {
		t.Fatalf("RAM byte after LoadState got %02X want 42", got)
	}
}
