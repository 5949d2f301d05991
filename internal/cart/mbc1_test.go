package cart

import "testing"

func TestMBC1SwitchableBankFollowsROMBankSelect(t *testing.T) {
	rom := make([]byte, 128*1024)
	for bank := 0; bank < 8; bank++ {
		rom[bank*0x4000] = byte(bank)
	}
	m := NewMBC1(rom, 0)

	if got := m.Read(0x0000); got != 0x00 {
		t.Fatalf("fixed bank0 window read %#02x, want 00", got)
	}
	if got := m.Read(0x4000); got != 0x01 {
		t.Fatalf("switchable window defaults to bank 1, got %#02x", got)
	}

	m.Write(0x2000, 0x03)
	if got := m.Read(0x4000); got != 0x03 {
		t.Fatalf("selecting bank 3 read %#02x, want 03", got)
	}

	m.Write(0x2000, 0x00) // MBC1 remaps a written 0 up to 1
	if got := m.Read(0x4000); got != 0x01 {
		t.Fatalf("bank-select 0 should remap to 1, got %#02x", got)
	}
}

func TestMBC1RAMBankingModeSelectsRAMBankViaHighBits(t *testing.T) {
	rom := make([]byte, 128*1024)
	m := NewMBC1(rom, 32*1024)

	m.Write(0x0000, 0x0A) // RAM enable
	m.Write(0x6000, 0x01) // banking mode 1: high bits also select the RAM bank
	m.Write(0x4000, 0x02) // RAM bank 2

	m.Write(0xA000, 0x77)
	if got := m.Read(0xA000); got != 0x77 {
		t.Fatalf("RAM bank 2 round-trip: got %#02x, want 77", got)
	}
}
