package cart

import "testing"

func TestMBC5_ROMBankingAcross9Bits(t *testing.T) {
	rom := make([]byte, 2*1024*1024) // 128 banks of 0x4000
	for bank := 0; bank < 128; bank++ {
		rom[bank*0x4000] = byte(bank)
	}
	m := NewMBC5(rom, 0)

	if got := m.Read(0x4000); got != 0x01 {
		t.Fatalf("default bank read got %02X want 01", got)
	}

	m.Write(0x3000, 0x01) // set bit 8 of the bank number
	m.Write(0x2000, 0x7F) // low 8 bits = 0x7F, bit 8 still set -> bank 0x17F
	m.Write(0x3000, 0x00) // clear bit 8 -> bank 0x7F == 127
	if got := m.Read(0x4000); got != 0x7F {
		t.Fatalf("bank 127 read got %02X want 7F", got)
	}
}

func TestMBC5_RAMEnableAndBanking(t *testing.T) {
	rom := make([]byte, 0x8000)
	m := NewMBC5(rom, 4*0x2000) // 4 RAM banks

	if got := m.Read(0xA000); got != 0xFF {
		t.Fatalf("RAM disabled read got %02X want FF", got)
	}
	m.Write(0x0000, 0x0A) // enable RAM
	m.Write(0x4000, 0x02) // RAM bank 2
	m.Write(0xA010, 0x99)
	if got := m.Read(0xA010); got != 0x99 {
		t.Fatalf("RAM bank 2 RW failed: got %02X", got)
	}

	saved := m.SaveState()
	m2 := NewMBC5(rom, 4*0x2000)
	m2.LoadState(saved)
	if got := m2.Read(0xA010); got != 0x99 {
		t.Fatalf("RAM byte after LoadState got %02X want 99", got)
	}
}
