package bus

import "testing"

// These exercise the PPU purely through Bus.Read/Write/Tick, the same way
// the CPU ever touches it, rather than through ppu.PPU directly: they're
// really testing that the bus dispatches FF40-FF4B and VRAM/OAM access
// windows correctly, not PPU timing itself (see internal/ppu for that).

func TestBusDispatchesModeSequenceThroughSTAT(t *testing.T) {
	b := New(make([]byte, 0x8000))
	b.Write(0xFF40, 0x80) // LCD on

	if mode := b.Read(0xFF41) & 0x03; mode != 2 {
		t.Fatalf("mode at LY=0/dot=0 = %d, want 2", mode)
	}
	b.Tick(80)
	if mode := b.Read(0xFF41) & 0x03; mode != 3 {
		t.Fatalf("mode at dot 80 = %d, want 3", mode)
	}
	b.Tick(172)
	if mode := b.Read(0xFF41) & 0x03; mode != 0 {
		t.Fatalf("mode at dot 252 = %d, want 0", mode)
	}
	b.Tick(456 - 252)
	if ly := b.Read(0xFF44); ly != 1 {
		t.Fatalf("LY after one full line = %d, want 1", ly)
	}
	if mode := b.Read(0xFF41) & 0x03; mode != 2 {
		t.Fatalf("mode at start of next line = %d, want 2", mode)
	}
}

func TestBusReportsVBlankWindowAndWraparound(t *testing.T) {
	b := New(make([]byte, 0x8000))
	b.Write(0xFF40, 0x80)
	b.Write(0xFF0F, 0x00)

	b.Tick(144 * 456)
	if ly := b.Read(0xFF44); ly != 144 {
		t.Fatalf("LY at VBlank entry = %d, want 144", ly)
	}
	if mode := b.Read(0xFF41) & 0x03; mode != 1 {
		t.Fatalf("mode at VBlank entry = %d, want 1", mode)
	}
	if b.Read(0xFF0F)&0x01 == 0 {
		t.Fatalf("VBlank IF not set")
	}

	b.Tick(10 * 456) // lines 144..153, then wrap
	if ly := b.Read(0xFF44); ly != 0 {
		t.Fatalf("LY after VBlank wraparound = %d, want 0", ly)
	}
}

func TestBusRaisesSTATOnHBlankWhenEnabled(t *testing.T) {
	b := New(make([]byte, 0x8000))
	b.Write(0xFF40, 0x80)
	b.Write(0xFF41, 1<<3) // HBlank STAT source
	b.Write(0xFF0F, 0x00)

	b.Tick(80 + 172) // mode 3 -> mode 0 transition
	if b.Read(0xFF0F)&(1<<1) == 0 {
		t.Fatalf("expected STAT IF on HBlank entry")
	}
}

func TestBusRaisesSTATOnlyWhenVBlankSourceEnabled(t *testing.T) {
	b := New(make([]byte, 0x8000))
	b.Write(0xFF40, 0x80)
	b.Write(0xFF0F, 0x00)
	b.Write(0xFF41, 0x00) // no STAT sources enabled

	b.Tick(144 * 456)
	if b.Read(0xFF0F)&0x01 == 0 {
		t.Fatalf("VBlank IF not set")
	}
	if b.Read(0xFF0F)&0x02 != 0 {
		t.Fatalf("STAT IF set with no source enabled")
	}

	b.Write(0xFF0F, 0x00)
	b.Write(0xFF41, 1<<4) // enable VBlank STAT source
	b.Tick(154 * 456)     // run to the next VBlank entry
	if b.Read(0xFF0F)&0x02 == 0 {
		t.Fatalf("STAT IF not set once the VBlank source is enabled")
	}
}

func TestBusRaisesSTATAndCoincidenceFlagOnLYCMatch(t *testing.T) {
	b := New(make([]byte, 0x8000))
	b.Write(0xFF40, 0x80)
	b.Write(0xFF41, 1<<6) // LYC=LY STAT source
	b.Write(0xFF45, 0x01) // LYC=1
	b.Write(0xFF0F, 0x00)

	b.Tick(456) // one full line reaches LY=1
	if b.Read(0xFF0F)&(1<<1) == 0 {
		t.Fatalf("expected STAT IF on LYC=LY match")
	}
	if b.Read(0xFF41)&(1<<2) == 0 {
		t.Fatalf("expected coincidence flag set when LY==LYC")
	}
}

func TestBusWritingLYResetsLineAndMode(t *testing.T) {
	b := New(make([]byte, 0x8000))
	b.Write(0xFF40, 0x80)
	b.Tick(252) // into HBlank, mid-line
	if mode := b.Read(0xFF41) & 0x03; mode != 0 {
		t.Fatalf("mode before LY write = %d, want 0", mode)
	}

	b.Write(0xFF44, 0x99) // any value resets LY/dot and re-enters mode 2
	if ly := b.Read(0xFF44); ly != 0 {
		t.Fatalf("LY after write = %d, want 0", ly)
	}
	if mode := b.Read(0xFF41) & 0x03; mode != 2 {
		t.Fatalf("mode after LY write = %d, want 2", mode)
	}
}

func TestBusBlocksVRAMAndOAMWritesDuringModes2And3(t *testing.T) {
	b := New(make([]byte, 0x8000))
	b.Write(0xFF40, 0x80)
	b.Tick(80 + 172) // mode 0: both regions writable here
	b.Write(0x8000, 0x11)
	b.Write(0xFE00, 0x22)

	b.Tick(456 - 252) // next line start (mode 2)
	b.Tick(80)        // enter mode 3
	b.Write(0x8000, 0xAA)
	b.Write(0xFE00, 0xBB)
	if got := b.Read(0x8000); got != 0xFF {
		t.Fatalf("VRAM read during mode 3 = %02X, want FF", got)
	}
	if got := b.Read(0xFE00); got != 0xFF {
		t.Fatalf("OAM read during mode 3 = %02X, want FF", got)
	}

	b.Tick(172) // HBlank: both readable again, writes from mode 3 were dropped
	if got := b.Read(0x8000); got != 0x11 {
		t.Fatalf("VRAM value changed despite blocked write: %02X", got)
	}
	if got := b.Read(0xFE00); got != 0x22 {
		t.Fatalf("OAM value changed despite blocked write: %02X", got)
	}
}

func TestOAMDMACopiesOneByteAtATimeAndBlocksCPUAccess(t *testing.T) {
	b := New(make([]byte, 0x8000))
	for i := 0; i < 0xA0; i++ {
		b.Write(0xC000+uint16(i), byte(i))
	}
	b.Write(0xFF46, 0xC0) // source page 0xC000

	if got := b.Read(0xFE00); got != 0xFF {
		t.Fatalf("OAM read during DMA = %02X, want FF", got)
	}
	b.Write(0xFE00, 0xEE) // ignored while DMA owns OAM

	b.Tick(80)
	if got := b.Read(0xFE10); got != 0xFF {
		t.Fatalf("mid-DMA OAM read = %02X, want FF", got)
	}

	b.Tick(80) // remaining half of the 160-cycle transfer
	for i := 0; i < 0xA0; i++ {
		if got := b.Read(0xFE00 + uint16(i)); got != byte(i) {
			t.Fatalf("OAM[%02X] = %02X, want %02X", i, got, byte(i))
		}
	}

	b.Write(0xFE00, 0x99) // CPU access restored once the transfer finishes
	if got := b.Read(0xFE00); got != 0x99 {
		t.Fatalf("post-DMA OAM write failed: got %02X", got)
	}
}
