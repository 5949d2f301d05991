package ppu

import "testing"

// tickWholeLines advances the PPU by n complete visible scanlines (456 dots each).
func tickWholeLines(p *PPU, n int) { p.Tick(456 * n) }

func TestWindowLineCounterStartsAtWYAndIncrementsPerLine(t *testing.T) {
	p := New(nil)
	p.CPUWrite(0xFF40, 0x80)           // LCD on
	p.CPUWrite(0xFF40, 0x80|0x01)      // BG on
	p.CPUWrite(0xFF40, 0x80|0x01|0x20) // window on
	p.CPUWrite(0xFF4A, 10)             // WY=10
	p.CPUWrite(0xFF4B, 7)              // WX=7 -> window starts at screen x=0

	tickWholeLines(p, 10)
	if ly := p.CPURead(0xFF44); ly != 10 {
		t.Fatalf("expected LY=10, got %d", ly)
	}
	p.Tick(80) // enter mode 3 on line 10 so the line snapshot is captured
	if lr := p.LineRegs(10); lr.WinLine != 0 {
		t.Fatalf("expected WinLine=0 on the line matching WY, got %d", lr.WinLine)
	}

	tickWholeLines(p, 1)
	p.Tick(80)
	if lr := p.LineRegs(11); lr.WinLine != 1 {
		t.Fatalf("expected WinLine=1 one line after WY, got %d", lr.WinLine)
	}
}

func TestWindowStaysHiddenWhenWXPastTheVisibleEdge(t *testing.T) {
	p := New(nil)
	p.CPUWrite(0xFF40, 0x80|0x01|0x20)
	p.CPUWrite(0xFF4A, 5)   // WY=5
	p.CPUWrite(0xFF4B, 200) // WX far past the 166 cutoff, window never draws

	tickWholeLines(p, 8)
	for y := 5; y <= 12; y++ {
		if lr := p.LineRegs(y); lr.WinLine != 0 {
			t.Fatalf("expected WinLine=0 at y=%d since WX>166 keeps the window off-screen", y)
		}
	}
}
