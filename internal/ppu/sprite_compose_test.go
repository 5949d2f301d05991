package ppu

import "testing"

// mockVRAM is a sparse VRAMReader for sprite-compositing tests that only
// care about a handful of tile bytes, not a full 8KiB VRAM array.
type mockVRAM map[uint16]byte

func (m mockVRAM) Read(addr uint16) byte { return m[addr] }

func TestComposeSpriteLineHonorsBGPriorityBit(t *testing.T) {
	mem := mockVRAM{}
	base := uint16(0x8000)
	mem[base+0] = 0x80 // leftmost pixel (bit7) opaque, lo-plane only -> color index 1
	mem[base+1] = 0x00

	sprites := []Sprite{{X: 10, Y: 5, Tile: 0, Attr: 0, OAMIndex: 0}}
	var bgci [160]byte
	out := ComposeSpriteLine(mem, sprites, 5, bgci, false)
	if out[10] == 0 {
		t.Fatalf("expected a sprite pixel at x=10 with no priority bit and empty BG")
	}

	sprites[0].Attr = spriteAttrPriority
	bgci[10] = 1 // non-transparent BG pixel now covers the sprite
	out = ComposeSpriteLine(mem, sprites, 5, bgci, false)
	if out[10] != 0 {
		t.Fatalf("expected the priority-behind-BG sprite pixel to be hidden")
	}
}

func TestComposeSpriteLineBreaksOverlapTiesByLowerX(t *testing.T) {
	mem := mockVRAM{}
	base := uint16(0x8000)
	mem[base+0] = 0xFF // tile 0: full opaque row, color index 1
	mem[base+1] = 0x00
	mem[base+0x10] = 0x00 // tile 1: full opaque row, color index 2
	mem[base+0x11] = 0xFF

	left := Sprite{X: 19, Y: 0, Tile: 0, Attr: 0, OAMIndex: 5}
	right := Sprite{X: 20, Y: 0, Tile: 1, Attr: 0, OAMIndex: 3}
	var bgci [160]byte

	out := ComposeSpriteLine(mem, []Sprite{left, right}, 0, bgci, false)
	// x=20 is covered by left's column 1 (X=19+1) and right's column 0 (X=20+0).
	// DMG priority is lower X wins, so left (X=19) should win that pixel.
	if out[20] != 1 {
		t.Fatalf("x=20 got color index %d, want 1 from the lower-X sprite", out[20])
	}
}
