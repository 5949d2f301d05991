package ppu

// render.go turns the per-line register snapshot plus the tile cache and OAM
// into the 160x144 RGBA canvas the host shell presents. Background/window
// resolution walks the tile cache directly (renderBGRow/renderWindowRow);
// sprite compositing is its own pass so DMG OBJ-to-BG priority and the
// 10-sprites-per-line limit live in one place.

// Sprite is one decoded OAM entry, in the order it should be considered for
// priority (lower X wins; ties broken by OAMIndex, i.e. table order).
type Sprite struct {
	Y, X, Tile, Attr byte
	OAMIndex         int
}

const (
	spriteAttrPriority = 1 << 7 // 1: behind BG colors 1-3
	spriteAttrYFlip    = 1 << 6
	spriteAttrXFlip    = 1 << 5
	spriteAttrPalette  = 1 << 4 // 0: OBP0, 1: OBP1
)

// LineRegs is the register state latched when a scanline enters VRAMAccess
// (mode 3), so mid-HBlank writes to scroll/window/palette registers never
// affect a line already being composited.
type LineRegs struct {
	Valid                        bool
	LCDC, BGP, OBP0, OBP1        byte
	SCX, SCY, WX, WY             byte
	WinLine                      int
	WindowVisibleThisLine        bool
}

// parseSprites scans OAM for up to 10 sprites intersecting scanline ly,
// using LCDC bit 2 for 8x8 vs 8x16 sprite height.
func (p *PPU) parseSprites(ly byte, tall bool) []Sprite {
	height := byte(8)
	if tall {
		height = 16
	}
	var out []Sprite
	for i := 0; i < 40 && len(out) < 10; i++ {
		base := i * 4
		y := p.oam[base] - 16
		x := p.oam[base+1] - 8
		tile := p.oam[base+2]
		attr := p.oam[base+3]
		if tall {
			tile &^= 0x01
		}
		row := int(ly) - int(y)
		if row < 0 || row >= int(height) {
			continue
		}
		out = append(out, Sprite{Y: y, X: x, Tile: tile, Attr: attr, OAMIndex: i})
	}
	return out
}

// VRAMReader is the read-only VRAM view ComposeSpriteLine fetches sprite
// tile bytes through; *PPU satisfies it with Read.
type VRAMReader interface {
	Read(addr uint16) byte
}

// ComposeSpriteLine resolves sprite-to-sprite and sprite-to-background
// priority for one scanline and returns the winning color index per pixel
// (0 = no sprite pixel there). bgci is the already-rendered background+
// window color-index row; bgDisabled mirrors LCDC bit 0 clear, under which
// DMG sprites ignore their priority attribute and always draw on top.
func ComposeSpriteLine(mem VRAMReader, sprites []Sprite, ly byte, bgci [160]byte, bgDisabled bool) [160]byte {
	var out [160]byte
	winnerX := [160]int{}
	winnerOAM := [160]int{}
	for i := range winnerX {
		winnerX[i] = -1
	}

	for _, s := range sprites {
		row := int(ly) - int(s.Y)
		if s.Attr&spriteAttrYFlip != 0 {
			// Height is implied by caller's tile adjustment; 8x8 default here,
			// 8x16 callers pre-clear bit0 of Tile and still index 0..7/0..15.
			height := 8
			if row >= 8 {
				height = 16
			}
			row = height - 1 - row
		}
		tileNum := s.Tile
		if row >= 8 {
			tileNum++
			row -= 8
		}
		base := uint16(0x8000) + uint16(tileNum)*16 + uint16(row)*2
		lo := mem.Read(base)
		hi := mem.Read(base + 1)

		for px := 0; px < 8; px++ {
			bit := byte(7 - px)
			if s.Attr&spriteAttrXFlip != 0 {
				bit = byte(px)
			}
			ci := ((hi>>bit)&1)<<1 | ((lo >> bit) & 1)
			if ci == 0 {
				continue
			}
			sx := int(s.X) + px
			if sx < 0 || sx >= 160 {
				continue
			}
			if winnerX[sx] >= 0 {
				if s.X > byte(winnerX[sx]) {
					continue
				}
				if s.X == byte(winnerX[sx]) && s.OAMIndex >= winnerOAM[sx] {
					continue
				}
			}
			if !bgDisabled && s.Attr&spriteAttrPriority != 0 && bgci[sx] != 0 {
				continue
			}
			out[sx] = ci
			winnerX[sx] = int(s.X)
			winnerOAM[sx] = s.OAMIndex
		}
	}
	return out
}

// applyPalette maps a 2-bit color index through a BGP/OBP-style palette byte
// (bits 1:0 = color 0's shade, ... 7:6 = color 3's shade) to a DMG shade 0..3.
func applyPalette(pal byte, ci byte) byte {
	return (pal >> (ci * 2)) & 0x03
}

// dmgShade maps a 2-bit shade index to an RGBA pixel: the DMG LCD has no
// color, so each entry repeats one gray level across R, G, and B with A
// fully opaque. Levels match the panel's four on-screen grays (white,
// light gray, dark gray, black) rather than any later-hardware tint.
var dmgShade = [4][4]byte{
	{255, 255, 255, 255}, // white
	{192, 192, 192, 255}, // light gray
	{96, 96, 96, 255},    // dark gray
	{0, 0, 0, 255},       // black
}

// captureLineRegs snapshots the registers relevant to rendering at the start
// of mode 3 for the given line, and advances the window line counter exactly
// once per visible, window-active line.
func (p *PPU) captureLineRegs(ly byte) {
	windowEnabled := p.lcdc&0x20 != 0
	visible := windowEnabled && ly >= p.wy && p.wx <= 166
	lr := LineRegs{
		Valid: true,
		LCDC:  p.lcdc, BGP: p.bgp, OBP0: p.obp0, OBP1: p.obp1,
		SCX: p.scx, SCY: p.scy, WX: p.wx, WY: p.wy,
		WinLine:               p.winLineCounter,
		WindowVisibleThisLine: visible,
	}
	p.lineRegs[ly] = lr
	if visible {
		p.winLineCounter++
	}
}

// LineRegs returns the register snapshot captured for scanline ly (for tests
// and host-side debugging); the zero value's Valid is false if ly was never
// rendered since the PPU was constructed or the LCD was turned on.
func (p *PPU) LineRegs(ly int) LineRegs {
	if ly < 0 || ly >= 144 {
		return LineRegs{}
	}
	return p.lineRegs[ly]
}

// renderLine composites background, window, and sprites for scanline ly into
// the canvas, using the registers captured at that line's mode-3 entry.
func (p *PPU) renderLine(ly byte) {
	lr := p.lineRegs[ly]
	if !lr.Valid {
		return
	}

	var bgci [160]byte
	bgEnabled := lr.LCDC&0x01 != 0
	if bgEnabled {
		bgMap := uint16(0x9800)
		if lr.LCDC&0x08 != 0 {
			bgMap = 0x9C00
		}
		signed := lr.LCDC&0x10 == 0
		bgci = p.renderBGRow(bgMap, signed, lr.SCX, lr.SCY, ly)
	}

	if bgEnabled && lr.WindowVisibleThisLine {
		winMap := uint16(0x9800)
		if lr.LCDC&0x40 != 0 {
			winMap = 0x9C00
		}
		signed := lr.LCDC&0x10 == 0
		wxStart := int(lr.WX) - 7
		winRow := p.renderWindowRow(winMap, signed, wxStart, byte(lr.WinLine))
		for x := wxStart; x < 160; x++ {
			if x < 0 {
				continue
			}
			bgci[x] = winRow[x]
		}
	}

	var spriteRow [160]byte
	if lr.LCDC&0x02 != 0 {
		tall := lr.LCDC&0x04 != 0
		sprites := p.parseSprites(ly, tall)
		spriteRow = ComposeSpriteLine(p, sprites, ly, bgci, !bgEnabled)
	}

	for x := 0; x < 160; x++ {
		var shade byte
		if spriteRow[x] != 0 {
			pal := lr.OBP0
			if p.spritePaletteAt(ly, tallFromLCDC(lr.LCDC), x) == 1 {
				pal = lr.OBP1
			}
			shade = applyPalette(pal, spriteRow[x])
		} else if bgEnabled {
			shade = applyPalette(lr.BGP, bgci[x])
		} else {
			shade = 0
		}
		p.canvas[int(ly)*160+x] = dmgShade[shade]
	}
}

func tallFromLCDC(lcdc byte) bool { return lcdc&0x04 != 0 }

// spritePaletteAt re-derives which OBP a winning sprite pixel came from.
// Composing the palette selector inline in ComposeSpriteLine would require
// returning a second plane; since sprites are rare relative to background
// pixels, a second narrower pass here keeps the hot compositing loop small.
func (p *PPU) spritePaletteAt(ly byte, tall bool, x int) byte {
	sprites := p.parseSprites(ly, tall)
	bestX := -1
	bestOAM := -1
	bestPal := byte(0)
	for _, s := range sprites {
		row := int(ly) - int(s.Y)
		if s.Attr&spriteAttrYFlip != 0 {
			height := 8
			if row >= 8 {
				height = 16
			}
			row = height - 1 - row
		}
		tileNum := s.Tile
		if row >= 8 {
			tileNum++
			row -= 8
		}
		base := uint16(0x8000) + uint16(tileNum)*16 + uint16(row)*2
		lo := p.Read(base)
		hi := p.Read(base + 1)
		for px := 0; px < 8; px++ {
			sx := int(s.X) + px
			if sx != x {
				continue
			}
			bit := byte(7 - px)
			if s.Attr&spriteAttrXFlip != 0 {
				bit = byte(px)
			}
			ci := ((hi>>bit)&1)<<1 | ((lo >> bit) & 1)
			if ci == 0 {
				continue
			}
			if bestX >= 0 && (s.X > byte(bestX) || (s.X == byte(bestX) && s.OAMIndex >= bestOAM)) {
				continue
			}
			bestX = int(s.X)
			bestOAM = s.OAMIndex
			if s.Attr&spriteAttrPalette != 0 {
				bestPal = 1
			} else {
				bestPal = 0
			}
		}
	}
	return bestPal
}

// renderBGRow and renderWindowRow resolve color indices through the tile
// cache rather than re-reading VRAM byte pairs per pixel.
func (p *PPU) renderBGRow(mapBase uint16, signed bool, scx, scy, ly byte) [160]byte {
	var out [160]byte
	bgY := uint16(ly) + uint16(scy)
	fineY := byte(bgY & 7)
	mapY := (bgY >> 3) & 31
	for x := 0; x < 160; x++ {
		bgX := (uint16(scx) + uint16(x)) & 0xFF
		tileX := (bgX >> 3) & 31
		fineX := byte(bgX & 7)
		tileAddr := mapBase + mapY*32 + tileX
		tileNum := p.vram[tileAddr-0x8000]
		row := p.tc.tileRow(tileNum, signed, fineY)
		out[x] = row[fineX]
	}
	return out
}

func (p *PPU) renderWindowRow(mapBase uint16, signed bool, wxStart int, winLine byte) [160]byte {
	var out [160]byte
	mapY := uint16(winLine) >> 3
	fineY := winLine & 7
	for x := wxStart; x < 160; x++ {
		if x < 0 {
			continue
		}
		col := uint16(x - wxStart)
		tileX := (col >> 3) & 31
		fineX := byte(col & 7)
		tileAddr := mapBase + mapY*32 + tileX
		tileNum := p.vram[tileAddr-0x8000]
		row := p.tc.tileRow(tileNum, signed, fineY)
		out[x] = row[fineX]
	}
	return out
}

// Canvas returns the current 160x144 RGBA frame buffer (4 bytes per pixel,
// R/G/B equal and A=255, per dmgShade) as a freshly allocated copy, so
// callers may keep or modify it without affecting the PPU.
func (p *PPU) Canvas() []byte {
	buf := make([]byte, len(p.canvas)*4)
	for i, px := range p.canvas {
		copy(buf[i*4:i*4+4], px[:])
	}
	return buf
}
