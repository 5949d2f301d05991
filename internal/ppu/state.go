package ppu

import (
	"bytes"
	"encoding/gob"
)

// ppuState is the gob-serializable snapshot of everything save/load needs to
// resume a frame mid-render; the tile cache and canvas are derived data and
// are rebuilt rather than serialized.
type ppuState struct {
	VRAM   [0x2000]byte
	OAM    [0xA0]byte
	LCDC, STAT, SCY, SCX, LY, LYC byte
	BGP, OBP0, OBP1, WY, WX       byte
	Dot            int
	WinLineCounter int
}

// SaveState encodes the PPU's architectural state using the same gob
// convention internal/bus.SaveState uses for the rest of the machine.
func (p *PPU) SaveState() []byte {
	var buf bytes.Buffer
	s := ppuState{
		VRAM: p.vram, OAM: p.oam,
		LCDC: p.lcdc, STAT: p.stat, SCY: p.scy, SCX: p.scx, LY: p.ly, LYC: p.lyc,
		BGP: p.bgp, OBP0: p.obp0, OBP1: p.obp1, WY: p.wy, WX: p.wx,
		Dot: p.dot, WinLineCounter: p.winLineCounter,
	}
	_ = gob.NewEncoder(&buf).Encode(s)
	return buf.Bytes()
}

// LoadState restores a snapshot written by SaveState and rebuilds the tile
// cache from the restored VRAM, since raw VRAM writes here don't go through
// CPUWrite's write-through path.
func (p *PPU) LoadState(data []byte) {
	var s ppuState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return
	}
	p.vram, p.oam = s.VRAM, s.OAM
	p.lcdc, p.stat, p.scy, p.scx, p.ly, p.lyc = s.LCDC, s.STAT, s.SCY, s.SCX, s.LY, s.LYC
	p.bgp, p.obp0, p.obp1, p.wy, p.wx = s.BGP, s.OBP0, s.OBP1, s.WY, s.WX
	p.dot, p.winLineCounter = s.Dot, s.WinLineCounter
	p.tc.rebuildAll(&p.vram)
	p.lineRegs = [144]LineRegs{}
}
