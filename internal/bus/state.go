package bus

import (
	"bytes"
	"encoding/gob"
)

// busSnapshot is the gob-encoded shape of everything Bus owns directly.
// PPU and cartridge state are appended as opaque blobs produced by their
// own SaveState methods, so this shape only needs to change when a field
// is added or removed here.
type busSnapshot struct {
	WRAM       [0x2000]byte
	HRAM       [0x7F]byte
	IE, IF     byte
	JoypSel    byte
	Joypad     byte
	JoypLower4 byte
	DivInt     uint16
	TIMA       byte
	TMA        byte
	TAC        byte
	TIMAReload int
	SB, SC     byte
	DMA        byte
	DMABusy    bool
	DMAIndex   int
	BootOn     bool
}

func (b *Bus) snapshot() busSnapshot {
	return busSnapshot{
		WRAM: b.wram, HRAM: b.hram,
		IE: b.ie, IF: b.ifReg,
		JoypSel: b.joypSelect, Joypad: b.joypad, JoypLower4: b.joypLower4,
		DivInt: b.divInternal, TIMA: b.tima, TMA: b.tma, TAC: b.tac, TIMAReload: b.timaReload,
		SB: b.sb, SC: b.sc,
		DMA: b.dma, DMABusy: b.dmaBusy, DMAIndex: b.dmaIndex,
		BootOn: b.bootEnabled,
	}
}

func (b *Bus) restore(s busSnapshot) {
	b.wram, b.hram = s.WRAM, s.HRAM
	b.ie, b.ifReg = s.IE, s.IF
	b.joypSelect, b.joypad, b.joypLower4 = s.JoypSel, s.Joypad, s.JoypLower4
	b.divInternal, b.tima, b.tma, b.tac, b.timaReload = s.DivInt, s.TIMA, s.TMA, s.TAC, s.TIMAReload
	b.sb, b.sc = s.SB, s.SC
	b.dma, b.dmaBusy, b.dmaIndex = s.DMA, s.DMABusy, s.DMAIndex
	b.bootEnabled = s.BootOn
}

// SaveState serializes the bus's own registers followed by the PPU's and
// the cartridge's (each as an opaque gob-encoded []byte, so this format
// doesn't need to know their internal shape).
func (b *Bus) SaveState() []byte {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	_ = enc.Encode(b.snapshot())

	var ppuState []byte
	if b.ppu != nil {
		ppuState = b.ppu.SaveState()
	}
	_ = enc.Encode(ppuState)

	var cartState []byte
	if saver, ok := b.cart.(interface{ SaveState() []byte }); ok {
		cartState = saver.SaveState()
	}
	_ = enc.Encode(cartState)

	return buf.Bytes()
}

// LoadState restores a blob produced by SaveState. A decode failure leaves
// the bus untouched rather than partially overwritten.
func (b *Bus) LoadState(data []byte) {
	dec := gob.NewDecoder(bytes.NewReader(data))

	var s busSnapshot
	if err := dec.Decode(&s); err != nil {
		return
	}
	b.restore(s)

	var ppuState []byte
	if err := dec.Decode(&ppuState); err == nil && b.ppu != nil {
		b.ppu.LoadState(ppuState)
	}

	var cartState []byte
	if err := dec.Decode(&cartState); err == nil {
		if loader, ok := b.cart.(interface{ LoadState([]byte) }); ok {
			loader.LoadState(cartState)
		}
	}
}
