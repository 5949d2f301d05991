// Package cart implements cartridge ROM/RAM banking: a plain ROM-only
// image, and the MBC1/MBC3/MBC5 controllers most commercially released DMG
// titles shipped with.
package cart

// Cartridge is what the bus needs from any cartridge: CPU-addressed reads
// and writes over ROM (0x0000-0x7FFF, where writes are MBC control rather
// than RAM writes) and external RAM (0xA000-0xBFFF), plus state save/load.
type Cartridge interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
	SaveState() []byte
	LoadState(data []byte)
}

// BatteryBacked is implemented by cartridges whose external RAM should
// persist across runs (a ".sav" file), separately from SaveState's
// in-session snapshot.
type BatteryBacked interface {
	SaveRAM() []byte
	LoadRAM(data []byte)
}

// NewCartridge inspects rom's header byte at 0x0147 and constructs the
// matching controller, falling back to ROM-only for a missing/unreadable
// header or an unrecognized cart type (real commercial carts never hit
// that fallback; homebrew and malformed test ROMs sometimes do).
func NewCartridge(rom []byte) Cartridge {
	h, err := ParseHeader(rom)
	if err != nil {
		return NewROMOnly(rom)
	}
	switch h.CartType {
	case 0x00:
		return NewROMOnly(rom)
	case 0x01, 0x02, 0x03: // MBC1, +RAM, +RAM+battery
		return NewMBC1(rom, h.RAMSizeBytes)
	case 0x0F, 0x10, 0x11, 0x12, 0x13: // MBC3 (+timer/+RAM/+battery variants; RTC unmodeled)
		return NewMBC3(rom, h.RAMSizeBytes)
	case 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E: // MBC5 variants
		return NewMBC5(rom, h.RAMSizeBytes)
	default:
		return NewROMOnly(rom)
	}
}
