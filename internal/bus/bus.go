// Package bus maps the SM83's 16-bit address space onto cartridge, WRAM,
// HRAM, the PPU, and the small set of IO registers the CPU can see. It is
// the one place that knows which device owns which address range; every
// device behind it (cart.Cartridge, ppu.PPU) is addressed through its own
// CPU-facing Read/Write pair.
package bus

import (
	"io"
	"os"

	"github.com/FabianRolfMatthiasNoll/GameBoyEmulator/internal/cart"
	"github.com/FabianRolfMatthiasNoll/GameBoyEmulator/internal/ppu"
)

// Bus owns everything the CPU addresses that isn't cartridge or PPU state
// directly: WRAM, HRAM, the interrupt registers, and the timer/joypad/
// serial/DMA peripherals wired through FF00-FF7F.
type Bus struct {
	cart cart.Cartridge
	ppu  *ppu.PPU

	wram [0x2000]byte // 0xC000-0xDFFF; 0xE000-0xFDFF echoes the first 0x1E00 of it
	hram [0x7F]byte   // 0xFF80-0xFFFE

	ie    byte // 0xFFFF
	ifReg byte // 0xFF0F, lower 5 bits

	joypSelect byte // last write to bits 5:4 of 0xFF00
	joypad     byte // Joyp* mask of currently-pressed buttons
	joypLower4 byte // last computed active-low nibble, for edge detection

	divInternal uint16 // free-running 16-bit divider; DIV (0xFF04) is its high byte
	tima        byte
	tma         byte
	tac         byte // lower 3 bits used
	timaReload  int  // cycles left before a post-overflow TIMA reload from TMA; 0 = none pending

	sb byte      // 0xFF01
	sc byte      // 0xFF02, bit7 start / bit0 clock source
	sw io.Writer // optional sink for bytes sent over the serial port

	dma      byte // 0xFF46, also the in-progress transfer's source page
	dmaBusy  bool
	dmaIndex int

	bootROM     []byte
	bootEnabled bool

	debugTimer bool // GB_DEBUG_TIMER: log DIV/TIMA/TMA/TAC transitions to stdout
}

// New constructs a Bus around a cartridge image, letting cart.NewCartridge
// pick the controller (ROM-only or an MBC) from the header.
func New(rom []byte) *Bus {
	return NewWithCartridge(cart.NewCartridge(rom))
}

// NewWithCartridge wires a Bus around an already-constructed cartridge
// (e.g. one built by cart.NewCartridge, which picks the MBC from the header).
func NewWithCartridge(c cart.Cartridge) *Bus {
	b := &Bus{cart: c}
	b.ppu = ppu.New(func(bit int) { b.ifReg |= 1 << bit })
	b.debugTimer = os.Getenv("GB_DEBUG_TIMER") != ""
	return b
}

// PPU exposes the owned PPU for host-side rendering and register inspection.
func (b *Bus) PPU() *ppu.PPU { return b.ppu }

// Cart exposes the owned cartridge, e.g. for battery-RAM save/load.
func (b *Bus) Cart() cart.Cartridge { return b.cart }

// SetBootROM installs a 256-byte DMG boot image at 0x0000-0x00FF; it stays
// mapped over cartridge ROM until a write to 0xFF50 disables it.
func (b *Bus) SetBootROM(data []byte) {
	b.bootROM = nil
	b.bootEnabled = false
	if len(data) >= 0x100 {
		b.bootROM = make([]byte, 0x100)
		copy(b.bootROM, data[:0x100])
		b.bootEnabled = true
	}
}

// SetSerialWriter directs bytes sent over the serial port (0xFF01/0xFF02)
// to w instead of discarding them.
func (b *Bus) SetSerialWriter(w io.Writer) { b.sw = w }

func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr < 0x8000:
		if b.bootEnabled && addr < 0x0100 && len(b.bootROM) >= 0x100 {
			return b.bootROM[addr]
		}
		return b.cart.Read(addr)
	case addr <= 0x9FFF: // VRAM
		return b.ppu.CPURead(addr)
	case addr <= 0xBFFF: // external (cartridge) RAM
		return b.cart.Read(addr)
	case addr <= 0xDFFF: // WRAM
		return b.wram[addr-0xC000]
	case addr <= 0xFDFF: // echo RAM, mirrors 0xC000-0xDDFF
		return b.wram[(addr-0x2000)-0xC000]
	case addr <= 0xFE9F: // OAM, blacked out while DMA owns it
		if b.dmaBusy {
			return 0xFF
		}
		return b.ppu.CPURead(addr)
	case addr <= 0xFEFF: // unusable
		return 0xFF
	case addr == 0xFF00:
		return b.readJoyp()
	case addr == 0xFF01:
		return b.sb
	case addr == 0xFF02:
		return 0x7E | (b.sc & 0x81)
	case addr == 0xFF04:
		return byte(b.divInternal >> 8)
	case addr == 0xFF05:
		return b.tima
	case addr == 0xFF06:
		return b.tma
	case addr == 0xFF07:
		return 0xF8 | (b.tac & 0x07)
	case addr == 0xFF0F:
		return 0xE0 | (b.ifReg & 0x1F)
	case isPPURegister(addr):
		return b.ppu.CPURead(addr)
	case addr == 0xFF46:
		return b.dma
	case addr == 0xFF50:
		return 0xFF
	case addr <= 0xFF7F: // remaining IO not modeled
		return 0xFF
	case addr <= 0xFFFE: // HRAM
		return b.hram[addr-0xFF80]
	default: // 0xFFFF
		return b.ie
	}
}

func (b *Bus) Write(addr uint16, value byte) {
	switch {
	case addr < 0x8000:
		b.cart.Write(addr, value)
	case addr <= 0x9FFF:
		b.ppu.CPUWrite(addr, value)
	case addr <= 0xBFFF:
		b.cart.Write(addr, value)
	case addr <= 0xDFFF:
		b.wram[addr-0xC000] = value
	case addr <= 0xFDFF:
		mirror := addr - 0x2000
		if mirror >= 0xC000 && mirror <= 0xDDFF {
			b.wram[mirror-0xC000] = value
		}
	case addr <= 0xFE9F:
		if !b.dmaBusy {
			b.ppu.CPUWrite(addr, value)
		}
	case addr <= 0xFEFF: // unusable
	case addr == 0xFF00:
		b.joypSelect = value & 0x30
		b.updateJoypadIRQ()
	case addr == 0xFF01:
		b.sb = value
	case addr == 0xFF02:
		b.writeSerialControl(value)
	case addr == 0xFF04:
		b.resetDivider()
	case addr == 0xFF05:
		b.writeTIMA(value)
	case addr == 0xFF06:
		b.writeTMA(value)
	case addr == 0xFF07:
		b.writeTAC(value)
	case addr == 0xFF0F:
		b.ifReg = value & 0x1F
	case isPPURegister(addr):
		b.ppu.CPUWrite(addr, value)
	case addr == 0xFF46:
		b.startOAMDMA(value)
	case addr == 0xFF50:
		b.bootEnabled = false
	case addr <= 0xFF7F: // remaining IO not modeled
	case addr <= 0xFFFE:
		b.hram[addr-0xFF80] = value
	default: // 0xFFFF
		b.ie = value
	}
}

// isPPURegister reports whether addr is one of the LCDC/STAT/scroll/
// palette registers the PPU owns directly (FF46 DMA and FF4C-FF4F CGB-only
// registers are not included; this machine never runs in CGB mode).
func isPPURegister(addr uint16) bool {
	switch addr {
	case 0xFF40, 0xFF41, 0xFF42, 0xFF43, 0xFF44, 0xFF45,
		0xFF47, 0xFF48, 0xFF49, 0xFF4A, 0xFF4B:
		return true
	default:
		return false
	}
}

// Tick advances every addr-mapped peripheral with a clock: the divider/
// timer, OAM DMA, and the PPU, by cycles T-states (1 T-state per call to
// CPU.Step's cycle accounting).
func (b *Bus) Tick(cycles int) {
	for i := 0; i < cycles; i++ {
		b.tickTimer()
		b.tickOAMDMA()
		b.ppu.Tick(1)
	}
}

// SetJoypadState replaces which buttons are currently held; mask is built
// from the Joyp* constants, one bit per button, set meaning pressed.
func (b *Bus) SetJoypadState(mask byte) {
	b.joypad = mask
	b.updateJoypadIRQ()
}
