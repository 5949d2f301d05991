package cart

// ROMOnly is cart type 0x00: a bare ROM image with no banking and no
// external RAM. External RAM reads return 0xFF and writes are dropped,
// matching an empty A000-BFFF bus.
type ROMOnly struct {
	rom []byte
}

func NewROMOnly(rom []byte) *ROMOnly { return &ROMOnly{rom: rom} }

func (c *ROMOnly) Read(addr uint16) byte {
	if addr < 0x8000 {
		if int(addr) < len(c.rom) {
			return c.rom[addr]
		}
		return 0xFF
	}
	return 0xFF // 0xA000-0xBFFF and anything else: no RAM present
}

func (c *ROMOnly) Write(addr uint16, value byte) {}

func (c *ROMOnly) SaveState() []byte     { return nil }
func (c *ROMOnly) LoadState(data []byte) {}
