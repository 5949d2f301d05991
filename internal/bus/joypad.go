package bus

// Joyp* are the button bits SetJoypadState expects, set meaning pressed.
// They match the active-low nibble layout JOYP (0xFF00) exposes once a
// selection group (P14/P15) pulls a row low.
const (
	JoypRight     = 1 << 0
	JoypLeft      = 1 << 1
	JoypUp        = 1 << 2
	JoypDown      = 1 << 3
	JoypA         = 1 << 4
	JoypB         = 1 << 5
	JoypSelectBtn = 1 << 6
	JoypStart     = 1 << 7
)

// readJoyp renders FF00: bits 7:6 always read 1, bits 5:4 echo the last
// selection write, and bits 3:0 are the active-low state of whichever
// button row(s) P14/P15 select (both rows, ORed together, if both are
// pulled low at once).
func (b *Bus) readJoyp() byte {
	res := byte(0xC0 | (b.joypSelect & 0x30) | 0x0F)
	if b.joypSelect&0x10 == 0 {
		res &^= dpadLowNibble(b.joypad)
	}
	if b.joypSelect&0x20 == 0 {
		res &^= buttonLowNibble(b.joypad)
	}
	return res
}

func dpadLowNibble(joypad byte) byte {
	var n byte
	if joypad&JoypRight != 0 {
		n |= 0x01
	}
	if joypad&JoypLeft != 0 {
		n |= 0x02
	}
	if joypad&JoypUp != 0 {
		n |= 0x04
	}
	if joypad&JoypDown != 0 {
		n |= 0x08
	}
	return n
}

func buttonLowNibble(joypad byte) byte {
	var n byte
	if joypad&JoypA != 0 {
		n |= 0x01
	}
	if joypad&JoypB != 0 {
		n |= 0x02
	}
	if joypad&JoypSelectBtn != 0 {
		n |= 0x04
	}
	if joypad&JoypStart != 0 {
		n |= 0x08
	}
	return n
}

// updateJoypadIRQ recomputes the active-low nibble and requests the joypad
// interrupt (IF bit 4) on any bit's 1->0 transition, the documented
// trigger condition regardless of which selection row caused it.
func (b *Bus) updateJoypadIRQ() {
	var newLower byte
	if b.joypSelect&0x10 == 0 {
		newLower |= dpadLowNibble(b.joypad)
	}
	if b.joypSelect&0x20 == 0 {
		newLower |= buttonLowNibble(b.joypad)
	}
	newLower = 0x0F &^ newLower

	falling := b.joypLower4 &^ newLower
	if falling != 0 {
		b.ifReg |= 1 << 4
	}
	b.joypLower4 = newLower
}
