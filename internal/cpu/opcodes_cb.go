package cpu

// buildCBTable fills the 256-entry CB-prefixed table. The CB map is fully
// regular: bits 7..6 select the group (shift/BIT/RES/SET), bits 5..3 select
// the shift variant or bit index, and bits 2..0 select the register
// ((HL) at index 6). Rotate/shift/RES/SET on (HL) cost 16 cycles; BIT (HL)
// costs 12 (it never writes back).
func buildCBTable() {
	shiftKinds := [8]shiftOp{opRLC, opRRC, opRL, opRR, opSLA, opSRA, opSWAP, opSRL}
	for op := 0; op < 256; op++ {
		b := byte(op)
		group := (b >> 6) & 3
		y := (b >> 3) & 7
		reg := regFromIndex(b & 7)

		indirect := reg == RegHLInd
		cyc := 8
		if indirect {
			cyc = 16
		}

		var in Instruction
		in.ok = true
		in.Len = 2
		in.Src = reg
		in.Dst = reg

		switch group {
		case 0:
			in.Kind = KindCBShift
			in.ShiftOp = shiftKinds[y]
			in.Cycles = cyc
		case 1:
			in.Kind = KindBIT
			in.Bit = y
			if indirect {
				in.Cycles = 12
			} else {
				in.Cycles = 8
			}
		case 2:
			in.Kind = KindRES
			in.Bit = y
			in.Cycles = cyc
		case 3:
			in.Kind = KindSET
			in.Bit = y
			in.Cycles = cyc
		}
		cbTable[op] = in
	}
}
