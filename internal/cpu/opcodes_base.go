package cpu

// buildBaseTable fills the 256-entry non-prefixed opcode table. Regular
// opcode blocks (LD r,r'; ALU A,r; 8/16-bit INC/DEC; ADD HL,r16; the
// conditional control-flow families; PUSH/POP; RST) are generated from the
// opcode bit fields exactly as the hardware decodes them; irregular single
// opcodes are entered explicitly.
func buildBaseTable() {
	r16 := [4]Reg16{Reg16BC, Reg16DE, Reg16HL, Reg16SP}
	r16s := [4]Reg16Stack{Reg16StackBC, Reg16StackDE, Reg16StackHL, Reg16StackAF}
	conds := [4]Cond{CondNZ, CondZ, CondNC, CondC}

	set := func(op byte, in Instruction) {
		in.ok = true
		if in.Len == 0 {
			in.Len = 1
		}
		baseTable[op] = in
	}

	// LD r,r' (0x40-0x7F), including LD r,(HL) and LD (HL),r; 0x76 is HALT.
	for op := 0x40; op <= 0x7F; op++ {
		b := byte(op)
		if b == 0x76 {
			set(b, Instruction{Kind: KindHALT, Cycles: 4})
			continue
		}
		dst := regFromIndex((b >> 3) & 7)
		src := regFromIndex(b & 7)
		cyc := 4
		if dst == RegHLInd || src == RegHLInd {
			cyc = 8
		}
		set(b, Instruction{Kind: KindLDrr, Dst: dst, Src: src, Cycles: cyc})
	}

	// ALU A,r (0x80-0xBF): ADD,ADC,SUB,SBC,AND,XOR,OR,CP, each over 8 regs.
	aluKinds := []Kind{KindALUReg, KindALUReg, KindALUReg, KindALUReg, KindALUReg, KindALUReg, KindALUReg, KindALUReg}
	_ = aluKinds
	for op := 0x80; op <= 0xBF; op++ {
		b := byte(op)
		src := regFromIndex(b & 7)
		cyc := 4
		if src == RegHLInd {
			cyc = 8
		}
		// bits 5..3 select the operation; Dst always A. We encode the ALU
		// operation itself via Bit (reused as an opcode selector 0..7:
		// ADD,ADC,SUB,SBC,AND,XOR,OR,CP) to avoid a tenth Kind per operator.
		aluOp := (b >> 3) & 7
		set(b, Instruction{Kind: KindALUReg, Src: src, Bit: aluOp, Cycles: cyc})
	}

	// ALU A,d8 (row 0xC6,CE,D6,DE,E6,EE,F6,FE): same aluOp encoding.
	aluImmOps := []byte{0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE}
	for i, op := range aluImmOps {
		set(op, Instruction{Kind: KindALUImm, Bit: byte(i), Cycles: 8, Len: 2})
	}

	// 8-bit INC/DEC for B,D,H,(HL),C,E,L,A at the canonical opcodes.
	incOps := []byte{0x04, 0x14, 0x24, 0x34, 0x0C, 0x1C, 0x2C, 0x3C}
	incRegs := []Reg8{RegB, RegD, RegH, RegHLInd, RegC, RegE, RegL, RegA}
	for i, op := range incOps {
		reg := incRegs[i]
		cyc := 4
		if reg == RegHLInd {
			cyc = 12
		}
		set(op, Instruction{Kind: KindINCr, Dst: reg, Cycles: cyc})
	}
	decOps := []byte{0x05, 0x15, 0x25, 0x35, 0x0D, 0x1D, 0x2D, 0x3D}
	for i, op := range decOps {
		reg := incRegs[i]
		cyc := 4
		if reg == RegHLInd {
			cyc = 12
		}
		set(op, Instruction{Kind: KindDECr, Dst: reg, Cycles: cyc})
	}

	// LD r,d8 (row 0x06,0E,16,1E,26,2E,36,3E).
	ldImmOps := []byte{0x06, 0x16, 0x26, 0x36, 0x0E, 0x1E, 0x2E, 0x3E}
	for i, op := range ldImmOps {
		reg := incRegs[i]
		if reg == RegHLInd {
			set(op, Instruction{Kind: KindLDHLImm8, Cycles: 12, Len: 2})
			continue
		}
		set(op, Instruction{Kind: KindLDrImm8, Dst: reg, Cycles: 8, Len: 2})
	}

	// 16-bit LD r16,d16 / INC r16 / DEC r16 / ADD HL,r16.
	for i := 0; i < 4; i++ {
		base := byte(i * 0x10)
		set(0x01+base, Instruction{Kind: KindLDr16Imm, R16: r16[i], Cycles: 12, Len: 3})
		set(0x03+base, Instruction{Kind: KindINCr16, R16: r16[i], Cycles: 8})
		set(0x0B+base, Instruction{Kind: KindDECr16, R16: r16[i], Cycles: 8})
		set(0x09+base, Instruction{Kind: KindADDHLr16, R16: r16[i], Cycles: 8})
	}

	// PUSH/POP over BC,DE,HL,AF.
	pushOps := []byte{0xC5, 0xD5, 0xE5, 0xF5}
	popOps := []byte{0xC1, 0xD1, 0xE1, 0xF1}
	for i := 0; i < 4; i++ {
		set(pushOps[i], Instruction{Kind: KindPUSH, R16Stack: r16s[i], Cycles: 16})
		set(popOps[i], Instruction{Kind: KindPOP, R16Stack: r16s[i], Cycles: 12})
	}

	// RST vectors.
	rstOps := []byte{0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF}
	for i, op := range rstOps {
		set(op, Instruction{Kind: KindRST, RST: byte(i * 8), Cycles: 16})
	}

	// Conditional JP/CALL/RET.
	jpCondOps := []byte{0xC2, 0xCA, 0xD2, 0xDA}
	callCondOps := []byte{0xC4, 0xCC, 0xD4, 0xDC}
	retCondOps := []byte{0xC0, 0xC8, 0xD0, 0xD8}
	for i := 0; i < 4; i++ {
		set(jpCondOps[i], Instruction{Kind: KindJP, Cond: conds[i], Cycles: 16, CyclesFalse: 12, Len: 3})
		set(callCondOps[i], Instruction{Kind: KindCALL, Cond: conds[i], Cycles: 24, CyclesFalse: 12, Len: 3})
		set(retCondOps[i], Instruction{Kind: KindRET, Cond: conds[i], Cycles: 20, CyclesFalse: 8})
	}
	// JR cc,r8
	jrCondOps := []byte{0x20, 0x28, 0x30, 0x38}
	for i := 0; i < 4; i++ {
		set(jrCondOps[i], Instruction{Kind: KindJR, Cond: conds[i], Cycles: 12, CyclesFalse: 8, Len: 2})
	}

	// Irregular singles.
	set(0x00, Instruction{Kind: KindNOP, Cycles: 4})
	set(0x10, Instruction{Kind: KindSTOP, Cycles: 4, Len: 2})
	set(0x76, Instruction{Kind: KindHALT, Cycles: 4})

	set(0x02, Instruction{Kind: KindLDIndA, R16: Reg16BC, Cycles: 8})
	set(0x12, Instruction{Kind: KindLDIndA, R16: Reg16DE, Cycles: 8})
	set(0x0A, Instruction{Kind: KindLDAInd, R16: Reg16BC, Cycles: 8})
	set(0x1A, Instruction{Kind: KindLDAInd, R16: Reg16DE, Cycles: 8})
	set(0x22, Instruction{Kind: KindLDIndA, R16: Reg16HL, Bit: 1, Cycles: 8}) // Bit=1: post-increment
	set(0x32, Instruction{Kind: KindLDIndA, R16: Reg16HL, Bit: 2, Cycles: 8}) // Bit=2: post-decrement
	set(0x2A, Instruction{Kind: KindLDAInd, R16: Reg16HL, Bit: 1, Cycles: 8})
	set(0x3A, Instruction{Kind: KindLDAInd, R16: Reg16HL, Bit: 2, Cycles: 8})

	set(0x08, Instruction{Kind: KindLDa16SP, Cycles: 20, Len: 3})
	set(0xEA, Instruction{Kind: KindLDa16A, Cycles: 16, Len: 3})
	set(0xFA, Instruction{Kind: KindLDAa16, Cycles: 16, Len: 3})
	set(0xE0, Instruction{Kind: KindLDHnA, Cycles: 12, Len: 2})
	set(0xF0, Instruction{Kind: KindLDHAn, Cycles: 12, Len: 2})
	set(0xE2, Instruction{Kind: KindLDcA, Cycles: 8})
	set(0xF2, Instruction{Kind: KindLDAc, Cycles: 8})
	set(0xF9, Instruction{Kind: KindLDSPHL, Cycles: 8})
	set(0xF8, Instruction{Kind: KindLDHLSPr8, Cycles: 12, Len: 2})
	set(0xE8, Instruction{Kind: KindADDSPr8, Cycles: 16, Len: 2})

	set(0x07, Instruction{Kind: KindRLCA, Cycles: 4})
	set(0x0F, Instruction{Kind: KindRRCA, Cycles: 4})
	set(0x17, Instruction{Kind: KindRLA, Cycles: 4})
	set(0x1F, Instruction{Kind: KindRRA, Cycles: 4})
	set(0x27, Instruction{Kind: KindDAA, Cycles: 4})
	set(0x2F, Instruction{Kind: KindCPL, Cycles: 4})
	set(0x37, Instruction{Kind: KindSCF, Cycles: 4})
	set(0x3F, Instruction{Kind: KindCCF, Cycles: 4})

	set(0xC3, Instruction{Kind: KindJP, Cond: CondNone, Cycles: 16, Len: 3})
	set(0xE9, Instruction{Kind: KindJPHL, Cycles: 4})
	set(0x18, Instruction{Kind: KindJR, Cond: CondNone, Cycles: 12, Len: 2})
	set(0xCD, Instruction{Kind: KindCALL, Cond: CondNone, Cycles: 24, Len: 3})
	set(0xC9, Instruction{Kind: KindRET, Cond: CondNone, Cycles: 16})
	set(0xD9, Instruction{Kind: KindRETI, Cycles: 16})

	set(0xF3, Instruction{Kind: KindDI, Cycles: 4})
	set(0xFB, Instruction{Kind: KindEI, Cycles: 4})
}
