package cpu

// decode.go is the instruction decoder: two dense 256-entry
// tables mapping an opcode byte to a tagged Instruction value. Decoding never
// touches CPU state; it is a pure function of the opcode byte(s). An entry
// with ok=false is an unrecognized opcode, which the CPU treats as fatal.
// The 0xCB prefix has no base-table entry; Step reads the next byte and
// decodes it with DecodeCB.

// Kind tags the family of decoded instruction; the executor switches on it.
type Kind int

const (
	KindInvalid Kind = iota
	KindNOP
	KindHALT
	KindSTOP
	KindDI
	KindEI

	KindLDrr     // LD r,r' (includes (HL) src/dst)
	KindLDrImm8  // LD r,d8
	KindLDr16Imm // LD r16,d16
	KindLDAInd   // LD A,(BC)|(DE)|(HL+)|(HL-)
	KindLDIndA   // LD (BC)|(DE)|(HL+)|(HL-),A
	KindLDAa16   // LD A,(a16)
	KindLDa16A   // LD (a16),A
	KindLDHAn    // LDH A,(a8)
	KindLDHnA    // LDH (a8),A
	KindLDAc     // LD A,(0xFF00+C)
	KindLDcA     // LD (0xFF00+C),A
	KindLDa16SP  // LD (a16),SP
	KindLDSPHL   // LD SP,HL
	KindLDHLSPr8 // LD HL,SP+r8
	KindLDHLImm8 // LD (HL),d8

	KindALUReg // ADD/ADC/SUB/SBC/AND/OR/XOR/CP A,r
	KindALUImm // ... A,d8

	KindINCr
	KindDECr
	KindINCr16
	KindDECr16
	KindADDHLr16
	KindADDSPr8

	KindRLCA
	KindRRCA
	KindRLA
	KindRRA
	KindCBShift // RLC/RRC/RL/RR/SLA/SRA/SRL/SWAP r
	KindBIT
	KindRES
	KindSET

	KindDAA
	KindCPL
	KindCCF
	KindSCF

	KindJP
	KindJPHL
	KindJR
	KindCALL
	KindRET
	KindRETI
	KindRST

	KindPUSH
	KindPOP
)

// Cond is a condition-code selector for conditional control flow.
type Cond int

const (
	CondNone Cond = iota
	CondNZ
	CondZ
	CondNC
	CondC
)

// Instruction is the decoded, tagged form of one opcode. Only the fields
// relevant to Kind are meaningful; the executor knows which to read.
type Instruction struct {
	Kind Kind
	ok   bool

	Dst, Src Reg8
	R16      Reg16
	R16Stack Reg16Stack
	Cond     Cond
	Bit      byte
	ShiftOp  shiftOp
	RST      byte

	// Cycles is the T-cycle cost. CyclesFalse is used instead when a
	// conditional control-flow instruction's condition is not taken.
	Cycles      int
	CyclesFalse int

	Len byte // total instruction length in bytes, including any opcode prefix
}

var baseTable [256]Instruction
var cbTable [256]Instruction

// DecodeBase decodes a non-prefixed opcode byte.
func DecodeBase(op byte) (Instruction, bool) {
	in := baseTable[op]
	return in, in.ok
}

// DecodeCB decodes the byte following a 0xCB prefix byte.
func DecodeCB(op byte) (Instruction, bool) {
	in := cbTable[op]
	return in, in.ok
}

func init() {
	buildBaseTable()
	buildCBTable()
}
