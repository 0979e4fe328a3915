package isa

// Opcode is the base opcode number of an instruction, before the co-issue bit.
type Opcode uint32

// Opcodes for the supported PS 1.1 instructions.
const (
	OPADD    Opcode = 0x03 // ADD dst, src1, src2
	OPMAD    Opcode = 0x04 // MAD dst, src1, src2, src3
	OPMUL    Opcode = 0x05 // MUL dst, src1, src2
	OPTEX    Opcode = 0x42 // TEX dst
	OPTEXBEM Opcode = 0x43 // TEXBEM dst, src
)

// Fixed tokens in the word stream.
const (
	// VersionPS11 is the ps.1.1 version token.
	VersionPS11 uint32 = 0xFFFF0101
	// EndToken terminates every assembled buffer.
	EndToken uint32 = 0x0000FFFF
	// CoIssueBit marks an instruction for same-cycle execution with its predecessor.
	CoIssueBit uint32 = 0x40000000
)

// VersionMnemonic is the pseudo-instruction that emits VersionPS11.
const VersionMnemonic = "ps.1.1"

// Instruction describes one entry of the opcode table.
type Instruction struct {
	Mnemonic string
	Opcode   Opcode
	// Arity is the number of register operands, destination included.
	Arity int
}

var instructions = [...]Instruction{
	{"tex", OPTEX, 1},
	{"texbem", OPTEXBEM, 2},
	{"mul", OPMUL, 3},
	{"add", OPADD, 3},
	{"mad", OPMAD, 4},
}

// Lookup finds an instruction by its lowercase mnemonic.
func Lookup(mnemonic string) (Instruction, bool) {
	switch mnemonic {
	case "tex":
		return instructions[0], true
	case "texbem":
		return instructions[1], true
	case "mul":
		return instructions[2], true
	case "add":
		return instructions[3], true
	case "mad":
		return instructions[4], true
	}
	return Instruction{}, false
}

// LookupOpcode finds an instruction by its base opcode.
func LookupOpcode(op Opcode) (Instruction, bool) {
	for _, in := range instructions {
		if in.Opcode == op {
			return in, true
		}
	}
	return Instruction{}, false
}

// Instructions returns a copy of the opcode table in declaration order.
func Instructions() []Instruction {
	out := make([]Instruction, len(instructions))
	copy(out, instructions[:])
	return out
}
