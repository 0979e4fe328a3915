package disassembler

import (
	"strings"

	"github.com/Urethramancer/psasm/isa"
	"tlog.app/go/errors"
)

// Decoding failures.
var (
	ErrUnknownOpcode = errors.New("unknown opcode")
	ErrNoEndToken    = errors.New("missing end token")
	ErrTrailingWords = errors.New("words after end token")
)

// Instruction represents a single decoded statement at a word offset.
type Instruction struct {
	Offset   int
	CoIssue  bool
	Mnemonic string
	Operands []string
	// Arity is the operand count the instruction expects; it is larger than
	// len(Operands) when the stream was assembled with truncation.
	Arity int
	Words []uint32
}

// Truncated reports whether operand words are missing.
func (in Instruction) Truncated() bool {
	return len(in.Operands) < in.Arity
}

// String formats the instruction as assembler source.
func (in Instruction) String() string {
	var b strings.Builder
	if in.CoIssue {
		b.WriteByte('+')
	}
	b.WriteString(in.Mnemonic)
	if len(in.Operands) != 0 {
		b.WriteByte(' ')
		b.WriteString(strings.Join(in.Operands, ", "))
	}
	if in.Truncated() {
		b.WriteString(" ; truncated")
	}
	return b.String()
}

// Decode splits a word stream into statements. The end token is consumed
// but not returned.
func Decode(words []uint32) ([]Instruction, error) {
	var out []Instruction

	for pc := 0; pc < len(words); {
		w := words[pc]

		switch w {
		case isa.EndToken:
			if pc != len(words)-1 {
				return out, errors.Wrap(ErrTrailingWords, "%d after offset %d", len(words)-pc-1, pc)
			}
			return out, nil
		case isa.VersionPS11:
			out = append(out, Instruction{Offset: pc, Mnemonic: isa.VersionMnemonic, Words: words[pc : pc+1]})
			pc++
			continue
		}

		in, ok := isa.LookupOpcode(isa.Opcode(w &^ isa.CoIssueBit))
		if !ok {
			return out, errors.Wrap(ErrUnknownOpcode, "%#08x at offset %d", w, pc)
		}

		inst := Instruction{
			Offset:   pc,
			CoIssue:  w&isa.CoIssueBit != 0,
			Mnemonic: in.Mnemonic,
			Arity:    in.Arity,
		}

		n := 1
		for n <= in.Arity && pc+n < len(words) {
			reg, ok := decodeRegister(words[pc+n])
			if !ok {
				break
			}
			inst.Operands = append(inst.Operands, reg)
			n++
		}

		inst.Words = words[pc : pc+n]
		out = append(out, inst)
		pc += n
	}

	return out, ErrNoEndToken
}

// Disassemble takes a word stream and returns it as assembly source,
// one statement per line.
func Disassemble(words []uint32) (string, error) {
	insts, err := Decode(words)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	for _, in := range insts {
		result.WriteString(in.String())
		result.WriteByte('\n')
	}

	return result.String(), nil
}

// DisassembleBytes decodes a little-endian byte stream.
func DisassembleBytes(code []byte) (string, error) {
	words, err := isa.BytesToWords(code)
	if err != nil {
		return "", err
	}

	return Disassemble(words)
}
