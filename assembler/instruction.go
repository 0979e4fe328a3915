package assembler

import (
	"github.com/Urethramancer/psasm/isa"
	"tlog.app/go/errors"
)

// AssembleStatement translates one statement into its words: the opcode word
// followed by one word per operand, destination first.
//
// Warnings do not stop the statement from emitting. A non-nil error means the
// statement contributes no words. An unknown mnemonic yields no words and an
// ErrUnknownMnemonic warning.
func (asm *Assembler) AssembleStatement(st Statement) (words []uint32, warnings []error, err error) {
	if st.Mnemonic == isa.VersionMnemonic {
		return []uint32{isa.VersionPS11}, nil, nil
	}

	in, ok := isa.Lookup(st.Mnemonic)
	if !ok {
		return nil, []error{errors.Wrap(ErrUnknownMnemonic, "%q", st.Mnemonic)}, nil
	}

	opword := uint32(in.Opcode)
	if st.CoIssue {
		opword |= isa.CoIssueBit
	}

	operands := st.Operands
	if len(operands) > in.Arity {
		warnings = append(warnings, errors.Wrap(ErrExtraOperand, "%s takes %d, got %d", in.Mnemonic, in.Arity, len(operands)))
		operands = operands[:in.Arity]
	}

	if len(operands) < in.Arity {
		switch asm.operands {
		case OperandTruncate:
		case OperandLegacy:
			return []uint32{opword}, warnings, nil
		default:
			return nil, warnings, errors.Wrap(ErrMissingOperand, "%s takes %d, got %d", in.Mnemonic, in.Arity, len(operands))
		}
	}

	words = make([]uint32, 0, 1+len(operands))
	words = append(words, opword)

	for _, tok := range operands {
		w, warn, err := asm.encodeOperand(tok)
		if err != nil {
			return nil, warnings, err
		}
		if warn != nil {
			warnings = append(warnings, warn)
		}
		words = append(words, w)
	}

	return words, warnings, nil
}

func (asm *Assembler) encodeOperand(tok string) (word uint32, warning, err error) {
	reg, err := ParseRegister(tok)
	if errors.Is(err, ErrUnknownMask) && asm.masks == MaskFallback {
		warning, err = err, nil
	}
	if err != nil {
		return 0, nil, err
	}

	word, err = EncodeRegister(reg)
	if err != nil {
		return 0, nil, err
	}

	return word, warning, nil
}
