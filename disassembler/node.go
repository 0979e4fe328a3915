package disassembler

import (
	"strconv"

	"github.com/Urethramancer/psasm/isa"
)

// decodeRegister turns an operand word back into source text.
// Words that cannot be operands, such as opcodes and tokens, report false.
func decodeRegister(w uint32) (string, bool) {
	if w>>20 != 0 {
		return "", false
	}

	mask := isa.Mask(w >> 16 & 0xF)
	switch mask {
	case isa.MaskAll, isa.MaskRGB, isa.MaskA:
	default:
		return "", false
	}

	bank := isa.Bank(w >> 8 & 0xFF)
	if !bank.Valid() {
		return "", false
	}

	return string(bank.Letter()) + strconv.Itoa(int(w&0xFF)) + mask.Suffix(), true
}
