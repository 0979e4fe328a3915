package assembler

import (
	"github.com/Urethramancer/psasm/isa"
	"tlog.app/go/errors"
)

// MaxRegisterIndex is the largest index that fits the low byte of an operand word.
const MaxRegisterIndex = 0xFF

// EncodeRegister packs a register into its operand word:
// mask<<16 | bank<<8 | index.
func EncodeRegister(r Register) (uint32, error) {
	if !r.Bank.Valid() {
		return 0, errors.Wrap(ErrInvalidRegister, "bank %d", r.Bank)
	}
	if r.Mask > isa.MaskAll {
		return 0, errors.Wrap(ErrInvalidRegister, "mask %#x", uint8(r.Mask))
	}
	if r.Index < 0 || r.Index > MaxRegisterIndex {
		return 0, errors.Wrap(ErrRegisterRange, "%c%d", r.Bank.Letter(), r.Index)
	}

	return uint32(r.Mask)<<16 | uint32(r.Bank)<<8 | uint32(r.Index), nil
}
