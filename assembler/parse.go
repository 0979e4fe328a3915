package assembler

import (
	"strconv"
	"strings"

	"github.com/Urethramancer/psasm/isa"
	"tlog.app/go/errors"
)

// Register is a parsed register operand.
type Register struct {
	Bank  isa.Bank
	Index int
	Mask  isa.Mask
}

// String formats the register the way it is written in source.
func (r Register) String() string {
	return string(r.Bank.Letter()) + strconv.Itoa(r.Index) + r.Mask.Suffix()
}

// ParseRegister converts a token like "r0", "c7.a" or "t2.rgb" into a Register.
//
// An unknown mask suffix returns the register with isa.MaskAll together with
// ErrUnknownMask; the caller decides whether that is fatal.
func ParseRegister(token string) (Register, error) {
	s := strings.TrimSpace(token)

	reg := Register{Mask: isa.MaskAll}
	var maskErr error

	if name, suffix, ok := strings.Cut(s, "."); ok {
		if strings.Contains(suffix, ".") {
			return Register{}, errors.Wrap(ErrInvalidRegister, "%q: more than one mask separator", token)
		}
		if m, ok := isa.MaskFromSuffix(strings.ToLower(suffix)); ok {
			reg.Mask = m
		} else {
			maskErr = errors.Wrap(ErrUnknownMask, "%q: suffix %q", token, suffix)
		}
		s = name
	}

	if s == "" {
		return Register{}, errors.Wrap(ErrInvalidRegister, "%q: empty register name", token)
	}

	bank, ok := isa.BankFromLetter(s[0])
	if !ok {
		return Register{}, errors.Wrap(ErrInvalidRegister, "%q: unknown bank %q", token, s[0])
	}
	reg.Bank = bank

	digits := s[1:]
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return Register{}, errors.Wrap(ErrInvalidRegister, "%q: bad index %q", token, digits)
	}

	idx, err := strconv.Atoi(digits)
	if err != nil {
		return Register{}, errors.Wrap(ErrInvalidRegister, "%q: bad index %q", token, digits)
	}
	reg.Index = idx

	return reg, maskErr
}
