package isa

import "fmt"

// Bank selects a register file.
type Bank uint8

// Register banks, in encoding order.
const (
	// BankTemporary is r0-r7.
	BankTemporary Bank = iota
	// BankInput is v0-v1, the interpolated colours.
	BankInput
	// BankConstant is c0-c7.
	BankConstant
	// BankTexture is t0-t3.
	BankTexture
)

// BankFromLetter maps a register prefix letter to its bank.
// Upper-case letters are accepted.
func BankFromLetter(c byte) (Bank, bool) {
	switch c {
	case 'r', 'R':
		return BankTemporary, true
	case 'v', 'V':
		return BankInput, true
	case 'c', 'C':
		return BankConstant, true
	case 't', 'T':
		return BankTexture, true
	}
	return 0, false
}

// Letter returns the source prefix for the bank, or 0 if the bank is invalid.
func (b Bank) Letter() byte {
	switch b {
	case BankTemporary:
		return 'r'
	case BankInput:
		return 'v'
	case BankConstant:
		return 'c'
	case BankTexture:
		return 't'
	}
	return 0
}

// Valid reports whether b is one of the four banks.
func (b Bank) Valid() bool {
	return b <= BankTexture
}

func (b Bank) String() string {
	switch b {
	case BankTemporary:
		return "temporary"
	case BankInput:
		return "input"
	case BankConstant:
		return "constant"
	case BankTexture:
		return "texture"
	}
	return fmt.Sprintf("bank(%d)", uint8(b))
}

// Mask is a 4-bit component write mask.
type Mask uint8

// Write masks.
const (
	MaskRGB Mask = 0x7
	MaskA   Mask = 0x8
	MaskAll Mask = 0xF
)

// MaskFromSuffix maps the text after a register's '.' to a mask.
func MaskFromSuffix(s string) (Mask, bool) {
	switch s {
	case "rgb", "xyz":
		return MaskRGB, true
	case "a", "w":
		return MaskA, true
	case "rgba", "xyzw":
		return MaskAll, true
	}
	return 0, false
}

// Suffix returns the source suffix for the mask, including the dot.
// MaskAll has no suffix. Masks without a source spelling return "".
func (m Mask) Suffix() string {
	switch m {
	case MaskRGB:
		return ".rgb"
	case MaskA:
		return ".a"
	}
	return ""
}
