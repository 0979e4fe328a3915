package assembler

// OperandPolicy decides what happens when a statement has fewer operands than its instruction needs.
type OperandPolicy int

const (
	// OperandStrict drops the statement with ErrMissingOperand.
	OperandStrict OperandPolicy = iota
	// OperandTruncate emits the operand words for the tokens present; the instruction shrinks.
	OperandTruncate
	// OperandLegacy emits only the opcode word, matching bytecode from the old shader compiler script.
	OperandLegacy
)

// MaskPolicy decides what happens to an unrecognised write-mask suffix.
type MaskPolicy int

const (
	// MaskFallback writes all components and reports a warning.
	MaskFallback MaskPolicy = iota
	// MaskStrict drops the statement with ErrUnknownMask.
	MaskStrict
)

// Option configures an Assembler.
type Option func(*Assembler)

// WithStrict makes any diagnostic, warnings included, fail the whole buffer.
func WithStrict(strict bool) Option {
	return func(asm *Assembler) { asm.strict = strict }
}

// WithOperandPolicy sets the arity mismatch handling.
func WithOperandPolicy(p OperandPolicy) Option {
	return func(asm *Assembler) { asm.operands = p }
}

// WithMaskPolicy sets the unknown mask suffix handling.
func WithMaskPolicy(p MaskPolicy) Option {
	return func(asm *Assembler) { asm.masks = p }
}
