package assembler

import (
	"fmt"

	"tlog.app/go/errors"
)

// Statement-level failure kinds. Diagnostics wrap one of these,
// so errors.Is can classify them.
var (
	ErrInvalidRegister = errors.New("invalid register")
	ErrRegisterRange   = errors.New("register index out of range")
	ErrUnknownMask     = errors.New("unknown write mask")
	ErrUnknownMnemonic = errors.New("unknown mnemonic")
	ErrMissingOperand  = errors.New("missing operand")
	ErrExtraOperand    = errors.New("extra operand ignored")
	ErrVersionPosition = errors.New("version token is not the first statement")
)

// Severity of a Diagnostic.
type Severity int

const (
	// SeverityWarning means the statement was kept or dropped without failing the buffer.
	SeverityWarning Severity = iota
	// SeverityError means the statement contributed no words.
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is a warning or statement error tied to a source line.
type Diagnostic struct {
	Line     int
	Text     string
	Severity Severity
	Err      error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("line %d: %v: %v (%q)", d.Line, d.Severity, d.Err, d.Text)
}

func (d Diagnostic) Unwrap() error { return d.Err }
