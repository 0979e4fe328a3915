package assembler

import (
	"context"
	"strings"

	"github.com/Urethramancer/psasm/isa"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

// Assembler holds the options for the assembly process.
// It carries no per-source state and may be shared between goroutines.
type Assembler struct {
	strict   bool
	operands OperandPolicy
	masks    MaskPolicy
}

// New creates a new Assembler instance.
func New(opts ...Option) *Assembler {
	asm := &Assembler{}
	for _, o := range opts {
		o(asm)
	}
	return asm
}

// Program is one assembled shader.
type Program struct {
	Name string
	// Words always ends with isa.EndToken.
	Words       []uint32
	Diagnostics []Diagnostic
}

// Bytes serialises the words little-endian.
func (p *Program) Bytes() []byte {
	return isa.WordsToBytes(p.Words)
}

// Warnings returns the diagnostics that did not drop a statement.
func (p *Program) Warnings() []Diagnostic {
	return p.filter(SeverityWarning)
}

// Errors returns the diagnostics for statements that were dropped.
func (p *Program) Errors() []Diagnostic {
	return p.filter(SeverityError)
}

func (p *Program) filter(s Severity) (out []Diagnostic) {
	for _, d := range p.Diagnostics {
		if d.Severity == s {
			out = append(out, d)
		}
	}
	return out
}

// Assemble takes PS 1.1 assembly source and returns its word stream.
//
// Failing statements are reported in Program.Diagnostics and contribute no
// words. In strict mode the first diagnostic fails the whole source instead.
func (asm *Assembler) Assemble(ctx context.Context, src string) (*Program, error) {
	tr := tlog.SpanFromContext(ctx)

	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	p := &Program{}
	emitted := false

	for i, line := range lines {
		text := stripComment(line)
		if text == "" {
			continue
		}

		st := ParseStatement(text)
		st.Line = i + 1

		words, warnings, err := asm.AssembleStatement(st)

		if st.Mnemonic == isa.VersionMnemonic && emitted {
			warnings = append(warnings, ErrVersionPosition)
		}

		for _, w := range warnings {
			p.Diagnostics = append(p.Diagnostics, Diagnostic{Line: st.Line, Text: text, Severity: SeverityWarning, Err: w})
			tr.Printw("warning", "line", st.Line, "text", text, "err", w)
		}
		if err != nil {
			p.Diagnostics = append(p.Diagnostics, Diagnostic{Line: st.Line, Text: text, Severity: SeverityError, Err: err})
			tr.Printw("statement dropped", "line", st.Line, "text", text, "err", err)
		}

		if asm.strict && len(p.Diagnostics) != 0 {
			return nil, errors.Wrap(p.Diagnostics[0], "strict")
		}

		if len(words) != 0 {
			emitted = true
		}
		p.Words = append(p.Words, words...)
	}

	p.Words = append(p.Words, isa.EndToken)

	return p, nil
}
