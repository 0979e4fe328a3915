package assembler

import (
	"strings"
	"unicode"
)

// Statement is one non-blank, non-comment source line split into its parts.
type Statement struct {
	Line     int
	Text     string
	CoIssue  bool
	Mnemonic string
	Operands []string
}

// ParseStatement splits a comment-free, trimmed line into a Statement.
// A leading '+' marks co-issue. The mnemonic is lowercased; operands are
// separated by commas and/or whitespace and kept as written.
func ParseStatement(text string) Statement {
	st := Statement{Text: text}

	if rest, ok := strings.CutPrefix(text, "+"); ok {
		st.CoIssue = true
		text = strings.TrimSpace(rest)
	}

	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(parts) == 0 {
		return st
	}

	st.Mnemonic = strings.ToLower(parts[0])
	st.Operands = parts[1:]
	return st
}

// stripComment cuts a physical line at its first ';' and trims it.
// It returns "" for lines that carry no statement.
func stripComment(line string) string {
	if i := strings.IndexByte(line, ';'); i != -1 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "//") {
		return ""
	}
	return line
}
