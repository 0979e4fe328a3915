// Package emit writes assembled shaders out as persisted artifacts:
// a C++ header of precompiled bytecode arrays, a raw little-endian binary,
// or a plain hex word listing.
package emit

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Urethramancer/psasm/isa"
	"tlog.app/go/errors"
)

// ErrNoWords is returned for a shader without an end token.
var ErrNoWords = errors.New("empty bytecode")

// Shader is one named bytecode buffer handed over by the assembler.
type Shader struct {
	Name string
	// Source is the file the shader was assembled from, if any.
	Source string
	Words  []uint32
}

// HeaderOptions controls the C++ header layout.
type HeaderOptions struct {
	Guard     string
	Namespace string
	// PerRow is the number of words per line in the array body.
	PerRow int
}

// DefaultHeaderOptions match the header the engine includes.
var DefaultHeaderOptions = HeaderOptions{
	Guard:     "D3DX_PRECOMPILED_SHADERS_H",
	Namespace: "PrecompiledShaders",
	PerRow:    4,
}

// WriteHeader writes all shaders into one C++ header.
func WriteHeader(w io.Writer, shaders []Shader, opts HeaderOptions) error {
	if opts.PerRow <= 0 {
		opts.PerRow = DefaultHeaderOptions.PerRow
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `/*
 * Precompiled D3D8 Pixel Shader 1.1 Bytecode
 *
 * Generated by psasm from .psh source files.
 *
 * Do not edit this file manually - regenerate from source .psh files.
 */

#ifndef %[1]s
#define %[1]s

#include <windows.h>

namespace %[2]s {

`, opts.Guard, opts.Namespace)

	for _, s := range shaders {
		if len(s.Words) == 0 {
			return errors.Wrap(ErrNoWords, "%v", s.Name)
		}

		name := Identifier(s.Name)

		if s.Source != "" {
			fmt.Fprintf(bw, "// %s - from %s\n", name, filepath.Base(s.Source))
		} else {
			fmt.Fprintf(bw, "// %s\n", name)
		}
		fmt.Fprintf(bw, "constexpr DWORD %s_bytecode[] = {\n", name)

		for i, word := range s.Words {
			if i%opts.PerRow == 0 {
				bw.WriteString("    ")
			}
			fmt.Fprintf(bw, "0x%08X,", word)
			if i%opts.PerRow == opts.PerRow-1 || i == len(s.Words)-1 {
				bw.WriteByte('\n')
			} else {
				bw.WriteByte(' ')
			}
		}

		fmt.Fprintf(bw, "};\n\nconstexpr size_t %[1]s_size = sizeof(%[1]s_bytecode);\n\n", name)
	}

	fmt.Fprintf(bw, "} // namespace %s\n\n#endif // %s\n", opts.Namespace, opts.Guard)

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "flush")
	}

	return nil
}

// WriteBinary writes the words little-endian, the layout the runtime loads.
func WriteBinary(w io.Writer, s Shader) error {
	if len(s.Words) == 0 {
		return errors.Wrap(ErrNoWords, "%v", s.Name)
	}

	if _, err := w.Write(isa.WordsToBytes(s.Words)); err != nil {
		return errors.Wrap(err, "write %v", s.Name)
	}

	return nil
}

// WriteHex writes one line per shader: its name followed by the words in hex.
func WriteHex(w io.Writer, shaders []Shader) error {
	bw := bufio.NewWriter(w)

	for _, s := range shaders {
		bw.WriteString(s.Name)
		bw.WriteByte(':')
		for _, word := range s.Words {
			fmt.Fprintf(bw, " %08x", word)
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "flush")
	}

	return nil
}

// Identifier turns a shader name into a valid C identifier.
func Identifier(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
