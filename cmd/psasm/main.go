package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Urethramancer/psasm/assembler"
	"github.com/Urethramancer/psasm/emit"
	"github.com/grimdork/climate/arg"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

func main() {
	opt := arg.New("psasm")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "o", "output", "Output file for header and binary formats.", "PrecompiledShaders.h", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "f", "format", "Output format: header, binary or hex.", "header", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "s", "strict", "Fail on the first warning or dropped statement.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "c", "compat", "Short operand lists: error, truncate or legacy.", "error", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "m", "strict-masks", "Reject unknown write-mask suffixes instead of writing all components.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Log every assembled shader.", false, false, arg.VarBool, nil)
	opt.SetPositional("SHADER", "PS 1.1 assembly files (.psh).", "", true, arg.VarStringSlice)

	err := opt.Parse(os.Args)
	if err != nil {
		if err == arg.ErrNoArgs {
			opt.PrintHelp()
			return
		}

		fmt.Fprintf(os.Stderr, "Error parsing arguments: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	cfg := config{
		files:       opt.GetPosStringSlice("SHADER"),
		output:      opt.GetString("output"),
		format:      opt.GetString("format"),
		strict:      opt.GetBool("strict"),
		compat:      opt.GetString("compat"),
		strictMasks: opt.GetBool("strict-masks"),
		verbose:     opt.GetBool("verbose"),
	}

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	files       []string
	output      string
	format      string
	strict      bool
	compat      string
	strictMasks bool
	verbose     bool
}

func (c config) options() ([]assembler.Option, error) {
	opts := []assembler.Option{assembler.WithStrict(c.strict)}

	switch c.compat {
	case "", "error":
		opts = append(opts, assembler.WithOperandPolicy(assembler.OperandStrict))
	case "truncate":
		opts = append(opts, assembler.WithOperandPolicy(assembler.OperandTruncate))
	case "legacy":
		opts = append(opts, assembler.WithOperandPolicy(assembler.OperandLegacy))
	default:
		return nil, errors.New("unknown compat mode: %v", c.compat)
	}

	if c.strictMasks {
		opts = append(opts, assembler.WithMaskPolicy(assembler.MaskStrict))
	}

	return opts, nil
}

func run(ctx context.Context, c config) error {
	opts, err := c.options()
	if err != nil {
		return err
	}

	switch c.format {
	case "header", "hex":
	case "binary":
		if len(c.files) != 1 {
			return errors.New("binary output takes exactly one shader, got %d", len(c.files))
		}
	default:
		return errors.New("unknown format: %v", c.format)
	}

	// Check every input before writing anything.
	sources := make([]assembler.Source, 0, len(c.files))
	for _, name := range c.files {
		text, err := os.ReadFile(name)
		if err != nil {
			return errors.Wrap(err, "shader file")
		}

		sources = append(sources, assembler.Source{Name: assembler.Stem(name), Text: string(text)})
	}

	asm := assembler.New(opts...)

	progs, err := asm.AssembleAll(ctx, sources)
	if err != nil {
		return errors.Wrap(err, "assemble")
	}

	shaders := make([]emit.Shader, len(progs))
	for i, p := range progs {
		shaders[i] = emit.Shader{Name: p.Name, Source: c.files[i], Words: p.Words}

		if c.verbose {
			tlog.Printw("assembled", "name", p.Name, "file", c.files[i], "words", len(p.Words), "warnings", len(p.Warnings()), "errors", len(p.Errors()))
		}
	}

	switch c.format {
	case "hex":
		return emit.WriteHex(os.Stdout, shaders)
	case "binary":
		return writeFile(c.output, func(w io.Writer) error {
			return emit.WriteBinary(w, shaders[0])
		})
	}

	err = writeFile(c.output, func(w io.Writer) error {
		return emit.WriteHeader(w, shaders, emit.DefaultHeaderOptions)
	})
	if err != nil {
		return err
	}

	tlog.Printw("generated", "output", c.output, "shaders", len(shaders))

	return nil
}

func writeFile(name string, write func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "create output")
	}

	defer func() {
		if e := f.Close(); err == nil && e != nil {
			err = errors.Wrap(e, "close output")
		}
	}()

	return write(f)
}
