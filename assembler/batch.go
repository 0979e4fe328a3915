package assembler

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

// Source is a named shader source text.
type Source struct {
	Name string
	Text string
}

// AssembleFile reads a .psh file and assembles it.
// The program is named after the file stem.
func (asm *Assembler) AssembleFile(ctx context.Context, name string) (*Program, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	p, err := asm.Assemble(ctx, string(text))
	if err != nil {
		return nil, errors.Wrap(err, "%v", name)
	}

	p.Name = Stem(name)

	return p, nil
}

// AssembleAll assembles independent sources in parallel.
// Results are in the same order as sources.
func (asm *Assembler) AssembleAll(ctx context.Context, sources []Source) ([]*Program, error) {
	out := make([]*Program, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			p, err := asm.Assemble(ctx, src.Text)
			if err != nil {
				return errors.Wrap(err, "%v", src.Name)
			}

			p.Name = src.Name
			out[i] = p

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Stem returns the file name without directory and extension.
func Stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
