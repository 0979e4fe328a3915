package assembler_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/Urethramancer/psasm/assembler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tlog.app/go/errors"
)

func TestAssembleAll(t *testing.T) {
	var sources []assembler.Source
	for i := range 32 {
		sources = append(sources, assembler.Source{
			Name: fmt.Sprintf("shader%d", i),
			Text: fmt.Sprintf("ps.1.1\ntex t%d\nmul r0, t%d, c%d", i%4, i%4, i),
		})
	}

	asm := assembler.New()
	progs, err := asm.AssembleAll(context.Background(), sources)
	require.NoError(t, err)
	require.Len(t, progs, len(sources))

	for i, p := range progs {
		assert.Equal(t, sources[i].Name, p.Name)

		single, err := asm.Assemble(context.Background(), sources[i].Text)
		require.NoError(t, err)
		assert.Equal(t, single.Words, p.Words, p.Name)
	}
}

func TestAssembleAllStrictFailure(t *testing.T) {
	sources := []assembler.Source{
		{Name: "good", Text: "tex t0"},
		{Name: "bad", Text: "tex q0"},
	}

	_, err := assembler.New(assembler.WithStrict(true)).AssembleAll(context.Background(), sources)
	require.Error(t, err)
	assert.True(t, errors.Is(err, assembler.ErrInvalidRegister))
	assert.Contains(t, err.Error(), "bad")
}

func TestAssembleAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := assembler.New().AssembleAll(ctx, []assembler.Source{{Name: "a", Text: "tex t0"}})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestAssembleFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "water_shader1.psh")
	require.NoError(t, os.WriteFile(name, []byte("ps.1.1\ntex t0\n"), 0o644))

	p, err := assembler.New().AssembleFile(context.Background(), name)
	require.NoError(t, err)
	assert.Equal(t, "water_shader1", p.Name)
	assert.Equal(t, []uint32{0xFFFF0101, 0x42, 0x000F0300, 0xFFFF}, p.Words)

	_, err = assembler.New().AssembleFile(context.Background(), filepath.Join(dir, "missing.psh"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestStem(t *testing.T) {
	assert.Equal(t, "water", assembler.Stem("shaders/water.psh"))
	assert.Equal(t, "water.v2", assembler.Stem("water.v2.psh"))
	assert.Equal(t, "noext", assembler.Stem("noext"))
}
