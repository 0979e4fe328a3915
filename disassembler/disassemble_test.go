package disassembler_test

import (
	"context"
	"testing"

	"github.com/Urethramancer/psasm/assembler"
	"github.com/Urethramancer/psasm/disassembler"
	"github.com/Urethramancer/psasm/isa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tlog.app/go/errors"
)

func TestDisassemble(t *testing.T) {
	words := []uint32{
		0xFFFF0101,
		0x00000042, 0x000F0300,
		0x00000043, 0x000F0301, 0x000F0300,
		0x00000005, 0x00070000, 0x000F0100, 0x000F0200,
		0x40000003, 0x00080000, 0x000F0301, 0x00080207,
		0x0000FFFF,
	}

	text, err := disassembler.Disassemble(words)
	require.NoError(t, err)
	assert.Equal(t, `ps.1.1
tex t0
texbem t1, t0
mul r0.rgb, v0, c0
+add r0.a, t1, c7.a
`, text)
}

func TestRoundTrip(t *testing.T) {
	src := `ps.1.1
tex t0
tex t1
texbem t2, t1
mul r0, t0, v0
+add r0.a, r0, c3.a
mad r1.rgb, r0, c1, v1
`
	ctx := context.Background()
	asm := assembler.New()

	p, err := asm.Assemble(ctx, src)
	require.NoError(t, err)

	text, err := disassembler.DisassembleBytes(p.Bytes())
	require.NoError(t, err)
	assert.Equal(t, src, text)

	again, err := asm.Assemble(ctx, text)
	require.NoError(t, err)
	assert.Equal(t, p.Words, again.Words)
}

func TestDecodeTruncated(t *testing.T) {
	asm := assembler.New(assembler.WithOperandPolicy(assembler.OperandTruncate))
	p, err := asm.Assemble(context.Background(), "mad r0, t0\ntex t0")
	require.NoError(t, err)

	insts, err := disassembler.Decode(p.Words)
	require.NoError(t, err)
	require.Len(t, insts, 2)

	assert.True(t, insts[0].Truncated())
	assert.Equal(t, []string{"r0", "t0"}, insts[0].Operands)
	assert.Equal(t, "mad r0, t0 ; truncated", insts[0].String())
	assert.Equal(t, 3, insts[1].Offset)
	assert.False(t, insts[1].Truncated())
}

func TestDecodeLegacyOpcodeOnly(t *testing.T) {
	insts, err := disassembler.Decode([]uint32{0x04, 0x42, 0x000F0300, isa.EndToken})
	require.NoError(t, err)
	require.Len(t, insts, 2)
	assert.Empty(t, insts[0].Operands)
	assert.Equal(t, "mad ; truncated", insts[0].String())
}

func TestDecodeErrors(t *testing.T) {
	_, err := disassembler.Decode([]uint32{0x42, 0x000F0300})
	assert.True(t, errors.Is(err, disassembler.ErrNoEndToken))

	_, err = disassembler.Decode(nil)
	assert.True(t, errors.Is(err, disassembler.ErrNoEndToken))

	_, err = disassembler.Decode([]uint32{0x01, isa.EndToken})
	assert.True(t, errors.Is(err, disassembler.ErrUnknownOpcode))

	_, err = disassembler.Decode([]uint32{isa.EndToken, 0x42})
	assert.True(t, errors.Is(err, disassembler.ErrTrailingWords))

	_, err = disassembler.DisassembleBytes([]byte{1, 2, 3})
	assert.True(t, errors.Is(err, isa.ErrOddLength))

	text, err := disassembler.Disassemble([]uint32{isa.EndToken})
	require.NoError(t, err)
	assert.Equal(t, "", text)
}
