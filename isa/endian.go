package isa

import (
	"encoding/binary"

	"tlog.app/go/errors"
)

// ErrOddLength is returned when a byte stream is not a whole number of words.
var ErrOddLength = errors.New("byte length is not a multiple of 4")

// WordsToBytes converts a slice of 32-bit words to a little-endian byte slice.
func WordsToBytes(words []uint32) []byte {
	out := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}

// BytesToWords interprets bytes as little-endian 32-bit words.
func BytesToWords(b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, errors.Wrap(ErrOddLength, "%d bytes", len(b))
	}
	out := make([]uint32, len(b)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return out, nil
}
