// Package isa holds the static tables of the PS 1.1 pixel-shader word format:
// register banks, write masks, opcodes and the fixed version and end tokens.
//
// All tables are immutable and safe to share between goroutines.
package isa
