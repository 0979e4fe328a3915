// Package assembler translates PS 1.1 pixel-shader assembly into its 32-bit
// word stream.
//
// Each source line holds at most one statement. Everything after ';' is a
// comment, as is a line starting with "//". A statement is either the version
// pseudo-instruction ps.1.1 or one of tex, texbem, mul, add and mad, with a
// leading '+' for co-issue:
//
//	ps.1.1
//	tex t0
//	mul r0.rgb, t0, v0
//	+add r0.a, t0, c0
//
// The stream always ends with isa.EndToken. Statements that fail are
// reported as Diagnostics and contribute no words.
package assembler
