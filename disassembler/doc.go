// Package disassembler turns PS 1.1 word streams back into assembly source.
package disassembler
