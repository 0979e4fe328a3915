package main

import (
	"fmt"
	"os"

	"github.com/Urethramancer/psasm/disassembler"
	"github.com/grimdork/climate/arg"
)

func main() {
	opt := arg.New("psdis")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "o", "output", "Write the listing to a file instead of stdout.", "", false, arg.VarString, nil)
	opt.SetPositional("INPUT", "Little-endian PS 1.1 bytecode file.", "", true, arg.VarString)

	err := opt.Parse(os.Args)
	if err != nil {
		if err == arg.ErrNoArgs {
			opt.PrintHelp()
			return
		}

		fmt.Fprintf(os.Stderr, "Error parsing arguments: %v\n", err)
		os.Exit(1)
	}

	inputFile := opt.GetPosString("INPUT")
	outputFile := opt.GetString("output")

	code, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	text, err := disassembler.DisassembleBytes(code)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Disassembly error: %v\n", err)
		os.Exit(1)
	}

	if outputFile == "" {
		fmt.Print(text)
		return
	}

	if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Disassembly written to %s\n", outputFile)
}
