package processor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"codeberg.org/snonux/psdict/internal/cli"
	"codeberg.org/snonux/psdict/internal/dict"
)

// Processor handles the main dictionary conversion logic
type Processor struct {
	flags  *cli.Flags
	stderr *message.Printer
}

// NewProcessor creates a new dictionary processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags:  flags,
		stderr: message.NewPrinter(language.English),
	}
}

// Run converts the dictionary at inputPath and writes the result to the
// configured output file, or to stdout when no output file is set. The
// input is opened before any output is created, so a missing input never
// leaves an empty output file behind.
func (p *Processor) Run(inputPath string) error {
	if p.flags.Verbose {
		fmt.Fprintf(os.Stderr, "Reading from: %s\n", inputPath)
	}

	infile, err := os.Open(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("input file '%s' not found", inputPath)
		}
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer infile.Close()

	outfile := os.Stdout
	if p.flags.Output != "" {
		outfile, err = os.Create(p.flags.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer outfile.Close()
	}

	count, err := dict.Convert(infile, outfile)
	if err != nil {
		return err
	}

	if p.flags.Verbose {
		// %d gets thousands separators from the English printer
		p.stderr.Fprintf(os.Stderr, "Successfully wrote %d entries\n", count)
	}

	return nil
}
