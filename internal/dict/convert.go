package dict

import (
	"bufio"
	"fmt"
	"io"
)

// Convert reads CMUdict entries from r and writes the PocketSphinx form to w.
// It returns the number of entries written.
//
// The first pronunciation of a word is written under the bare word; further
// unique pronunciations get variant markers (2), (3), and so on. Words are
// written in sorted order. Entries whose pronunciations collapse to an
// earlier one of the same word after stress removal are dropped.
func Convert(r io.Reader, w io.Writer) (int, error) {
	d := NewDictionary()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if entry, ok := ParseLine(scanner.Text()); ok {
			d.Add(entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}

	out := bufio.NewWriter(w)
	written := 0
	for _, word := range d.Words() {
		for i, pron := range d.Pronunciations(word) {
			variant := word
			if i > 0 {
				variant = fmt.Sprintf("%s(%d)", word, i+1)
			}
			if _, err := fmt.Fprintf(out, "%s %s\n", variant, pron); err != nil {
				return written, fmt.Errorf("failed to write output: %w", err)
			}
			written++
		}
	}
	if err := out.Flush(); err != nil {
		return written, fmt.Errorf("failed to write output: %w", err)
	}

	return written, nil
}
