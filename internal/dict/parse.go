package dict

import (
	"regexp"
	"strings"
)

// Entry is one parsed dictionary line: a base word (variant marker removed)
// and its phoneme sequence as written, stress markers still attached.
type Entry struct {
	Word     string
	Phonemes []string
}

// variantRe matches a variant marker like (2) or (10) at the end of a word.
var variantRe = regexp.MustCompile(`\(\d+\)$`)

// ParseLine parses a single CMUdict line. The second return value is false
// for lines that carry no entry: blank lines, ;;; comments, and lines that
// are left with fewer than two tokens after inline comments are removed.
//
//	"hello HH AH0 L OW1"   -> {hello [HH AH0 L OW1]}, true
//	"world(2) W ER1 L D"   -> {world [W ER1 L D]}, true
//	";;; a comment"        -> zero Entry, false
func ParseLine(line string) (Entry, bool) {
	line = strings.TrimSpace(line)

	if line == "" || strings.HasPrefix(line, ";;;") {
		return Entry{}, false
	}

	// Inline comments run from # to end of line
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}

	parts := strings.Fields(line)
	if len(parts) < 2 {
		return Entry{}, false
	}

	return Entry{
		Word:     variantRe.ReplaceAllString(parts[0], ""),
		Phonemes: parts[1:],
	}, true
}
