package dict

import "sort"

// Dictionary accumulates unique stress-free pronunciations per base word.
// Pronunciations are kept in first-seen order; the seen set makes the
// membership check constant time instead of a scan over the word's list.
type Dictionary struct {
	prons map[string][]string
	seen  map[string]map[string]struct{}
}

// NewDictionary creates an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		prons: make(map[string][]string),
		seen:  make(map[string]map[string]struct{}),
	}
}

// Add records the entry's pronunciation under its base word. Stress markers
// are stripped first; if the word already has an identical stress-free
// pronunciation the entry is dropped.
func (d *Dictionary) Add(e Entry) {
	pron := Normalize(e.Phonemes)

	set, ok := d.seen[e.Word]
	if !ok {
		set = make(map[string]struct{})
		d.seen[e.Word] = set
	}
	if _, dup := set[pron]; dup {
		return
	}
	set[pron] = struct{}{}
	d.prons[e.Word] = append(d.prons[e.Word], pron)
}

// Words returns all base words in ascending byte order.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.prons))
	for w := range d.prons {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Pronunciations returns a word's pronunciations in first-seen order.
func (d *Dictionary) Pronunciations(word string) []string {
	return d.prons[word]
}

// Len returns the total number of pronunciations across all words.
func (d *Dictionary) Len() int {
	n := 0
	for _, p := range d.prons {
		n += len(p)
	}
	return n
}
