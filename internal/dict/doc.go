// Package dict implements the CMUdict to PocketSphinx conversion. It parses
// dictionary entries, strips stress markers from phonemes, deduplicates
// pronunciations that become identical without stress, and emits the result
// sorted by word with renumbered variant suffixes.
package dict
