package dict

import "strings"

// StripStress removes a trailing stress marker from a phoneme.
//
// CMUdict marks stress with a digit at the end of vowel phonemes:
// 0 = no stress, 1 = primary stress, 2 = secondary stress. Consonants
// carry no marker. Only the final character is inspected, so a digit
// elsewhere in the token is left alone.
func StripStress(phoneme string) string {
	if len(phoneme) == 0 {
		return phoneme
	}
	switch phoneme[len(phoneme)-1] {
	case '0', '1', '2':
		return phoneme[:len(phoneme)-1]
	}
	return phoneme
}

// Normalize strips stress from every phoneme and joins the result into
// the space-separated form used for comparison and output.
func Normalize(phonemes []string) string {
	stripped := make([]string, len(phonemes))
	for i, p := range phonemes {
		stripped[i] = StripStress(p)
	}
	return strings.Join(stripped, " ")
}
