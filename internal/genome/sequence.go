package genome

import "strings"

// Transcribe uppercases a nucleotide sequence and replaces T with U so that
// reference FASTA and the profile table are compared in the same alphabet.
func Transcribe(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 't', 'T':
			return 'U'
		}
		if 'a' <= r && r <= 'z' {
			return r - 'a' + 'A'
		}
		return r
	}, s)
}
