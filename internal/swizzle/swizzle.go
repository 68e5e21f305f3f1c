// Package swizzle generates vector swizzle accessors: for an alphabet of
// component letters it enumerates every ordered sequence, with repetition,
// up to a maximum length and renders one accessor declaration per sequence.
package swizzle

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"
)

var (
	// ErrEmptyAlphabet is returned when there are no component letters.
	ErrEmptyAlphabet = errors.New("alphabet must not be empty")
	// ErrInvalidLength is returned when the maximum length is below 1 or
	// would produce more than MaxSequences sequences.
	ErrInvalidLength = errors.New("invalid max permutation length")
)

// MaxSequences bounds how many sequences Generate builds in memory.
const MaxSequences = 1 << 20

// Permutations returns every sequence of length 1..size over alphabet in
// depth-first order: each sequence is followed by all of its extensions
// before the next sibling.
func Permutations(alphabet string, size int) []string {
	var out []string
	permutate(&out, []rune(alphabet), "", size)
	return out
}

func permutate(out *[]string, alphabet []rune, current string, size int) {
	if size <= 0 {
		return
	}
	for _, c := range alphabet {
		next := current + string(c)
		*out = append(*out, next)
		permutate(out, alphabet, next, size-1)
	}
}

// SortByLength orders seqs by length. Sequences of equal length keep their
// relative order, which for Permutations output is nested iteration order
// over the alphabet.
func SortByLength(seqs []string) {
	sort.SliceStable(seqs, func(i, j int) bool {
		return utf8.RuneCountInString(seqs[i]) < utf8.RuneCountInString(seqs[j])
	})
}

// Generate validates its input and returns all sequences of length 1..maxLen
// sorted by length.
func Generate(alphabet string, maxLen int) ([]string, error) {
	if alphabet == "" {
		return nil, ErrEmptyAlphabet
	}
	if maxLen < 1 {
		return nil, fmt.Errorf("%w: %d is below 1", ErrInvalidLength, maxLen)
	}
	letters := utf8.RuneCountInString(alphabet)
	if _, ok := Count(letters, maxLen); !ok {
		return nil, fmt.Errorf("%w: %d letters up to length %d exceed %d sequences", ErrInvalidLength, letters, maxLen, MaxSequences)
	}
	seqs := Permutations(alphabet, maxLen)
	SortByLength(seqs)
	return seqs, nil
}

// Count returns the number of sequences of length 1..maxLen over letters
// symbols. ok is false when the count exceeds MaxSequences.
func Count(letters, maxLen int) (n int, ok bool) {
	level := 1
	for i := 0; i < maxLen; i++ {
		level *= letters
		n += level
		if level > MaxSequences || n > MaxSequences {
			return 0, false
		}
	}
	return n, true
}
