package wordlist

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Alphabet is a set of characters.
type Alphabet map[rune]struct{}

// NewAlphabet returns the set of runes in s. s is NFC-normalised first so a
// decomposed "ö" ends up as a single rune.
func NewAlphabet(s string) Alphabet {
	a := make(Alphabet)
	for _, r := range norm.NFC.String(s) {
		a[r] = struct{}{}
	}
	return a
}

// Has reports whether r is in the alphabet.
func (a Alphabet) Has(r rune) bool {
	_, ok := a[r]
	return ok
}

// Allows reports whether every rune of word is in the alphabet. The empty word is
// allowed.
func (a Alphabet) Allows(word string) bool {
	for _, r := range word {
		if !a.Has(r) {
			return false
		}
	}
	return true
}

// ContainedIn reports whether every rune of the alphabet appears somewhere in word.
func (a Alphabet) ContainedIn(word string) bool {
	for r := range a {
		if !strings.ContainsRune(word, r) {
			return false
		}
	}
	return true
}

// Missing returns the runes of a that are not in b.
func (a Alphabet) Missing(b Alphabet) []rune {
	var out []rune
	for r := range a {
		if !b.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

// Filter keeps the words made only of Allowed runes that contain all Required runes.
type Filter struct {
	Allowed  Alphabet
	Required Alphabet

	// Normalize applies Unicode NFC to each candidate before testing it.
	Normalize bool
	// FoldCase lower-cases each candidate (German rules) before testing it.
	FoldCase bool
	// Unique drops repeated words, keeping the first occurrence.
	Unique bool
}

// Match reports whether word passes both predicates as is.
func (f Filter) Match(word string) bool {
	return f.Allowed.Allows(word) && f.Required.ContainedIn(word)
}

// Apply returns the candidates that pass the filter, in input order. Words are
// returned in their normalised form.
func (f Filter) Apply(candidates []string) []string {
	var lower cases.Caser
	if f.FoldCase {
		lower = cases.Lower(language.German)
	}

	var seen map[string]struct{}
	if f.Unique {
		seen = make(map[string]struct{})
	}

	result := []string{}
	for _, w := range candidates {
		if f.Normalize {
			w = norm.NFC.String(w)
		}
		if f.FoldCase {
			w = lower.String(w)
		}
		if !f.Match(w) {
			continue
		}
		if seen != nil {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
		}
		result = append(result, w)
	}
	return result
}
