// Package analytics computes term statistics over draft text.
package analytics

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
)

type Analytics struct{}

// commonWords are Portuguese and English stopwords ignored by frequency
// analysis and term matching.
var commonWords = map[string]struct{}{
	// Portuguese
	"a": {}, "à": {}, "ao": {}, "aos": {}, "as": {}, "às": {}, "até": {},
	"com": {}, "como": {}, "da": {}, "das": {}, "de": {}, "do": {}, "dos": {},
	"e": {}, "é": {}, "ela": {}, "elas": {}, "ele": {}, "eles": {}, "em": {},
	"entre": {}, "era": {}, "essa": {}, "esse": {}, "esta": {}, "está": {},
	"este": {}, "eu": {}, "foi": {}, "há": {}, "isso": {}, "isto": {}, "já": {},
	"lhe": {}, "mais": {}, "mas": {}, "me": {}, "mesmo": {}, "muito": {},
	"na": {}, "nas": {}, "não": {}, "nem": {}, "no": {}, "nos": {}, "nós": {},
	"num": {}, "numa": {}, "o": {}, "os": {}, "ou": {}, "para": {}, "pela": {},
	"pelas": {}, "pelo": {}, "pelos": {}, "por": {}, "qual": {}, "quando": {},
	"que": {}, "quem": {}, "se": {}, "sem": {}, "ser": {}, "seu": {}, "seus": {},
	"sua": {}, "suas": {}, "são": {}, "só": {}, "também": {}, "te": {}, "tem": {},
	"têm": {}, "um": {}, "uma": {}, "umas": {}, "uns": {}, "você": {}, "vocês": {},

	// English
	"about": {}, "an": {}, "and": {}, "are": {}, "at": {}, "be": {}, "but": {},
	"by": {}, "for": {}, "from": {}, "how": {}, "in": {}, "is": {}, "it": {},
	"its": {}, "of": {}, "on": {}, "or": {}, "that": {}, "the": {}, "this": {},
	"to": {}, "was": {}, "what": {}, "with": {}, "you": {}, "your": {},

	// web noise
	"clique": {}, "click": {}, "aqui": {}, "link": {}, "menu": {}, "página": {},
}

// IsStopword checks if a word is a common stopword that should be filtered out.
func IsStopword(word string) bool {
	_, exists := commonWords[strings.ToLower(word)]
	return exists
}

// Tokenize lowercases text and splits it into words made of letters and
// digits. Hyphenated words stay whole.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
	words := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, "-")
		if f != "" {
			words = append(words, f)
		}
	}
	return words
}

// Terms returns the non-stopword tokens of text.
func Terms(text string) []string {
	var terms []string
	for _, w := range Tokenize(text) {
		if !IsStopword(w) {
			terms = append(terms, w)
		}
	}
	return terms
}

func (a *Analytics) WordCount(text string) int {
	return len(Tokenize(text))
}

func (a *Analytics) WordFrequency(text string) map[string]int {
	frequencies := make(map[string]int)
	for _, word := range Terms(text) {
		frequencies[word]++
	}
	return frequencies
}

type TermCount struct {
	Term  string `json:"term" yaml:"term"`
	Count int    `json:"count" yaml:"count"`
}

// TopTerms returns the n most frequent terms, ties broken alphabetically.
func (a *Analytics) TopTerms(text string, n int) []TermCount {
	frequencies := a.WordFrequency(text)

	counts := make([]TermCount, 0, len(frequencies))
	for k, v := range frequencies {
		counts = append(counts, TermCount{k, v})
	}

	slices.SortFunc(counts, func(x, y TermCount) int {
		if c := cmp.Compare(y.Count, x.Count); c != 0 {
			return c
		}
		return strings.Compare(x.Term, y.Term)
	})

	return counts[:min(n, len(counts))]
}

// KeywordOccurrences counts non-overlapping occurrences of the keyword's
// token sequence in text.
func (a *Analytics) KeywordOccurrences(text, keyword string) int {
	words := Tokenize(text)
	phrase := Tokenize(keyword)
	if len(phrase) == 0 {
		return 0
	}

	count := 0
	for i := 0; i+len(phrase) <= len(words); {
		if slices.Equal(words[i:i+len(phrase)], phrase) {
			count++
			i += len(phrase)
			continue
		}
		i++
	}
	return count
}

// KeywordDensity is the share of words in text that belong to keyword
// occurrences, as a percentage.
func (a *Analytics) KeywordDensity(text, keyword string) float64 {
	total := a.WordCount(text)
	if total == 0 {
		return 0
	}
	n := a.KeywordOccurrences(text, keyword) * len(Tokenize(keyword))
	return float64(n) / float64(total) * 100
}

// Overlap is the fraction of want's terms that appear in have.
func Overlap(want, have string) float64 {
	wantTerms := Terms(want)
	if len(wantTerms) == 0 {
		return 0
	}
	haveSet := make(map[string]struct{})
	for _, t := range Terms(have) {
		haveSet[t] = struct{}{}
	}

	seen := make(map[string]struct{})
	matched, total := 0, 0
	for _, t := range wantTerms {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		total++
		if _, ok := haveSet[t]; ok {
			matched++
		}
	}
	return float64(matched) / float64(total)
}
