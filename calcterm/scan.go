package main

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fjl/scicalc/internal/calc"
)

// scanner splits input lines into calculator tokens.
type scanner struct {
	words   []string // longest first
	aliases map[string]string
}

func newScanner(aliases map[string]string) *scanner {
	sc := &scanner{aliases: aliases}
	sc.words = append(sc.words, calc.Tokens()...)
	for a := range aliases {
		sc.words = append(sc.words, a)
	}
	sort.SliceStable(sc.words, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(sc.words[i]), utf8.RuneCountInString(sc.words[j])
		if li != lj {
			return li > lj
		}
		return sc.words[i] < sc.words[j]
	})
	return sc
}

// split tokenizes line. Tokens may be separated by white space but don't
// have to be: the longest known token is taken at each position, so "12+3="
// yields 1 2 + 3 =.
func (sc *scanner) split(line string) ([]string, error) {
	var tokens []string
	rest := line
	for {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if rest == "" {
			return tokens, nil
		}
		w := sc.match(rest)
		if w == "" {
			return tokens, fmt.Errorf("unknown input at %q", rest)
		}
		tok := w
		if t, ok := sc.aliases[w]; ok {
			tok = t
		}
		tokens = append(tokens, tok)
		rest = rest[len(w):]
	}
}

func (sc *scanner) match(s string) string {
	for _, w := range sc.words {
		if strings.HasPrefix(s, w) {
			return w
		}
	}
	return ""
}
