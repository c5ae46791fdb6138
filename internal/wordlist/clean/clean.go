// Package clean turns one line of word-list text into a normalized headword.
// Pure functions: no I/O, no state between lines.
package clean

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/aruytehno/english-trainer/internal/domain"
)

// DefaultBoilerplate lists substrings that mark publisher boilerplate lines.
var DefaultBoilerplate = []string{
	"Oxford University Press",
	"©",
	"The Oxford 3000",
	"The Oxford 5000",
}

var (
	leadingWordRe    = regexp.MustCompile(`^\p{L}[\p{L}'\-]*`)
	trailingDigitsRe = regexp.MustCompile(`\d+$`)
	validWordRe      = regexp.MustCompile(`^\p{L}+(?:['\-]\p{L}+)*$`)
	// A line made only of part-of-speech abbreviations, left over when a
	// PDF wraps the annotation of the previous headword.
	posOnlyRe = regexp.MustCompile(`^(?:(?:n|v|adj|adv|prep|pron|conj|det|exclam)\.,?\s*)+$`)
)

// Cleaner extracts headwords from raw lines.
type Cleaner struct {
	boilerplate []string
}

// New creates a Cleaner that rejects lines containing any of the given
// markers. Matching ignores case and repeated spaces. A nil slice selects
// DefaultBoilerplate.
func New(boilerplate []string) *Cleaner {
	if boilerplate == nil {
		boilerplate = DefaultBoilerplate
	}
	markers := make([]string, 0, len(boilerplate))
	for _, m := range boilerplate {
		if m = domain.NormalizeText(domain.FoldText(m)); m != "" {
			markers = append(markers, m)
		}
	}
	return &Cleaner{boilerplate: markers}
}

// Clean returns the normalized word carried by line, or ok=false when the
// line is noise (empty, boilerplate, page number, or no usable word).
//
// Examples: "even adv." → "even", "match (contest/correspond) n., v." →
// "match", "rose2" → "rose", "a, an indefinite article" → "a".
func (c *Cleaner) Clean(line string) (word string, ok bool) {
	line = domain.FoldText(strings.TrimSpace(line))
	if line == "" || c.IsBoilerplate(line) || isNumeric(line) || posOnlyRe.MatchString(line) {
		return "", false
	}

	if candidate := leadingWordRe.FindString(line); candidate != "" {
		return finish(candidate)
	}
	return fallback(line)
}

// IsBoilerplate reports whether line contains a configured marker.
func (c *Cleaner) IsBoilerplate(line string) bool {
	line = domain.NormalizeText(domain.FoldText(line))
	for _, m := range c.boilerplate {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

// fallback cleans the first whitespace-separated token of a line that does
// not start with a letter, e.g. `“hello” exclam.` or `(be) able`.
func fallback(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	token := strings.TrimLeftFunc(fields[0], isPunct)
	token = cutParen(token)
	token = strings.TrimRightFunc(token, isPunct)
	return finish(token)
}

// finish applies the shared tail of the rules: parenthesis truncation,
// homograph digit removal, edge hyphen/apostrophe trimming, lowercasing
// and validation.
func finish(candidate string) (string, bool) {
	candidate = cutParen(candidate)
	candidate = trailingDigitsRe.ReplaceAllString(candidate, "")
	candidate = strings.Trim(candidate, "-'")
	candidate = strings.ToLower(candidate)
	if !validWordRe.MatchString(candidate) {
		return "", false
	}
	return candidate, true
}

func cutParen(s string) string {
	if i := strings.IndexByte(s, '('); i >= 0 {
		return s[:i]
	}
	return s
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

func isPunct(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
