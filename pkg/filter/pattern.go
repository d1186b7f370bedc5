// Package filter compiles user glob patterns and applies them, along
// with tag membership, to a package catalog.
package filter

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/pkgls/pkg/errors"
)

// Matcher is a compiled, case-insensitive glob pattern
type Matcher struct {
	raw string
	re  *regexp.Regexp
}

// Compile turns a raw glob into a Matcher. A pattern without wildcards
// is wrapped as a substring match (*<raw>*). Matching is always
// case-insensitive.
func Compile(glob string) (*Matcher, error) {
	effective := glob
	if !strings.ContainsAny(glob, "*?") {
		effective = "*" + glob + "*"
	}

	expr, err := translate(effective)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "invalid pattern '%s'", glob)
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "invalid pattern '%s'", glob)
	}

	return &Matcher{raw: glob, re: re}, nil
}

// MustCompile is Compile for patterns known to be valid
func MustCompile(glob string) *Matcher {
	m, err := Compile(glob)
	if err != nil {
		panic(err)
	}
	return m
}

// Pattern returns the raw pattern the matcher was compiled from
func (m *Matcher) Pattern() string {
	return m.raw
}

// Matches reports whether the candidate matches the whole pattern
func (m *Matcher) Matches(candidate string) bool {
	return m.re.MatchString(candidate)
}

// translate converts a glob into an anchored regular expression.
// * matches any run of characters, ? exactly one, [...] a character
// class ([!...] negated). An unclosed bracket is an error.
func translate(glob string) (string, error) {
	var b strings.Builder
	b.WriteString("(?is)^")

	runes := []rune(glob)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			j := i + 1
			if j < len(runes) && runes[j] == '!' {
				j++
			}
			if j < len(runes) && runes[j] == ']' {
				j++
			}
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j >= len(runes) {
				return "", errors.New(errors.ErrPatternInvalid, "unbalanced '[' in pattern")
			}
			inner := string(runes[i+1 : j])
			inner = strings.ReplaceAll(inner, `\`, `\\`)
			if strings.HasPrefix(inner, "!") {
				inner = "^" + inner[1:]
			}
			b.WriteString("[" + inner + "]")
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(runes[i])))
		}
	}

	b.WriteString("$")
	return b.String(), nil
}
