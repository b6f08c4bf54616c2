// Package match provides the uniform Matcher primitive: given an input
// string and a start offset, report the end offset of a successful match
// or a distinguished no-match value.
package match

import (
	"regexp"

	"github.com/xiaozs/parser/lexerr"
)

// NoMatch is returned by Matcher.Try when no match was found at start.
const NoMatch = -1

// Matcher tries to match at a given offset into input, returning the end
// offset of the match, NoMatch, or a MatcherContract error if a predicate
// matcher violated its contract (returned an end index at or before
// start, other than NoMatch).
type Matcher interface {
	Try(input string, start int) (end int, err error)
}

type literalMatcher struct {
	kw string
}

// Literal builds a Matcher that succeeds iff input starts with kw at the
// offered offset. kw must be non-empty.
func Literal(kw string) (Matcher, error) {
	if kw == "" {
		return nil, lexerr.Format(lexerr.KindTerminalDefinition, "literal matcher requires a non-empty keyword")
	}
	return &literalMatcher{kw: kw}, nil
}

func (m *literalMatcher) Try(input string, start int) (int, error) {
	end := start + len(m.kw)
	if end > len(input) || input[start:end] != m.kw {
		return NoMatch, nil
	}
	return end, nil
}

type regexMatcher struct {
	re *regexp.Regexp
}

// Regex builds a Matcher backed by a regular expression, anchored so that
// it only ever matches beginning exactly at the offered offset, never a
// later position.
func Regex(src string) (Matcher, error) {
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, lexerr.Format(lexerr.KindTerminalDefinition, "invalid regex %q: %s", src, err.Error())
	}
	return &regexMatcher{re: re}, nil
}

func (m *regexMatcher) Try(input string, start int) (int, error) {
	loc := m.re.FindStringIndex(input[start:])
	if loc == nil || loc[0] != 0 || loc[1] <= loc[0] {
		return NoMatch, nil
	}
	return start + loc[1], nil
}

type predicateMatcher struct {
	fn func(input string, start int) int
}

// Predicate wraps a user callback (input, start) -> endIndex | NoMatch.
// A returned end index at or before start (other than NoMatch) is a fatal
// usage error, reported as a MatcherContract error from Try.
func Predicate(fn func(input string, start int) int) Matcher {
	return &predicateMatcher{fn: fn}
}

func (m *predicateMatcher) Try(input string, start int) (int, error) {
	end := m.fn(input, start)
	if end == NoMatch {
		return NoMatch, nil
	}
	if end <= start {
		return NoMatch, lexerr.Format(lexerr.KindMatcherContract, "predicate matcher returned end %d <= start %d", end, start)
	}
	return end, nil
}
