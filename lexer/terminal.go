package lexer

import (
	"github.com/xiaozs/parser/lexerr"
	"github.com/xiaozs/parser/match"
)

// DefaultChannel is the output bucket assigned to a TerminalSpec that does
// not set Channel.
const DefaultChannel = "default"

// TerminalSpec describes a terminal before registration. Channel and
// Priority default to DefaultChannel and 0 when left zero-valued. Mode
// holds the mode name the terminal is gated on, or "" to mean the
// terminal is only considered when the mode stack is empty. PushMode, if
// non-empty, is pushed onto the mode stack on a successful match.
// PopMode, if set, pops the mode stack on a successful match (applied
// after PushMode).
type TerminalSpec struct {
	Matcher  match.Matcher
	Channel  string
	Priority int
	Mode     string
	PushMode string
	PopMode  bool
}

// Lit builds a TerminalSpec backed by a literal-keyword matcher.
func Lit(kw string) (TerminalSpec, error) {
	m, err := match.Literal(kw)
	if err != nil {
		return TerminalSpec{}, err
	}
	return TerminalSpec{Matcher: m}, nil
}

// Rx builds a TerminalSpec backed by a regex matcher.
func Rx(src string) (TerminalSpec, error) {
	m, err := match.Regex(src)
	if err != nil {
		return TerminalSpec{}, err
	}
	return TerminalSpec{Matcher: m}, nil
}

// Pred builds a TerminalSpec backed by a predicate matcher.
func Pred(fn func(input string, start int) int) TerminalSpec {
	return TerminalSpec{Matcher: match.Predicate(fn)}
}

// Terminal is the compiled, registry-held form of a TerminalSpec: channel
// and priority defaults are resolved.
type Terminal struct {
	spec    TerminalSpec
	channel string
}

func (t Terminal) Matcher() match.Matcher { return t.spec.Matcher }
func (t Terminal) Channel() string        { return t.channel }
func (t Terminal) Priority() int          { return t.spec.Priority }
func (t Terminal) Mode() string           { return t.spec.Mode }
func (t Terminal) PushMode() string       { return t.spec.PushMode }
func (t Terminal) PopMode() bool          { return t.spec.PopMode }

func compileTerminal(spec TerminalSpec) (Terminal, error) {
	if spec.Matcher == nil {
		return Terminal{}, lexerr.Format(lexerr.KindTerminalDefinition, "terminal declaration has no matcher")
	}

	channel := spec.Channel
	if channel == "" {
		channel = DefaultChannel
	}

	return Terminal{spec: spec, channel: channel}, nil
}
