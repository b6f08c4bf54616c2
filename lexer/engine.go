package lexer

import (
	"unicode/utf8"

	"github.com/xiaozs/parser/internal/stack"
	"github.com/xiaozs/parser/match"
	"github.com/xiaozs/parser/position"
)

// LexResult is the outcome of a single Exec call: the per-channel
// sequences of successfully matched terminals, and the sequence of
// coalesced failure fragments, both in input order.
type LexResult struct {
	Success map[string][]Token
	Fail    []Token
}

// Exec tokenizes input: a cursor advances across input, at each position
// trying registered terminals in priority order (gated by the current
// mode-stack top), coalescing unrecognized runs into failure fragments.
func (r *Registry) Exec(input string) (LexResult, error) {
	result := LexResult{Success: make(map[string][]Token, len(r.channels))}
	for _, ch := range r.channels {
		result.Success[ch] = []Token{}
	}

	tracker := position.NewTracker()
	modes := stack.New[string]()

	pos := 0
	hasErrorRun := false
	errorStart := 0

	flushError := func(end int) {
		if !hasErrorRun {
			return
		}
		content := input[errorStart:end]
		start, endPos := tracker.Advance(content)
		result.Fail = append(result.Fail, NewToken(content, start, endPos))
		hasErrorRun = false
	}

	for pos < len(input) {
		term, end, err := r.findMatch(input, pos, modes)
		if err != nil {
			return result, err
		}

		if end == match.NoMatch {
			if !hasErrorRun {
				hasErrorRun = true
				errorStart = pos
			}
			_, size := utf8.DecodeRuneInString(input[pos:])
			pos += size
			continue
		}

		flushError(pos)

		if term.PushMode() != "" {
			modes.Push(term.PushMode())
		}
		if term.PopMode() {
			modes.Pop()
		}

		content := input[pos:end]
		start, endPos := tracker.Advance(content)
		tok := NewToken(content, start, endPos)
		result.Success[term.Channel()] = append(result.Success[term.Channel()], tok)

		pos = end
	}

	flushError(pos)

	return result, nil
}

// findMatch returns the highest-priority, earliest-declared terminal
// whose matcher succeeds at pos under the current mode, or a NoMatch end.
func (r *Registry) findMatch(input string, pos int, modes *stack.Stack[string]) (Terminal, int, error) {
	currentMode, ok := modes.Top()
	if !ok {
		currentMode = ""
	}

	for _, term := range r.terminals {
		if term.Mode() != currentMode {
			continue
		}

		end, err := term.Matcher().Try(input, pos)
		if err != nil {
			return Terminal{}, 0, err
		}
		if end != match.NoMatch && end > pos {
			return term, end, nil
		}
	}

	return Terminal{}, match.NoMatch, nil
}
