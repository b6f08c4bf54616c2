package lexer

import "sort"

// Registry holds compiled terminal definitions, sorted by priority
// (descending, stable on declaration order) and exposes the distinct set
// of output channels declared across them.
type Registry struct {
	terminals []Terminal
	channels  []string
}

// NewRegistry compiles specs into a Registry: each spec is checked to
// carry a matcher (already built by Lit, Rx or Pred), defaults are
// assigned, then the result is stable-sorted by priority descending.
func NewRegistry(specs []TerminalSpec) (*Registry, error) {
	terminals := make([]Terminal, len(specs))
	seenChannel := map[string]bool{}
	var channels []string

	for i, spec := range specs {
		t, err := compileTerminal(spec)
		if err != nil {
			return nil, err
		}
		terminals[i] = t

		if !seenChannel[t.channel] {
			seenChannel[t.channel] = true
			channels = append(channels, t.channel)
		}
	}

	sort.SliceStable(terminals, func(i, j int) bool {
		return terminals[i].Priority() > terminals[j].Priority()
	})

	return &Registry{terminals: terminals, channels: channels}, nil
}

// Terminals returns the priority-sorted terminal list.
func (r *Registry) Terminals() []Terminal {
	out := make([]Terminal, len(r.terminals))
	copy(out, r.terminals)
	return out
}

// Channels returns the distinct channel names declared across the
// registry's terminals, in order of first declaration.
func (r *Registry) Channels() []string {
	out := make([]string, len(r.channels))
	copy(out, r.channels)
	return out
}
