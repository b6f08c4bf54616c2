package lexer

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xiaozs/parser/position"
)

func pos(index, row, col int) position.Position {
	return position.Position{Index: index, Row: row, Col: col}
}

func mustLit(t *testing.T, kw string) TerminalSpec {
	spec, err := Lit(kw)
	require.NoError(t, err)
	return spec
}

func mustRx(t *testing.T, src string) TerminalSpec {
	spec, err := Rx(src)
	require.NoError(t, err)
	return spec
}

func TestExecKeywordAndNumber(t *testing.T) {
	kw := mustLit(t, "if")
	kw.Priority = 10
	num := mustRx(t, `[0-9]+`)
	ws := mustRx(t, `\s+`)
	ws.Channel = "skip"

	reg, err := NewRegistry([]TerminalSpec{kw, num, ws})
	require.NoError(t, err)

	result, err := reg.Exec("if 42")
	require.NoError(t, err)

	require.Equal(t, []Token{
		NewToken("if", pos(0, 1, 1), pos(2, 1, 3)),
		NewToken("42", pos(3, 1, 4), pos(5, 1, 6)),
	}, result.Success["default"])
	require.Equal(t, []Token{
		NewToken(" ", pos(2, 1, 3), pos(3, 1, 4)),
	}, result.Success["skip"])
	require.Empty(t, result.Fail)
}

func TestExecUnrecognizedRun(t *testing.T) {
	kw := mustLit(t, "if")
	kw.Priority = 10
	num := mustRx(t, `[0-9]+`)
	ws := mustRx(t, `\s+`)
	ws.Channel = "skip"

	reg, err := NewRegistry([]TerminalSpec{kw, num, ws})
	require.NoError(t, err)

	result, err := reg.Exec("@@ if")
	require.NoError(t, err)

	require.Equal(t, []Token{
		NewToken("if", pos(3, 1, 4), pos(5, 1, 6)),
	}, result.Success["default"])
	require.Equal(t, []Token{
		NewToken(" ", pos(2, 1, 3), pos(3, 1, 4)),
	}, result.Success["skip"])
	require.Equal(t, []Token{
		NewToken("@@", pos(0, 1, 1), pos(2, 1, 3)),
	}, result.Fail)
}

func TestExecModeSwitch(t *testing.T) {
	open := mustLit(t, "/*")
	open.PushMode = "c"
	open.Channel = "comment"
	closeTerm := mustLit(t, "*/")
	closeTerm.Mode = "c"
	closeTerm.PopMode = true
	closeTerm.Channel = "comment"
	any := mustRx(t, `.`)
	any.Mode = "c"
	any.Channel = "comment"
	word := mustRx(t, `[a-z]+`)

	reg, err := NewRegistry([]TerminalSpec{open, closeTerm, any, word})
	require.NoError(t, err)

	result, err := reg.Exec("a/*b*/c")
	require.NoError(t, err)

	require.Equal(t, []string{"a", "c"}, contents(result.Success["default"]))
	require.Equal(t, []string{"/*", "b", "*/"}, contents(result.Success["comment"]))
	require.Empty(t, result.Fail)
}

func TestExecPositionAcrossNewlines(t *testing.T) {
	word := mustRx(t, `[a-z]+`)

	reg, err := NewRegistry([]TerminalSpec{word})
	require.NoError(t, err)

	result, err := reg.Exec("a\nbb")
	require.NoError(t, err)

	require.Equal(t, []Token{
		NewToken("a", pos(0, 1, 1), pos(1, 1, 2)),
		NewToken("bb", pos(2, 2, 1), pos(4, 2, 3)),
	}, result.Success["default"])
	require.Equal(t, []Token{
		NewToken("\n", pos(1, 1, 2), pos(2, 2, 1)),
	}, result.Fail)
}

func TestExecPriorityTieBreaksOnDeclarationOrder(t *testing.T) {
	first := mustRx(t, `[a-z]+`)
	second := mustRx(t, `[a-z]+`)
	second.Channel = "second"

	reg, err := NewRegistry([]TerminalSpec{first, second})
	require.NoError(t, err)

	result, err := reg.Exec("abc")
	require.NoError(t, err)
	require.Len(t, result.Success["default"], 1)
	require.Empty(t, result.Success["second"])
}

func TestExecPopModeOnEmptyStackIsSilentNoOp(t *testing.T) {
	pop := mustLit(t, "x")
	pop.PopMode = true

	reg, err := NewRegistry([]TerminalSpec{pop})
	require.NoError(t, err)

	result, err := reg.Exec("x")
	require.NoError(t, err)
	require.Len(t, result.Success["default"], 1)
}

func TestExecMatcherContractErrorAborts(t *testing.T) {
	bad := Pred(func(input string, start int) int { return start })

	reg, err := NewRegistry([]TerminalSpec{bad})
	require.NoError(t, err)

	_, err = reg.Exec("abc")
	require.Error(t, err)
}

func TestExecModeGatingExcludesWrongModeTerminal(t *testing.T) {
	inComment := mustRx(t, `[a-z]+`)
	inComment.Mode = "c"
	outside := mustRx(t, `[a-z]+`)
	outside.Channel = "outside"

	reg, err := NewRegistry([]TerminalSpec{inComment, outside})
	require.NoError(t, err)

	result, err := reg.Exec("abc")
	require.NoError(t, err)

	require.Empty(t, result.Success["default"])
	require.Equal(t, []string{"abc"}, contents(result.Success["outside"]))
}

func TestExecCoverageAndMonotonicityReconstructInput(t *testing.T) {
	kw := mustLit(t, "if")
	kw.Priority = 10
	num := mustRx(t, `[0-9]+`)
	ws := mustRx(t, `\s+`)
	ws.Channel = "skip"

	reg, err := NewRegistry([]TerminalSpec{kw, num, ws})
	require.NoError(t, err)

	input := "if 42 @@ 9"
	result, err := reg.Exec(input)
	require.NoError(t, err)

	type entry struct {
		start   position.Position
		content string
	}
	var entries []entry
	for _, toks := range result.Success {
		for _, tok := range toks {
			entries = append(entries, entry{tok.Start(), tok.Content()})
		}
	}
	for _, tok := range result.Fail {
		entries = append(entries, entry{tok.Start(), tok.Content()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].start.Index < entries[j].start.Index })

	var rebuilt string
	for _, e := range entries {
		rebuilt += e.content
	}
	require.Equal(t, input, rebuilt)
}

func contents(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Content()
	}
	return out
}
