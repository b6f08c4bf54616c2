package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiteralMatch(t *testing.T) {
	m, err := Literal("if")
	require.NoError(t, err)

	end, err := m.Try("if 42", 0)
	require.NoError(t, err)
	require.Equal(t, 2, end)

	end, err = m.Try("xif", 1)
	require.NoError(t, err)
	require.Equal(t, 3, end)

	end, err = m.Try("ifx", 1)
	require.NoError(t, err)
	require.Equal(t, NoMatch, end)
}

func TestLiteralRejectsEmptyKeyword(t *testing.T) {
	_, err := Literal("")
	require.Error(t, err)
}

func TestRegexMatchIsAnchoredAtStart(t *testing.T) {
	m, err := Regex(`[0-9]+`)
	require.NoError(t, err)

	end, err := m.Try("42abc", 0)
	require.NoError(t, err)
	require.Equal(t, 2, end)

	// Must not skip forward to find a later match.
	end, err = m.Try("abc42", 0)
	require.NoError(t, err)
	require.Equal(t, NoMatch, end)

	end, err = m.Try("abc42", 3)
	require.NoError(t, err)
	require.Equal(t, 5, end)
}

func TestRegexInvalidSource(t *testing.T) {
	_, err := Regex(`[`)
	require.Error(t, err)
}

func TestPredicateMatchSuccess(t *testing.T) {
	m := Predicate(func(input string, start int) int {
		if start < len(input) && input[start] == 'x' {
			return start + 1
		}
		return NoMatch
	})

	end, err := m.Try("xx", 0)
	require.NoError(t, err)
	require.Equal(t, 1, end)

	end, err = m.Try("yy", 0)
	require.NoError(t, err)
	require.Equal(t, NoMatch, end)
}

func TestPredicateContractViolation(t *testing.T) {
	m := Predicate(func(input string, start int) int {
		return start
	})

	_, err := m.Try("abc", 1)
	require.Error(t, err)
}
