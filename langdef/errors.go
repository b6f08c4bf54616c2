package langdef

import "github.com/xiaozs/parser/lexerr"

func errUnbalancedParens(pos lexerr.SourcePos) *lexerr.Error {
	return lexerr.FormatPos(pos, lexerr.KindGrammarStructural, "unbalanced parentheses in grammar")
}

func errDanglingOperator(pos lexerr.SourcePos, op string) *lexerr.Error {
	return lexerr.FormatPos(pos, lexerr.KindGrammarStructural, "dangling operator %q has no preceding operand", op)
}

func errUnresolvedIdentifier(pos lexerr.SourcePos, name string) *lexerr.Error {
	return lexerr.FormatPos(pos, lexerr.KindGrammarStructural, "unresolved identifier %q in grammar", name)
}

func errInvalidTemplatePart() *lexerr.Error {
	return lexerr.Format(lexerr.KindGrammarStructural, "grammar template part must be a string fragment or a resolved reference")
}
