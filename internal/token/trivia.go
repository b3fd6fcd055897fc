package token

import "dlint/internal/source"

// TriviaKind classifies non-semantic source fragments attached to tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	// TriviaNestingComment is the D-style '/+ ... +/' comment, which nests.
	TriviaNestingComment
	TriviaDocLine
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	case TriviaNestingComment:
		return "NestingComment"
	case TriviaDocLine:
		return "DocLine"
	}
	return "TriviaKind(?)"
}

// Trivia is a single run of whitespace or comment preceding a token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
