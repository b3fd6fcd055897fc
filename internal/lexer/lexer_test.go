package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"dlint/internal/diag"
	"dlint/internal/lexer"
	"dlint/internal/source"
	"dlint/internal/token"
)

// testReporter collects every diagnostic produced by the lexer.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
		Fixes:    fixes,
	})
}

func (r *testReporter) ErrorCount() int {
	count := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			count++
		}
	}
	return count
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.d", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	return lx, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// expectTokens checks the token kind sequence for input, ignoring EOF.
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}

	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()

	if tok.Kind != expectedKind {
		t.Errorf("Expected kind %v, got %v", expectedKind, tok.Kind)
	}
	if tok.Text != expectedText {
		t.Errorf("Expected text %q, got %q", expectedText, tok.Text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ====== identifiers and keywords ======

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		text  string
	}{
		{"foo", token.Ident, "foo"},
		{"_bar", token.Ident, "_bar"},
		{"x123", token.Ident, "x123"},
		{"camelCase", token.Ident, "camelCase"},
		{"property", token.Ident, "property"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.text)
		})
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"const", token.KwConst},
		{"immutable", token.KwImmutable},
		{"inout", token.KwInout},
		{"abstract", token.KwAbstract},
		{"static", token.KwStatic},
		{"interface", token.KwInterface},
		{"class", token.KwClass},
		{"struct", token.KwStruct},
		{"union", token.KwUnion},
		{"int", token.KwInt},
		{"void", token.KwVoid},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestPropertyAttribute(t *testing.T) {
	// '@property' must lex as At + Ident("property")
	expectTokens(t, "@property", []token.Kind{token.At, token.Ident})
}

func TestMethodSignature(t *testing.T) {
	expectTokens(t, "int bar() const @property { return 0; }", []token.Kind{
		token.KwInt, token.Ident, token.LParen, token.RParen,
		token.KwConst, token.At, token.Ident,
		token.LBrace, token.KwReturn, token.IntLit, token.Semicolon, token.RBrace,
	})
}

// ====== comments and trivia ======

func TestLineCommentAttachesAsTrivia(t *testing.T) {
	lx, _ := makeTestLexer("// hello\nfoo")
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "foo" {
		t.Fatalf("got %v(%q)", tok.Kind, tok.Text)
	}
	var kinds []token.TriviaKind
	for _, tr := range tok.Leading {
		kinds = append(kinds, tr.Kind)
	}
	want := []token.TriviaKind{token.TriviaLineComment, token.TriviaNewline}
	if len(kinds) != len(want) {
		t.Fatalf("leading trivia = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("trivia %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestNestingComment(t *testing.T) {
	lx, reporter := makeTestLexer("/+ outer /+ inner +/ still outer +/ x")
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "x" {
		t.Fatalf("got %v(%q)", tok.Kind, tok.Text)
	}
	if reporter.ErrorCount() != 0 {
		t.Errorf("unexpected errors: %v", reporter.ErrorMessages())
	}
}

func TestUnterminatedNestingComment(t *testing.T) {
	lx, reporter := makeTestLexer("/+ never closed")
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Fatalf("got %v, want EOF", tok.Kind)
	}
	if reporter.ErrorCount() != 1 {
		t.Errorf("ErrorCount = %d, want 1", reporter.ErrorCount())
	}
}

func TestBlockCommentDoesNotNest(t *testing.T) {
	// '/*' inside a block comment is plain text; the first '*/' closes it
	expectTokens(t, "/* a /* b */ x", []token.Kind{token.Ident})
}

// ====== literals ======

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.IntLit},
		{"123", token.IntLit},
		{"1_000_000", token.IntLit},
		{"0x1F", token.IntLit},
		{"0b1010", token.IntLit},
		{"123u", token.IntLit},
		{"123UL", token.IntLit},
		{"1.5", token.FloatLit},
		{"1e10", token.FloatLit},
		{"1.5e-3", token.FloatLit},
		{"2f", token.FloatLit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestDotAfterIntIsMemberAccess(t *testing.T) {
	expectTokens(t, "foo.bar", []token.Kind{token.Ident, token.Dot, token.Ident})
	expectTokens(t, "1..2", []token.Kind{token.IntLit, token.DotDot, token.IntLit})
}

func TestStrings(t *testing.T) {
	expectSingleToken(t, `"hello"`, token.StringLit, `"hello"`)
	expectSingleToken(t, `"esc \" ok"`, token.StringLit, `"esc \" ok"`)
	expectSingleToken(t, "`raw \\ no escape`", token.StringLit, "`raw \\ no escape`")
	expectSingleToken(t, `'a'`, token.CharLit, `'a'`)
	expectSingleToken(t, `'\n'`, token.CharLit, `'\n'`)
}

func TestUnterminatedString(t *testing.T) {
	lx, reporter := makeTestLexer(`"oops`)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("got %v, want Invalid", tok.Kind)
	}
	if reporter.ErrorCount() != 1 {
		t.Errorf("ErrorCount = %d, want 1", reporter.ErrorCount())
	}
}

// ====== operators ======

func TestOperators(t *testing.T) {
	expectTokens(t, ">>>", []token.Kind{token.UShr})
	expectTokens(t, "=>", []token.Kind{token.FatArrow})
	expectTokens(t, "~=", []token.Kind{token.TildeAssign})
	expectTokens(t, "a && b || !c", []token.Kind{
		token.Ident, token.AndAnd, token.Ident, token.OrOr, token.Bang, token.Ident,
	})
}

// ====== error suppression ======

func TestNilReporterSwallowsErrors(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.d", []byte("\"unterminated\nint x;")))
	// nil reporter: lexing must proceed without panicking or surfacing errors
	tokens := lexer.ScanAll(file, lexer.Options{})
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		t.Fatal("expected token list ending in EOF")
	}
}

func TestScanAllSpansAreOrdered(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.d", []byte("class C { int bar() const; }")))
	tokens := lexer.ScanAll(file, lexer.Options{})
	var prev uint32
	for _, tok := range tokens {
		if tok.Span.Start < prev {
			t.Fatalf("token spans not monotonically ordered at %v", tok)
		}
		prev = tok.Span.Start
	}
}
