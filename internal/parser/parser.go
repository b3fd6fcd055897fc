package parser

import (
	"strings"

	"dlint/internal/ast"
	"dlint/internal/diag"
	"dlint/internal/source"
	"dlint/internal/token"
)

// Options configures a parse run.
type Options struct {
	// Reporter receives syntax diagnostics. Nil swallows them.
	Reporter diag.Reporter
}

// Parser walks a token stream produced by lexer.ScanAll.
type Parser struct {
	tokens []token.Token
	pos    int
	opts   Options
}

// ParseFile parses the token stream of one file. The stream must end with an
// EOF token. ParseFile never fails: it always returns a tree, possibly with
// fewer declarations than the source intended.
func ParseFile(tokens []token.Token, opts Options) *ast.File {
	p := &Parser{tokens: tokens, opts: opts}
	file := &ast.File{}
	file.Module = p.parseModuleHeader()
	file.Decls = p.parseDecls(false)
	return file
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) kind() token.Kind { return p.cur().Kind }

func (p *Parser) peekKind(n int) token.Kind {
	if p.pos+n >= len(p.tokens) {
		return token.EOF
	}
	return p.tokens[p.pos+n].Kind
}

func (p *Parser) at(k token.Kind) bool { return p.kind() == k }

func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

// prevSpan returns the span of the last consumed token.
func (p *Parser) prevSpan() source.Span {
	if p.pos == 0 {
		return source.Span{}
	}
	return p.tokens[p.pos-1].Span
}

func (p *Parser) errSyn(code diag.Code, sp source.Span, msg string) {
	diag.ReportError(p.opts.Reporter, code, sp, msg).Emit()
}

// parseModuleHeader consumes a leading 'module a.b.c;' declaration if present
// and returns the dotted module name.
func (p *Parser) parseModuleHeader() string {
	if !p.at(token.KwModule) {
		return ""
	}
	kw := p.cur()
	p.advance()
	var b strings.Builder
	for p.at(token.Ident) {
		b.WriteString(p.cur().Text)
		p.advance()
		if !p.at(token.Dot) {
			break
		}
		b.WriteByte('.')
		p.advance()
	}
	if b.Len() == 0 {
		p.errSyn(diag.SynExpectIdentifier, kw.Span, "expected module name after 'module'")
	}
	p.skipToSemicolon()
	return b.String()
}

// parseDecls parses declarations until EOF, or until the closing brace of the
// enclosing aggregate when inAggregate is set. The closing brace is left for
// the caller.
func (p *Parser) parseDecls(inAggregate bool) []ast.Decl {
	var decls []ast.Decl
	for {
		switch p.kind() {
		case token.EOF:
			return decls
		case token.RBrace:
			if inAggregate {
				return decls
			}
			p.advance()
			continue
		case token.Semicolon:
			p.advance()
			continue
		case token.KwModule, token.KwImport:
			p.skipToSemicolon()
			continue
		}
		if d := p.parseDecl(); d != nil {
			decls = append(decls, d)
		}
	}
}

// parseDecl parses one declaration, returning nil for forms that carry no
// check-relevant structure (enums, aliases, constructors, skipped blocks).
func (p *Parser) parseDecl() ast.Decl {
	start := p.cur().Span
	attrs := p.collectPrefixAttrs()
	switch p.kind() {
	case token.KwInterface, token.KwClass, token.KwStruct, token.KwUnion:
		return p.parseAggregate(start)
	case token.KwEnum, token.KwTemplate, token.KwMixin, token.KwUnittest,
		token.KwInvariant, token.KwVersion, token.KwIf:
		p.skipToDeclEnd()
		return nil
	case token.KwAlias, token.KwImport:
		p.skipToSemicolon()
		return nil
	case token.KwThis, token.Tilde:
		// constructors and destructors are never subject to checks
		p.skipToDeclEnd()
		return nil
	case token.Colon:
		// attribute label such as 'private:'
		p.advance()
		return nil
	case token.LBrace:
		// attribute block such as 'static { ... }'
		p.skipBalanced(token.LBrace, token.RBrace)
		return nil
	case token.EOF, token.RBrace, token.Semicolon:
		return nil
	}
	return p.parseFuncOrVar(start, attrs)
}

// skipBalanced consumes a delimited group, counting only the given pair.
// A missing close brace at EOF is reported; other pairs fail silently since
// the surrounding recovery already copes.
func (p *Parser) skipBalanced(open, close token.Kind) {
	if !p.at(open) {
		return
	}
	openSpan := p.cur().Span
	depth := 0
	for {
		switch p.kind() {
		case open:
			depth++
		case close:
			depth--
		case token.EOF:
			if open == token.LBrace {
				p.errSyn(diag.SynUnclosedBrace, openSpan, "brace is never closed")
			}
			return
		}
		p.advance()
		if depth == 0 {
			return
		}
	}
}

// skipToSemicolon consumes up to and including the next top-level ';'.
// Stops without consuming at EOF or a closing brace.
func (p *Parser) skipToSemicolon() {
	for {
		switch p.kind() {
		case token.Semicolon:
			p.advance()
			return
		case token.EOF, token.RBrace:
			return
		case token.LBrace:
			p.skipBalanced(token.LBrace, token.RBrace)
		case token.LParen:
			p.skipBalanced(token.LParen, token.RParen)
		default:
			p.advance()
		}
	}
}

// skipToDeclEnd consumes a whole declaration: either up to and including a
// top-level ';', or a balanced brace block (following an 'else' continuation
// for version/static-if chains).
func (p *Parser) skipToDeclEnd() {
	for {
		switch p.kind() {
		case token.EOF, token.RBrace:
			return
		case token.Semicolon:
			p.advance()
			return
		case token.LParen:
			p.skipBalanced(token.LParen, token.RParen)
		case token.LBrace:
			p.skipBalanced(token.LBrace, token.RBrace)
			if p.at(token.KwElse) {
				p.advance()
				continue
			}
			return
		default:
			p.advance()
		}
	}
}
