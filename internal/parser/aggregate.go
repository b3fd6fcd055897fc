package parser

import (
	"dlint/internal/ast"
	"dlint/internal/diag"
	"dlint/internal/source"
	"dlint/internal/token"
)

func aggKind(k token.Kind) ast.AggregateKind {
	switch k {
	case token.KwInterface:
		return ast.AggInterface
	case token.KwClass:
		return ast.AggClass
	case token.KwStruct:
		return ast.AggStruct
	}
	return ast.AggUnion
}

// parseAggregate parses an interface/class/struct/union declaration at the
// current aggregate keyword. Template parameter lists, constraints, and base
// class lists are skipped; members are parsed recursively.
func (p *Parser) parseAggregate(start source.Span) ast.Decl {
	kw := p.cur()
	p.advance()
	decl := &ast.AggregateDecl{
		Kind:        aggKind(kw.Kind),
		KeywordSpan: kw.Span,
		Span:        start,
	}
	if p.at(token.Ident) {
		decl.Name = p.cur().Text
		decl.NameSpan = p.cur().Span
		p.advance()
	}
	if p.at(token.LParen) {
		p.skipBalanced(token.LParen, token.RParen)
	}
	for !p.at(token.LBrace) && !p.at(token.Semicolon) && !p.at(token.EOF) {
		if p.at(token.KwIf) {
			p.advance()
			p.skipBalanced(token.LParen, token.RParen)
			continue
		}
		if p.at(token.LParen) {
			p.skipBalanced(token.LParen, token.RParen)
			continue
		}
		p.advance()
	}
	switch p.kind() {
	case token.Semicolon:
		p.advance()
	case token.LBrace:
		open := p.cur()
		p.advance()
		decl.Members = p.parseDecls(true)
		if p.at(token.RBrace) {
			p.advance()
		} else {
			p.errSyn(diag.SynUnclosedBrace, open.Span, "aggregate body is never closed")
		}
	}
	decl.Span = start.Cover(p.prevSpan())
	return decl
}
