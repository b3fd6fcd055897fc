package parser

import (
	"dlint/internal/ast"
	"dlint/internal/source"
	"dlint/internal/token"
)

// parseFuncOrVar handles declarations that start with a type: functions and
// variables. The declarator name is found by scanning forward for the first
// top-level identifier followed by '('; an '=' or ';' first means a variable,
// which is skipped whole.
func (p *Parser) parseFuncOrVar(start source.Span, attrs declAttrs) ast.Decl {
	nameIdx := p.findDeclaratorName()
	if nameIdx < 0 {
		p.skipToDeclEnd()
		return nil
	}
	name := p.tokens[nameIdx]
	p.pos = nameIdx + 1

	paramStart := p.pos
	p.skipBalanced(token.LParen, token.RParen)
	// a second parameter list means the first held template parameters; the
	// declaration's type cannot be resolved without instantiation
	template := p.at(token.LParen)
	var paramCount uint32
	if template {
		p.skipBalanced(token.LParen, token.RParen)
	} else {
		paramCount = countParams(p.tokens[paramStart:p.pos])
	}

	quals := attrs.quals
	isProperty := attrs.isProperty
	p.collectSuffixAttrs(&quals, &isProperty)
	p.skipFuncBody()

	fn := &ast.FuncDecl{
		Name:     name.Text,
		NameSpan: name.Span,
		Span:     start.Cover(p.prevSpan()),
		Storage:  attrs.storage,
	}
	if !template {
		fn.Signature = &ast.FuncSignature{
			Qualifiers: quals,
			IsProperty: isProperty,
			ParamCount: paramCount,
		}
	}
	return fn
}

// findDeclaratorName returns the index of the first top-level identifier
// followed by '(', or -1 when the declaration ends first. Depth counting
// keeps identifiers inside template instantiations and array types out.
func (p *Parser) findDeclaratorName() int {
	depth := 0
	for i := p.pos; i < len(p.tokens); i++ {
		switch k := p.tokens[i].Kind; k {
		case token.LParen, token.LBracket:
			depth++
		case token.RParen, token.RBracket:
			if depth > 0 {
				depth--
			}
		case token.Ident:
			if depth == 0 && i+1 < len(p.tokens) && p.tokens[i+1].Kind == token.LParen {
				return i
			}
		case token.LBrace, token.RBrace, token.Semicolon, token.Assign, token.EOF:
			if depth == 0 {
				return -1
			}
		}
	}
	return -1
}

// countParams counts declared parameters in a '(...)' token group: one plus
// the commas at nesting depth one, so commas inside default argument
// expressions do not count.
func countParams(group []token.Token) uint32 {
	if len(group) < 3 {
		return 0
	}
	inner := group[1 : len(group)-1]
	depth := 0
	var n uint32 = 1
	for _, tok := range inner {
		switch tok.Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
		case token.Comma:
			if depth == 0 {
				n++
			}
		}
	}
	return n
}

// collectSuffixAttrs consumes member function attributes written after the
// parameter list: qualifiers, '@' attributes, and the attribute keywords
// that may legally follow, plus a trailing template constraint.
func (p *Parser) collectSuffixAttrs(quals *ast.QualifierFlags, isProperty *bool) {
	for {
		switch p.kind() {
		case token.KwConst, token.KwImmutable, token.KwInout:
			*quals |= qualBit(p.kind())
			p.advance()
		case token.KwShared, token.KwPure, token.KwNothrow, token.KwScope,
			token.KwRef, token.KwReturn:
			p.advance()
		case token.At:
			p.advance()
			var a declAttrs
			p.collectAtAttr(&a)
			if a.isProperty {
				*isProperty = true
			}
		case token.KwIf:
			p.advance()
			p.skipBalanced(token.LParen, token.RParen)
		default:
			return
		}
	}
}

// skipFuncBody consumes the declaration tail: a ';' for a prototype, or the
// body with any in/out/do contract blocks before it.
func (p *Parser) skipFuncBody() {
	for {
		switch p.kind() {
		case token.Semicolon:
			p.advance()
			return
		case token.KwIn, token.KwOut, token.KwDo:
			p.advance()
			p.skipBalanced(token.LParen, token.RParen)
		case token.LBrace:
			p.skipBalanced(token.LBrace, token.RBrace)
			switch p.kind() {
			case token.KwIn, token.KwOut, token.KwDo:
				continue
			}
			return
		case token.FatArrow:
			p.skipToSemicolon()
			return
		default:
			return
		}
	}
}
