package parser

import (
	"dlint/internal/ast"
	"dlint/internal/token"
)

// declAttrs is everything collected from the attribute run that may precede
// a declaration.
type declAttrs struct {
	storage    ast.StorageFlags
	quals      ast.QualifierFlags
	isProperty bool
}

func qualBit(k token.Kind) ast.QualifierFlags {
	switch k {
	case token.KwConst:
		return ast.QualConst
	case token.KwImmutable:
		return ast.QualImmutable
	case token.KwInout:
		return ast.QualInout
	}
	return 0
}

// collectPrefixAttrs consumes storage classes, protection attributes,
// qualifiers, and '@' attributes written before a declaration. A qualifier
// directly followed by '(' is a type constructor opening the return type and
// terminates the run.
func (p *Parser) collectPrefixAttrs() declAttrs {
	var a declAttrs
	for {
		switch p.kind() {
		case token.KwStatic:
			a.storage |= ast.StorageStatic
			p.advance()
		case token.KwAbstract:
			a.storage |= ast.StorageAbstract
			p.advance()
		case token.KwFinal:
			a.storage |= ast.StorageFinal
			p.advance()
		case token.KwOverride:
			a.storage |= ast.StorageOverride
			p.advance()
		case token.KwPure:
			a.storage |= ast.StoragePure
			p.advance()
		case token.KwNothrow:
			a.storage |= ast.StorageNothrow
			p.advance()
		case token.KwRef:
			a.storage |= ast.StorageRef
			p.advance()
		case token.KwAuto:
			a.storage |= ast.StorageAuto
			p.advance()
		case token.KwConst, token.KwImmutable, token.KwInout:
			if p.peekKind(1) == token.LParen {
				return a
			}
			a.quals |= qualBit(p.kind())
			p.advance()
		case token.KwShared:
			if p.peekKind(1) == token.LParen {
				return a
			}
			p.advance()
		case token.KwScope, token.KwPublic, token.KwPrivate, token.KwProtected,
			token.KwExport, token.KwLazy:
			p.advance()
		case token.KwPackage, token.KwExtern, token.KwAlign:
			p.advance()
			if p.at(token.LParen) {
				p.skipBalanced(token.LParen, token.RParen)
			}
		case token.At:
			p.advance()
			p.collectAtAttr(&a)
		default:
			return a
		}
	}
}

// collectAtAttr consumes the attribute body after a consumed '@'. Only
// '@property' resolves onto the declaration; every other attribute is
// consumed and ignored.
func (p *Parser) collectAtAttr(a *declAttrs) {
	switch {
	case p.at(token.Ident):
		if p.cur().IsIdentText("property") {
			a.isProperty = true
		}
		p.advance()
		if p.at(token.LParen) {
			p.skipBalanced(token.LParen, token.RParen)
		}
	case p.at(token.LParen):
		p.skipBalanced(token.LParen, token.RParen)
	}
}
