package lint

import (
	"fmt"
	"sort"

	"dlint/internal/ast"
	"dlint/internal/diag"
	"dlint/internal/source"
	"dlint/internal/token"
)

const (
	abstractMsg = "'abstract' attribute is redundant in interface declarations"
	constMsg    = "Zero-parameter '@property' function should be marked 'const', 'inout', or 'immutable'."

	returnMsgFmt = "'%s' is not an attribute of the return type. Place it after the parameter list to clarify."
)

// FuncAttrRule flags member function qualifiers written before the return
// type instead of after the parameter list, zero-parameter properties that
// should carry a qualifier, and redundant 'abstract' on interface methods.
//
// The declaration tree records that a qualifier resolved onto a function's
// type but not where it was written, so the rule re-reads the file's token
// list: a resolved qualifier with no qualifier token after the parameter
// list must have come from the prefix position.
type FuncAttrRule struct {
	inAggregate bool
	inInterface bool
}

// NewFuncAttrRule creates the check.
func NewFuncAttrRule() *FuncAttrRule { return &FuncAttrRule{} }

func (r *FuncAttrRule) Name() string    { return diag.LintFunctionAttribute.Key() }
func (r *FuncAttrRule) Code() diag.Code { return diag.LintFunctionAttribute }

func (r *FuncAttrRule) Run(ctx *Context) {
	r.inAggregate = false
	r.inInterface = false
	r.walk(ctx, ctx.Tree.Decls)
}

func (r *FuncAttrRule) walk(ctx *Context, decls []ast.Decl) {
	for _, d := range decls {
		switch d := d.(type) {
		case *ast.AggregateDecl:
			r.enterAggregate(ctx, d)
		case *ast.FuncDecl:
			r.checkFunc(ctx, d)
		}
	}
}

// enterAggregate saves the scope flags in its own call frame and restores
// them on return, so sibling subtrees never see each other's state.
func (r *FuncAttrRule) enterAggregate(ctx *Context, d *ast.AggregateDecl) {
	savedAggregate, savedInterface := r.inAggregate, r.inInterface
	r.inInterface = d.Kind == ast.AggInterface
	r.inAggregate = !r.isStaticAggregate(ctx, d)
	r.walk(ctx, d.Members)
	r.inAggregate, r.inInterface = savedAggregate, savedInterface
}

// isStaticAggregate reports whether a 'static' keyword precedes the
// aggregate keyword on its own line. Static nested aggregates are pure
// namespacing, qualifier advice inside them would be noise.
func (r *FuncAttrRule) isStaticAggregate(ctx *Context, d *ast.AggregateDecl) bool {
	kwPos := ctx.Pos(d.KeywordSpan)
	for _, tok := range ctx.Tokens {
		if !tok.Kind.IsDeclAttrKeyword() {
			continue
		}
		pos := ctx.Pos(tok.Span)
		if pos.Line != kwPos.Line || pos.Col > kwPos.Col {
			continue
		}
		if tok.Kind == token.KwStatic {
			return true
		}
	}
	return false
}

func (r *FuncAttrRule) checkFunc(ctx *Context, fn *ast.FuncDecl) {
	sig := fn.Signature
	if sig == nil {
		return
	}
	if r.inInterface && fn.Storage.Has(ast.StorageAbstract) {
		b := diag.ReportWarning(ctx.Reporter, diag.LintFunctionAttribute, fn.NameSpan, abstractMsg)
		if i := prefixTokenIndex(ctx.Tokens, fn.NameSpan, isAbstractKeyword(ctx.Tokens)); i >= 0 {
			sp, old := deletionSpan(ctx.File, ctx.Tokens[i])
			b.WithFix("remove redundant 'abstract'", diag.FixEdit{Span: sp, OldText: old})
		}
		b.Emit()
	}
	if !r.inAggregate {
		return
	}
	window := signatureWindow(ctx.Tokens, fn.NameSpan.Start)
	qualifier := sig.Qualifiers.Keyword()
	if qualifier == "" {
		zeroParamProperty := sig.IsProperty && sig.ParamCount == 0
		if !fn.Storage.Has(ast.StorageStatic) && zeroParamProperty && propertyAfterParams(window) {
			r.emit(ctx, fn, constMsg)
		}
		return
	}
	if !hasSuffixQualifier(window) {
		b := diag.ReportWarning(ctx.Reporter, diag.LintFunctionAttribute, fn.NameSpan,
			fmt.Sprintf(returnMsgFmt, qualifier))
		i := prefixTokenIndex(ctx.Tokens, fn.NameSpan, isPrefixQualifier(ctx.Tokens, qualifier))
		if insertAt, ok := paramListEnd(window); ok && i >= 0 {
			sp, old := deletionSpan(ctx.File, ctx.Tokens[i])
			b.WithFix(fmt.Sprintf("move '%s' after the parameter list", qualifier),
				diag.FixEdit{Span: sp, OldText: old},
				diag.FixEdit{Span: insertAt, NewText: " " + qualifier})
		}
		b.Emit()
	}
}

// signatureWindow returns the tokens strictly after the given offset up to
// but excluding the first open brace: the parameter list and attribute
// suffix, without the body.
func signatureWindow(tokens []token.Token, after uint32) []token.Token {
	start := sort.Search(len(tokens), func(i int) bool {
		return tokens[i].Span.Start > after
	})
	window := tokens[start:]
	for i, tok := range window {
		if tok.Kind == token.LBrace {
			return window[:i]
		}
	}
	return window
}

// propertyAfterParams reports whether a 'property' attribute identifier sits
// after the parameter list: scanning backwards, it must appear before the
// first close parenthesis.
func propertyAfterParams(window []token.Token) bool {
	for i := len(window) - 1; i >= 0; i-- {
		if window[i].Kind == token.RParen {
			return false
		}
		if window[i].IsIdentText("property") {
			return true
		}
	}
	return false
}

// hasSuffixQualifier reports whether any qualifier token appears in the
// window. The window starts after the declaration's name, so a hit can only
// come from the suffix position.
func hasSuffixQualifier(window []token.Token) bool {
	for i := len(window) - 1; i >= 0; i-- {
		if window[i].Kind.IsQualifier() {
			return true
		}
	}
	return false
}

func (r *FuncAttrRule) emit(ctx *Context, fn *ast.FuncDecl, msg string) {
	diag.ReportWarning(ctx.Reporter, diag.LintFunctionAttribute, fn.NameSpan, msg).Emit()
}

// prefixTokenIndex scans backwards from the declaration's name for the first
// token accepted by match, stopping at the end of the previous declaration.
func prefixTokenIndex(tokens []token.Token, name source.Span, match func(int) bool) int {
	nameIdx := sort.Search(len(tokens), func(i int) bool {
		return tokens[i].Span.Start >= name.Start
	})
	for i := nameIdx - 1; i >= 0; i-- {
		switch tokens[i].Kind {
		case token.Semicolon, token.LBrace, token.RBrace, token.Colon:
			return -1
		}
		if match(i) {
			return i
		}
	}
	return -1
}

func isAbstractKeyword(tokens []token.Token) func(int) bool {
	return func(i int) bool { return tokens[i].Kind == token.KwAbstract }
}

// isPrefixQualifier matches the qualifier keyword written in declaration
// position; a qualifier followed by an open parenthesis is a type constructor
// and never the one being moved.
func isPrefixQualifier(tokens []token.Token, keyword string) func(int) bool {
	return func(i int) bool {
		if !tokens[i].Kind.IsQualifier() || tokens[i].Text != keyword {
			return false
		}
		return i+1 >= len(tokens) || tokens[i+1].Kind != token.LParen
	}
}

// deletionSpan widens a token's span over the whitespace that follows it, so
// removing the token does not leave a double gap.
func deletionSpan(file *source.File, tok token.Token) (source.Span, string) {
	end := tok.Span.End
	for int(end) < len(file.Content) && (file.Content[end] == ' ' || file.Content[end] == '\t') {
		end++
	}
	sp := source.Span{File: tok.Span.File, Start: tok.Span.Start, End: end}
	return sp, string(file.Content[sp.Start:sp.End])
}

// paramListEnd returns a zero-length span just past the close parenthesis of
// the parameter list, the insertion point for a relocated qualifier.
func paramListEnd(window []token.Token) (source.Span, bool) {
	depth := 0
	for _, tok := range window {
		switch tok.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return source.Span{File: tok.Span.File, Start: tok.Span.End, End: tok.Span.End}, true
			}
		}
	}
	return source.Span{}, false
}
