package lint

import (
	"dlint/internal/ast"
	"dlint/internal/diag"
	"dlint/internal/source"
	"dlint/internal/token"
)

// Context is the per-file input handed to every check: the resolved file,
// its full token list, the declaration tree, and the reporter receiving
// diagnostics. The token list is read-only and shared across checks.
type Context struct {
	FileSet  *source.FileSet
	File     *source.File
	Tree     *ast.File
	Tokens   []token.Token
	Reporter diag.Reporter
}

// Pos resolves a span to its starting line and column.
func (c *Context) Pos(sp source.Span) source.LineCol {
	return c.FileSet.Pos(sp)
}
