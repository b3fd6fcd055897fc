package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"dlint/internal/ast"
	"dlint/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) every declaration span is non-empty and within file content bounds
// 2) every declaration span points at the file it was parsed from
// 3) aggregate members are fully contained in their parent's span
func CheckSpanInvariants(tree *ast.File, sf *source.File) error {
	if tree == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	return checkDecls(tree.Decls, source.Span{File: sf.ID, Start: 0, End: lenContent}, sf.ID)
}

func checkDecls(decls []ast.Decl, parent source.Span, fileID source.FileID) error {
	for _, d := range decls {
		sp := d.DeclSpan()
		if sp.End <= sp.Start {
			return fmt.Errorf("empty declaration span: %v", sp)
		}
		if sp.File != fileID {
			return fmt.Errorf("declaration span file mismatch: got=%d want=%d", sp.File, fileID)
		}
		if sp.Start < parent.Start || sp.End > parent.End {
			return fmt.Errorf("declaration span %v is outside enclosing span %v", sp, parent)
		}
		agg, ok := d.(*ast.AggregateDecl)
		if !ok {
			continue
		}
		if agg.KeywordSpan.Start < sp.Start || agg.KeywordSpan.End > sp.End {
			return fmt.Errorf("aggregate keyword span %v escapes declaration span %v", agg.KeywordSpan, sp)
		}
		if err := checkDecls(agg.Members, sp, fileID); err != nil {
			return err
		}
	}
	return nil
}
