package fix

import (
	"os"
	"path/filepath"
	"testing"

	"dlint/internal/diag"
	"dlint/internal/source"
)

func writeFixture(t *testing.T, content string) (*source.FileSet, source.FileID, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "a.d")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return fs, id, path
}

func span(id source.FileID, start, end uint32) source.Span {
	return source.Span{File: id, Start: start, End: end}
}

func TestApplyReplacesText(t *testing.T) {
	fs, id, path := writeFixture(t, "const int foo() {}\n")

	d := diag.Diagnostic{Code: diag.LintFunctionAttribute}
	d = d.WithFix("move 'const' after the parameter list",
		diag.FixEdit{Span: span(id, 0, 6), OldText: "const "},
		diag.FixEdit{Span: span(id, 15, 15), NewText: " const"},
	)

	result, err := Apply(fs, []diag.Diagnostic{d}, false)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(result.Applied) != 1 || result.Applied[0].EditCount != 2 {
		t.Fatalf("applied = %+v", result.Applied)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "int foo() const {}\n" {
		t.Fatalf("content = %q", got)
	}
}

func TestApplyGuardMismatchSkips(t *testing.T) {
	fs, id, path := writeFixture(t, "immutable int foo() {}\n")

	d := diag.Diagnostic{Code: diag.LintFunctionAttribute}
	d = d.WithFix("remove qualifier",
		diag.FixEdit{Span: span(id, 0, 6), OldText: "const "})

	result, err := Apply(fs, []diag.Diagnostic{d}, false)
	if err != ErrNoFixes {
		t.Fatalf("err = %v, want ErrNoFixes", err)
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("skipped = %+v", result.Skipped)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "immutable int foo() {}\n" {
		t.Fatalf("file changed: %q", got)
	}
}

func TestApplyConflictingFixesFirstWins(t *testing.T) {
	fs, id, path := writeFixture(t, "abstract void f();\n")

	first := diag.Diagnostic{Code: diag.LintFunctionAttribute}
	first = first.WithFix("remove 'abstract'",
		diag.FixEdit{Span: span(id, 0, 9), OldText: "abstract "})
	second := diag.Diagnostic{Code: diag.LintFunctionAttribute}
	second = second.WithFix("also remove 'abstract'",
		diag.FixEdit{Span: span(id, 0, 8), OldText: "abstract"})

	result, err := Apply(fs, []diag.Diagnostic{first, second}, false)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(result.Applied) != 1 {
		t.Fatalf("applied = %+v", result.Applied)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Title != "also remove 'abstract'" {
		t.Fatalf("skipped = %+v", result.Skipped)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "void f();\n" {
		t.Fatalf("content = %q", got)
	}
}

func TestApplyDryRunLeavesFiles(t *testing.T) {
	fs, id, path := writeFixture(t, "abstract void f();\n")

	d := diag.Diagnostic{Code: diag.LintFunctionAttribute}
	d = d.WithFix("remove 'abstract'",
		diag.FixEdit{Span: span(id, 0, 9), OldText: "abstract "})

	result, err := Apply(fs, []diag.Diagnostic{d}, true)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(result.Changes) != 1 || result.Changes[0].EditCount != 1 {
		t.Fatalf("changes = %+v", result.Changes)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "abstract void f();\n" {
		t.Fatalf("dry run modified the file: %q", got)
	}
}

func TestApplyRefusesVirtualFiles(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.d", []byte("abstract void f();\n"))

	d := diag.Diagnostic{Code: diag.LintFunctionAttribute}
	d = d.WithFix("remove 'abstract'",
		diag.FixEdit{Span: span(id, 0, 9), OldText: "abstract "})

	result, err := Apply(fs, []diag.Diagnostic{d}, false)
	if err != ErrNoFixes {
		t.Fatalf("err = %v, want ErrNoFixes", err)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Reason != "target file is virtual" {
		t.Fatalf("skipped = %+v", result.Skipped)
	}
}
