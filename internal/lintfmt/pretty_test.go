package lintfmt

import (
	"bytes"
	"strings"
	"testing"

	"dlint/internal/diag"
	"dlint/internal/source"
)

func TestPrettyBasic(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("class C\n{\n\tconst int bar();\n}\n")
	fileID := fs.AddVirtual("test.d", content)

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.LintFunctionAttribute,
		Message:  "'const' is not an attribute of the return type. Place it after the parameter list to clarify.",
		Primary:  source.Span{File: fileID, Start: 21, End: 24},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	out := buf.String()

	if !strings.Contains(out, "test.d:3:12: WARNING function_attribute_check:") {
		t.Errorf("missing header line:\n%s", out)
	}
	if !strings.Contains(out, "const int bar();") {
		t.Errorf("missing source context:\n%s", out)
	}
	if !strings.Contains(out, "^~~") {
		t.Errorf("missing caret underline:\n%s", out)
	}
}

func TestPrettyNonLintUsesCodeID(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.d", []byte("\"oops\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnterminatedString,
		Message:  "unterminated string literal",
		Primary:  source.Span{File: fileID, Start: 0, End: 5},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if !strings.Contains(buf.String(), "ERROR LEX1002:") {
		t.Errorf("missing code ID:\n%s", buf.String())
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.d", []byte("int x;\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.LintFunctionAttribute,
		Message:  "main finding",
		Primary:  source.Span{File: fileID, Start: 0, End: 3},
		Notes: []diag.Note{
			{Span: source.Span{File: fileID, Start: 4, End: 5}, Msg: "related here"},
		},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true})
	if !strings.Contains(buf.String(), "note: related here") {
		t.Errorf("missing note:\n%s", buf.String())
	}
}
