package lintfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"dlint/internal/diag"
	"dlint/internal/source"
)

// Pretty renders diagnostics in a human-readable form. Walks bag.Items() in
// order (callers are expected to Sort the bag first). For each diagnostic:
//
//	<path>:<line>:<col>: <SEV> <key>: <message>
//	    <source line>
//	    ^~~~~
//
// followed by notes in the same shape when ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, d, fs, opts)
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	label := d.Code.ID()
	if key := d.Code.Key(); key != "" {
		label = key
	}

	head := fmt.Sprintf("%s:%d:%d:", formatPath(f, fs, opts.PathMode), start.Line, start.Col)
	sev := d.Severity.String()
	if opts.Color {
		head = color.New(color.Bold).Sprint(head)
		sev = severityColor(d.Severity).Sprint(sev)
		label = color.New(color.Faint).Sprint(label)
	}
	fmt.Fprintf(w, "%s %s %s: %s\n", head, sev, label, d.Message)

	printContext(w, f, start, end, d.Severity, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			noteStart, noteEnd := fs.Resolve(note.Span)
			fmt.Fprintf(w, "%s:%d:%d: note: %s\n",
				formatPath(f, fs, opts.PathMode), noteStart.Line, noteStart.Col, note.Msg)
			printContext(w, fs.Get(note.Span.File), noteStart, noteEnd, diag.SevInfo, opts)
		}
	}
}

// printContext prints the first source line of the span with a caret
// underline beneath it. Multi-line spans are underlined to the end of the
// first line.
func printContext(w io.Writer, f *source.File, start, end source.LineCol, sev diag.Severity, opts PrettyOpts) {
	line := f.GetLine(start.Line)
	if line == "" || start.Col == 0 {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	width := uint32(1)
	if end.Line == start.Line && end.Col > start.Col {
		width = end.Col - start.Col
	} else if end.Line > start.Line {
		if lineLen := uint32(len(line)); lineLen+1 > start.Col {
			width = lineLen + 1 - start.Col
		}
	}

	var pad strings.Builder
	for i := uint32(0); i < start.Col-1 && int(i) < len(line); i++ {
		// keep tabs so the caret lines up under tab-indented code
		if line[i] == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	marker := "^" + strings.Repeat("~", int(width)-1)
	if opts.Color {
		marker = severityColor(sev).Sprint(marker)
	}
	fmt.Fprintf(w, "    %s%s\n", pad.String(), marker)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
