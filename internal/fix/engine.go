package fix

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"dlint/internal/diag"
	"dlint/internal/source"
)

// ErrNoFixes is returned when no fix could be applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// Applied records a fix that made it into a file.
type Applied struct {
	Title     string
	Code      diag.Code
	Message   string
	Path      string
	EditCount int
}

// Skipped records a fix that was rejected, with the reason.
type Skipped struct {
	Title  string
	Reason string
}

// FileChange summarises the edits written to one file.
type FileChange struct {
	Path      string
	EditCount int
}

// Result aggregates the outcome of an Apply run.
type Result struct {
	Applied []Applied
	Skipped []Skipped
	Changes []FileChange
}

// Apply applies the suggested fixes carried by diagnostics to the files in
// fs. Every edit span refers to the original file content, so fixes are
// accepted or rejected against original coordinates: a fix whose edits
// overlap an already accepted edit is skipped whole. When dryRun is set the
// files are left untouched and only the Result reports what would change.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, dryRun bool) (*Result, error) {
	if fs == nil {
		return nil, fmt.Errorf("fix: nil FileSet")
	}

	result := &Result{}
	accepted := make(map[source.FileID][]diag.FixEdit)

	for _, d := range diagnostics {
		for _, f := range d.Fixes {
			if len(f.Edits) == 0 {
				result.Skipped = append(result.Skipped, Skipped{Title: f.Title, Reason: "fix has no edits"})
				continue
			}
			if reason := vet(fs, accepted, f.Edits); reason != "" {
				result.Skipped = append(result.Skipped, Skipped{Title: f.Title, Reason: reason})
				continue
			}
			for _, e := range f.Edits {
				accepted[e.Span.File] = append(accepted[e.Span.File], e)
			}
			result.Applied = append(result.Applied, Applied{
				Title:     f.Title,
				Code:      d.Code,
				Message:   d.Message,
				Path:      fs.Get(f.Edits[0].Span.File).FormatPath("relative", fs.BaseDir()),
				EditCount: len(f.Edits),
			})
		}
	}

	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}

	for fileID, edits := range accepted {
		file := fs.Get(fileID)
		buf := rewrite(file.Content, edits)
		if !dryRun {
			mode := os.FileMode(0o644)
			if info, err := os.Stat(file.Path); err == nil {
				mode = info.Mode()
			}
			if err := os.WriteFile(file.Path, buf, mode); err != nil {
				return result, fmt.Errorf("write %s: %w", file.Path, err)
			}
		}
		result.Changes = append(result.Changes, FileChange{
			Path:      file.FormatPath("relative", fs.BaseDir()),
			EditCount: len(edits),
		})
	}
	sort.Slice(result.Changes, func(i, j int) bool {
		return result.Changes[i].Path < result.Changes[j].Path
	})
	return result, nil
}

// vet checks a fix's edits against the file set and the edits accepted so
// far. It returns "" when the fix is applicable, otherwise the skip reason.
func vet(fs *source.FileSet, accepted map[source.FileID][]diag.FixEdit, edits []diag.FixEdit) string {
	for _, e := range edits {
		file := fs.Get(e.Span.File)
		if file == nil {
			return "edit targets unknown file"
		}
		if file.Flags&source.FileVirtual != 0 {
			return "target file is virtual"
		}
		if e.Span.End < e.Span.Start || int(e.Span.End) > len(file.Content) {
			return "edit span out of range"
		}
		if e.OldText != "" && string(file.Content[e.Span.Start:e.Span.End]) != e.OldText {
			return "existing text does not match expected content"
		}
		for _, prev := range accepted[e.Span.File] {
			if editsConflict(prev, e) {
				return fmt.Sprintf("conflicts with an already applied edit in %s", file.FormatPath("relative", fs.BaseDir()))
			}
		}
		for _, other := range edits {
			if other != e && other.Span.File == e.Span.File && editsConflict(other, e) {
				return "fix edits overlap each other"
			}
		}
	}
	return ""
}

// editsConflict reports whether two edits' spans overlap. Spans are half-open
// intervals; two insertions at the same position conflict because their order
// would be ambiguous.
func editsConflict(a, b diag.FixEdit) bool {
	if a.Span.Empty() && b.Span.Empty() {
		return a.Span.Start == b.Span.Start
	}
	if a.Span.Empty() {
		return b.Span.Start <= a.Span.Start && a.Span.Start < b.Span.End
	}
	if b.Span.Empty() {
		return a.Span.Start <= b.Span.Start && b.Span.Start < a.Span.End
	}
	return a.Span.Start < b.Span.End && b.Span.Start < a.Span.End
}

// rewrite applies edits to content in descending start order, so earlier
// offsets stay valid while later ones are already rewritten.
func rewrite(content []byte, edits []diag.FixEdit) []byte {
	sorted := append([]diag.FixEdit(nil), edits...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Span.Start > sorted[j].Span.Start
	})
	buf := append([]byte(nil), content...)
	for _, e := range sorted {
		tail := append([]byte(nil), buf[e.Span.End:]...)
		buf = append(append(buf[:e.Span.Start], []byte(e.NewText)...), tail...)
	}
	return buf
}
