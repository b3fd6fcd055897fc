package driver

import (
	"dlint/internal/diag"
	"dlint/internal/lexer"
	"dlint/internal/source"
	"dlint/internal/token"
)

// TokenizeResult is the outcome of tokenizing one file.
type TokenizeResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// TokenizePath loads one file and tokenizes it. Unlike the check pipeline,
// the token dump surfaces lexical errors.
func TokenizePath(fileSet *source.FileSet, path string, maxDiagnostics int) TokenizeResult {
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiagnostics)

	fileID, err := fileSet.Load(path)
	if err != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOLoadFileError,
			Message:  "failed to load file: " + err.Error(),
		})
		return TokenizeResult{Path: path, Bag: bag}
	}

	file := fileSet.Get(fileID)
	reporter := (&lexer.ReporterAdapter{Bag: bag}).Reporter()
	tokens := lexer.ScanAll(file, lexer.Options{Reporter: reporter})

	return TokenizeResult{
		Path:   file.Path,
		FileID: fileID,
		Tokens: tokens,
		Bag:    bag,
	}
}
