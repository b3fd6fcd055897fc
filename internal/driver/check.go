// Package driver runs the lint pipeline over files and directories:
// tokenize, parse, check, with optional result caching and parallel
// directory walks.
package driver

import (
	"time"

	"dlint/internal/diag"
	"dlint/internal/lexer"
	"dlint/internal/lint"
	"dlint/internal/lintpipeline"
	"dlint/internal/parser"
	"dlint/internal/source"
)

// DefaultMaxDiagnostics caps the bag when the caller does not.
const DefaultMaxDiagnostics = 256

// Options configures a check run.
type Options struct {
	MaxDiagnostics int
	Jobs           int
	Config         lint.Config
	Registry       *lint.Registry
	Sink           lintpipeline.ProgressSink
	Cache          *DiskCache
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

func (o Options) registry() *lint.Registry {
	if o.Registry == nil {
		return lint.Default()
	}
	return o.Registry
}

// CheckResult is the outcome of linting one file.
type CheckResult struct {
	Path      string
	FileID    source.FileID
	Bag       *diag.Bag
	Timings   lintpipeline.Timings
	FromCache bool
}

// CheckFile lints one already-loaded file: tokenize, parse, run the enabled
// checks. Lexical errors are swallowed during tokenization; the checks work
// on a best-effort token list and the parser reports what actually blocks
// the declaration tree.
func CheckFile(fileSet *source.FileSet, fileID source.FileID, opts Options) CheckResult {
	file := fileSet.Get(fileID)
	bag := diag.NewBag(opts.maxDiagnostics())
	var timings lintpipeline.Timings

	start := time.Now()
	tokens := lexer.ScanAll(file, lexer.Options{})
	timings.Set(lintpipeline.StageTokenize, time.Since(start))

	start = time.Now()
	tree := parser.ParseFile(tokens, parser.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})
	timings.Set(lintpipeline.StageParse, time.Since(start))

	start = time.Now()
	reporter := diag.NewDedupReporter(&diag.BagReporter{Bag: bag})
	ctx := &lint.Context{
		FileSet:  fileSet,
		File:     file,
		Tree:     tree,
		Tokens:   tokens,
		Reporter: reporter,
	}
	for _, rule := range opts.registry().Enabled(opts.Config) {
		rule.Run(ctx)
	}
	timings.Set(lintpipeline.StageCheck, time.Since(start))

	bag.Sort()
	return CheckResult{
		Path:    file.Path,
		FileID:  fileID,
		Bag:     bag,
		Timings: timings,
	}
}

// CheckPath loads one file from disk and lints it, consulting the disk cache
// when one is configured.
func CheckPath(fileSet *source.FileSet, path string, opts Options) CheckResult {
	fileID, err := fileSet.Load(path)
	if err != nil {
		bag := diag.NewBag(opts.maxDiagnostics())
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOLoadFileError,
			Message:  "failed to load file: " + err.Error(),
		})
		return CheckResult{Path: path, Bag: bag}
	}

	if cached, ok := lookupCache(fileSet, fileID, opts); ok {
		return cached
	}
	res := CheckFile(fileSet, fileID, opts)
	storeCache(fileSet, fileID, res, opts)
	return res
}

func lookupCache(fileSet *source.FileSet, fileID source.FileID, opts Options) (CheckResult, bool) {
	if opts.Cache == nil {
		return CheckResult{}, false
	}
	file := fileSet.Get(fileID)
	key := cacheKey(file, opts.Config)
	var payload CachePayload
	ok, err := opts.Cache.Get(key, &payload)
	if err != nil || !ok {
		return CheckResult{}, false
	}
	bag := payload.toBag(fileID, opts.maxDiagnostics())
	if bag == nil {
		return CheckResult{}, false
	}
	return CheckResult{
		Path:      file.Path,
		FileID:    fileID,
		Bag:       bag,
		FromCache: true,
	}, true
}

func storeCache(fileSet *source.FileSet, fileID source.FileID, res CheckResult, opts Options) {
	if opts.Cache == nil {
		return
	}
	file := fileSet.Get(fileID)
	// a full bag may have dropped findings; never cache a truncated result
	if res.Bag.Len() >= int(res.Bag.Cap()) {
		return
	}
	payload := payloadFromBag(res.Bag)
	_ = opts.Cache.Put(cacheKey(file, opts.Config), payload)
}
