package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"dlint/internal/diag"
	"dlint/internal/lintpipeline"
	"dlint/internal/source"
)

// ListFiles returns the sorted list of all *.d files under dir.
func ListFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".d") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// deterministic order regardless of walk details
	sort.Strings(files)
	return files, nil
}

// CheckDir lints every *.d file under dir in parallel. Files are preloaded
// into the FileSet serially; the per-file pipelines then run under an
// errgroup with a bounded worker count. Results keep the sorted file order.
func CheckDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []CheckResult, error) {
	files, err := ListFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// indices are unique per goroutine, no mutex needed
	results := make([]CheckResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				emit(opts.Sink, lintpipeline.Event{File: path, Stage: lintpipeline.StageCheck, Status: lintpipeline.StatusWorking})
				started := time.Now()

				if loadErr, hadError := loadErrors[path]; hadError {
					bag := diag.NewBag(opts.maxDiagnostics())
					bag.Add(diag.Diagnostic{
						Severity: diag.SevError,
						Code:     diag.IOLoadFileError,
						Message:  "failed to load file: " + loadErr.Error(),
					})
					results[i] = CheckResult{Path: path, Bag: bag}
					emit(opts.Sink, lintpipeline.Event{
						File: path, Stage: lintpipeline.StageCheck,
						Status: lintpipeline.StatusError, Err: loadErr,
						Elapsed: time.Since(started),
					})
					return nil
				}

				fileID := fileIDs[path]
				if cached, ok := lookupCache(fileSet, fileID, opts); ok {
					results[i] = cached
				} else {
					res := CheckFile(fileSet, fileID, opts)
					storeCache(fileSet, fileID, res, opts)
					results[i] = res
				}

				emit(opts.Sink, lintpipeline.Event{
					File: path, Stage: lintpipeline.StageCheck,
					Status:  lintpipeline.StatusDone,
					Elapsed: time.Since(started),
				})
				return nil
			}
		}(i, path))
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func emit(sink lintpipeline.ProgressSink, evt lintpipeline.Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}

// MergeBags collects every per-file bag into one sorted bag.
func MergeBags(results []CheckResult) *diag.Bag {
	total := 0
	for _, res := range results {
		if res.Bag != nil {
			total += res.Bag.Len()
		}
	}
	merged := diag.NewBag(total)
	for _, res := range results {
		if res.Bag != nil {
			merged.Merge(res.Bag)
		}
	}
	merged.Sort()
	return merged
}
