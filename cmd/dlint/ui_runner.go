package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"dlint/internal/driver"
	"dlint/internal/lintpipeline"
	"dlint/internal/source"
	"dlint/internal/ui"
)

type checkOutcome struct {
	fileSet *source.FileSet
	results []driver.CheckResult
	err     error
}

// runCheckDirWithUI runs CheckDir in the background while a Bubble Tea
// progress view consumes its events on the terminal.
func runCheckDirWithUI(ctx context.Context, dir string, opts driver.Options) (*source.FileSet, []driver.CheckResult, error) {
	files, err := driver.ListFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	events := make(chan lintpipeline.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = lintpipeline.ChannelSink{Ch: events}
		fileSet, results, err := driver.CheckDir(ctx, dir, optsCopy)
		outcomeCh <- checkOutcome{fileSet: fileSet, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("linting "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
