package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lexpath/lexpath"
	"github.com/lexpath/lexpath/dirlist"
	"github.com/lexpath/lexpath/internal/configuration"
	"github.com/lexpath/lexpath/internal/util"
	"github.com/lexpath/lexpath/pathid"
	"github.com/lexpath/lexpath/workdir"
)

// App is the principal structure for batch processing of input paths.
type App struct {
	settings configuration.Settings

	grammar     lexpath.Grammar
	idHandler   *pathid.Handler
	listHandler *dirlist.Handler
	wdHandler   *workdir.Handler
}

// result holds the outcome of processing a single input path.
type result struct {
	line   string
	failed bool
	err    error
}

// NewApp returns a pointer to a new [App] with all handlers established
// from the given settings.
func NewApp(settings configuration.Settings) *App {
	return &App{
		settings:    settings,
		grammar:     settings.Grammar,
		idHandler:   pathid.NewHandler(settings.Grammar),
		listHandler: dirlist.NewHandler(settings.Grammar, &dirlist.OS{}),
		wdHandler:   workdir.NewHandler(settings.Grammar, &workdir.OS{}),
	}
}

// Run applies the named operation to all input paths and writes the results
// to standard output in input order. Paths are taken from the command line
// arguments, or read from standard input when no arguments were given.
func (app *App) Run(ctx context.Context, opName string, args []string) error {
	start := time.Now()

	opFunc, err := app.operation(ctx, opName)
	if err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		inputs, err = readPaths(os.Stdin)
		if err != nil {
			return fmt.Errorf("(app) %w", err)
		}
	}

	maxWorkers := app.settings.Workers
	if maxWorkers < 1 {
		maxWorkers = runtime.NumCPU()
	}

	results, err := util.ConcurrentMapSlice(ctx, maxWorkers, inputs, opFunc)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	writer := bufio.NewWriter(os.Stdout)

	var failed int

	for _, res := range results {
		if res.err != nil {
			failed++
			slog.Error("Failed to process path.", "err", res.err)

			continue
		}

		if res.failed {
			failed++
		}

		if res.line != "" {
			fmt.Fprintln(writer, res.line)
		}
	}

	writer.Flush() //nolint:errcheck

	slog.Debug("Processed all paths.",
		"count", humanize.Comma(int64(len(results))),
		"failed", humanize.Comma(int64(failed)),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	if failed > 0 {
		return fmt.Errorf("(app) %w", ErrProcessingFailed)
	}

	return nil
}

// operation resolves an operation name into the function applied to every
// input path.
//
//nolint:funlen
func (app *App) operation(ctx context.Context, name string) (func(string) result, error) {
	switch name {
	case "normalize":
		return func(path string) result {
			return result{line: app.grammar.Normalize(path)}
		}, nil

	case "canonical":
		return func(path string) result {
			return result{line: app.idHandler.Canonical(path)}
		}, nil

	case "id":
		return func(path string) result {
			return result{line: app.idHandler.ID(path) + "  " + path}
		}, nil

	case "shortid":
		return func(path string) result {
			return result{line: app.idHandler.ShortID(path) + "  " + path}
		}, nil

	case "split":
		return func(path string) result {
			return result{line: strings.Join(app.grammar.SplitList(path), "\t")}
		}, nil

	case "parts":
		return func(path string) result {
			parts := app.grammar.SplitAll(path)

			return result{line: fmt.Sprintf("drive=%q dir=%q stem=%q ext=%q hasext=%t",
				parts.Drive, parts.Dir, parts.Stem, parts.Ext, parts.HasExt)}
		}, nil

	case "validate":
		return func(path string) result {
			if !app.grammar.Validate(path, app.settings.Strict) {
				return result{line: "invalid\t" + path, failed: true}
			}

			return result{line: "valid\t" + path}
		}, nil

	case "abs":
		return func(path string) result {
			resolved, err := app.abs(path)
			if err != nil {
				return result{err: err}
			}

			return result{line: resolved}
		}, nil

	case "list":
		return func(path string) result {
			dir, err := app.abs(path)
			if err != nil {
				return result{err: err}
			}

			entries, err := app.list(ctx, dir)
			if err != nil {
				return result{err: err}
			}

			return result{line: entryLines(entries)}
		}, nil

	case "walk":
		return func(path string) result {
			dir, err := app.abs(path)
			if err != nil {
				return result{err: err}
			}

			entries, err := app.listHandler.Walk(ctx, dir)
			if err != nil {
				return result{err: err}
			}

			return result{line: entryLines(entries)}
		}, nil

	default:
		return nil, fmt.Errorf("(app) %w: %q", ErrUnknownOperation, name)
	}
}

// entryLines renders directory entries one path per line.
func entryLines(entries []*dirlist.Entry) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, entry.Path)
	}

	return strings.Join(lines, "\n")
}

// abs resolves a path against the configured base, or against the process
// working directory when no base was configured.
func (app *App) abs(path string) (string, error) {
	if app.settings.Base != "" {
		return app.grammar.Normalize(app.grammar.Join(app.settings.Base, path)), nil
	}

	return app.wdHandler.Abs(path)
}

// list reads a directory into described entries, filtered by the extension
// filter when one was given on the command line.
func (app *App) list(ctx context.Context, path string) ([]*dirlist.Entry, error) {
	if *extFilter != "" {
		return app.listHandler.ListExt(ctx, path, *extFilter)
	}

	return app.listHandler.List(ctx, path)
}

// readPaths reads newline-separated input paths from a reader.
func readPaths(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)

	var paths []string
	for scanner.Scan() {
		paths = append(paths, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return paths, nil
}
