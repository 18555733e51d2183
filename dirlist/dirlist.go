// Package dirlist reads real directory contents and describes every entry
// in path-engine terms. It is the only package of the module that touches
// the filesystem; the engine itself never does.
package dirlist

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lexpath/lexpath"
)

type osProvider interface {
	ReadDir(name string) ([]os.DirEntry, error)
}

// Entry describes one directory member.
type Entry struct {
	Path   string // the directory joined with Name under the grammar
	Name   string
	Stem   string
	Ext    string
	HasExt bool
	Hidden bool // a leading-dot name
	IsDir  bool
	Valid  bool // strict single-component validity of Name
}

// Handler is the principal implementation for directory listing operations.
type Handler struct {
	grammar   lexpath.Grammar
	osHandler osProvider
}

// NewHandler returns a [Handler] describing entries under grammar.
func NewHandler(grammar lexpath.Grammar, osHandler osProvider) *Handler {
	return &Handler{
		grammar:   grammar,
		osHandler: osHandler,
	}
}

// List reads dir and describes each of its entries. The entries arrive in
// the provider's order; a canceled context abandons the listing.
func (l *Handler) List(ctx context.Context, dir string) ([]*Entry, error) {
	dirEntries, err := l.osHandler.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("(dirlist) failed to read directory: %w", err)
	}

	entries := make([]*Entry, 0, len(dirEntries))

	for _, dirEntry := range dirEntries {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("(dirlist) canceled: %w", ctx.Err())
		}

		name := dirEntry.Name()

		entry := &Entry{
			Path:   l.grammar.Join(dir, name),
			Name:   name,
			Stem:   l.grammar.Stem(name),
			Hidden: strings.HasPrefix(name, "."),
			IsDir:  dirEntry.IsDir(),
			Valid:  l.grammar.ValidateFilename(name, true),
		}
		entry.Ext, entry.HasExt = l.grammar.Ext(name)

		entries = append(entries, entry)
	}

	return entries, nil
}

// Walk reads dir and all of its subdirectories, describing every entry it
// encounters, depth-first with parents before their children. The root must
// be listable; below it, a directory that fails to list is logged and
// skipped rather than failing the whole walk. A canceled context abandons
// the walk with an error.
func (l *Handler) Walk(ctx context.Context, dir string) ([]*Entry, error) {
	entries, err := l.List(ctx, dir)
	if err != nil {
		return nil, err
	}

	walked := make([]*Entry, 0, len(entries))

	for _, entry := range entries {
		walked = append(walked, entry)

		if !entry.IsDir {
			continue
		}

		children, err := l.Walk(ctx, entry.Path)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}

			slog.Warn("Failure for path during walking of directory tree (was skipped)",
				"path", entry.Path,
				"err", err,
			)

			continue
		}

		walked = append(walked, children...)
	}

	return walked, nil
}

// ListExt lists only the entries carrying the given extension, compared the
// way the grammar compares spellings: byte-exact under [lexpath.Posix],
// case-folded under [lexpath.Windows].
func (l *Handler) ListExt(ctx context.Context, dir, ext string) ([]*Entry, error) {
	entries, err := l.List(ctx, dir)
	if err != nil {
		return nil, err
	}

	want := l.grammar.NormalizeCase(ext)

	filtered := make([]*Entry, 0, len(entries))

	for _, entry := range entries {
		if !entry.HasExt || l.grammar.NormalizeCase(entry.Ext) != want {
			continue
		}

		filtered = append(filtered, entry)
	}

	return filtered, nil
}
