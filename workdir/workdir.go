// Package workdir anchors relative paths to a process working directory.
// The anchoring itself is purely lexical; only obtaining the working
// directory asks the operating system.
package workdir

import (
	"fmt"

	"github.com/lexpath/lexpath"
)

type wdProvider interface {
	Getwd() (string, error)
}

// Handler resolves paths against the provider's working directory.
type Handler struct {
	grammar   lexpath.Grammar
	wdHandler wdProvider
}

// NewHandler returns a [Handler] anchoring under grammar.
func NewHandler(grammar lexpath.Grammar, wdHandler wdProvider) *Handler {
	return &Handler{
		grammar:   grammar,
		wdHandler: wdHandler,
	}
}

// Abs returns path anchored to the working directory and normalized. A path
// that already stands alone (absolute, or carrying its own drive) is only
// normalized, so a drive-relative "C:foo" is never anchored to another
// drive's directory.
func (w *Handler) Abs(path string) (string, error) {
	if w.grammar.Abs(path, false) || w.grammar.HasDrive(path) {
		return w.grammar.Normalize(path), nil
	}

	wd, err := w.wdHandler.Getwd()
	if err != nil {
		return "", fmt.Errorf("(workdir) failed to get working directory: %w", err)
	}

	return w.grammar.Normalize(w.grammar.Join(wd, path)), nil
}
