// Package pathid derives stable identities for path strings: two spellings
// of the same location under one grammar map to one identity.
package pathid

import (
	"encoding/hex"

	"github.com/lexpath/lexpath"
	"github.com/zeebo/blake3"
)

// shortIDLen is the hex length of the abbreviated identity form.
const shortIDLen = 16

// Handler computes path identities for one [lexpath.Grammar].
type Handler struct {
	grammar lexpath.Grammar
}

// NewHandler returns a [Handler] deriving identities under grammar.
func NewHandler(grammar lexpath.Grammar) *Handler {
	return &Handler{
		grammar: grammar,
	}
}

// Canonical returns the identity-bearing spelling of path: structurally
// normalized, then case-normalized. All paths sharing a canonical spelling
// share one identity.
func (p *Handler) Canonical(path string) string {
	return p.grammar.NormalizeCase(p.grammar.Normalize(path))
}

// ID returns the hex digest identifying path's canonical spelling.
func (p *Handler) ID(path string) string {
	hasher := blake3.New()
	hasher.Write([]byte(p.Canonical(path))) //nolint:errcheck

	return hex.EncodeToString(hasher.Sum(nil))
}

// ShortID returns the abbreviated display form of [Handler.ID].
func (p *Handler) ShortID(path string) string {
	return p.ID(path)[:shortIDLen]
}

// Equal reports whether two paths share one canonical identity.
func (p *Handler) Equal(a, b string) bool {
	return p.Canonical(a) == p.Canonical(b)
}
