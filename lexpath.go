// Package lexpath implements lexical manipulation of filesystem path strings
// for both the POSIX and the Windows path grammars, without ever touching the
// filesystem itself.
//
// All operations are methods on an immutable [Grammar] value; [Posix] and
// [Windows] are the two provided grammars and [Native] aliases the one
// matching the compile target. Every operation is a pure function over its
// arguments: no OS calls, no global state, safe for unsynchronized concurrent
// use from any number of goroutines.
//
// Decomposing operations return substrings of their input without copying, so
// their results alias the input string's backing memory. Composing and
// normalizing operations allocate their result once, or append into a
// caller-owned buffer through their Append forms.
//
// The engine is total over arbitrary byte sequences: malformed input never
// panics and degrades to documented boundary results instead.
// [Grammar.Validate] and [Grammar.ValidateFilename] are the only rejection
// mechanisms; no other operation inspects its input for well-formedness.
package lexpath

import (
	"fmt"
	"strings"
)

// A Grammar holds the structural rules of one path flavor: which bytes
// delimit components, whether drive designators exist and how case is
// canonicalized. Grammar values are immutable and freely copyable; the zero
// value is not meaningful, use [Posix], [Windows] or [Native].
type Grammar struct {
	name      string
	preferred byte // delimiter used where one must be synthesized
	backslash bool // '\' delimits components as well
	drives    bool // drive letters and UNC prefixes exist
	caseFold  bool // NormalizeCase folds ASCII letters
}

var (
	// Posix is the single-delimiter grammar: '/' separates components,
	// drives do not exist and byte case is significant.
	Posix = Grammar{name: "posix", preferred: '/'}

	// Windows is the dual-delimiter grammar: '/' and '\' both separate
	// components, paths may carry a drive letter or a UNC host-share
	// prefix, a set of characters and device names is reserved and byte
	// case is insignificant.
	Windows = Grammar{name: "windows", preferred: '\\', backslash: true, drives: true, caseFold: true}
)

// String returns the grammar's configuration name.
func (g Grammar) String() string {
	return g.name
}

// ParseGrammar maps a configuration value to a [Grammar]. Accepted are
// "posix" ("unix"), "windows" ("win") and "native", compared without case;
// the empty string selects [Native].
func ParseGrammar(name string) (Grammar, error) {
	switch {
	case strings.EqualFold(name, "posix"), strings.EqualFold(name, "unix"):
		return Posix, nil
	case strings.EqualFold(name, "windows"), strings.EqualFold(name, "win"):
		return Windows, nil
	case strings.EqualFold(name, "native"), name == "":
		return Native, nil
	default:
		return Grammar{}, fmt.Errorf("(lexpath) %w: %q", ErrUnknownGrammar, name)
	}
}
