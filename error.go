package lexpath

import "errors"

var (
	// ErrUnknownGrammar occurs when [ParseGrammar] receives a name that maps
	// to no known path grammar.
	ErrUnknownGrammar = errors.New("unknown path grammar")
)
