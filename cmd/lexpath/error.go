package main

import "errors"

var (
	// ErrUnknownOperation occurs when an unrecognized operation name was
	// requested on the command line.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrProcessingFailed occurs when one or more of the input paths could
	// not be processed.
	ErrProcessingFailed = errors.New("one or more paths failed to process")
)
