package configuration

import "errors"

var (
	ErrInvalidWorkers = errors.New("worker count must be a non-negative integer")
)
