package algorithms

import "errors"

// ErrUnknownAlgorithm is returned by Lookup when the command name does not
// match any registered Strategy.
var ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")
