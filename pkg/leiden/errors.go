package leiden

import "errors"

// ErrInternal marks an invariant violation inside the algorithm.
// It indicates a bug, not a recoverable condition.
var ErrInternal = errors.New("internal invariant violation")
