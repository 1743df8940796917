package nquery

import "errors"

// ErrQueryTooLarge is the value Prepare panics with when a caller asks
// about a candidate set S larger than any size yet ensured by
// EnsureSize/EnsureSizeRestricted; R simply does not carry enough
// information to answer (spec.md §4.3).
var ErrQueryTooLarge = errors.New("nquery: candidate set exceeds the ensured query size")
