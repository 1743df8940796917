package cmd

import "errors"

// ErrStatisticNotImplemented is returned by the cclosure subcommand.
// spec.md's Design Note is explicit: the c-closure statistic's algorithm
// is absent from the original implementation, and "do NOT invent
// semantics" — this sentinel makes that refusal an ordinary nonzero exit
// rather than a silent no-op or a parse failure.
var ErrStatisticNotImplemented = errors.New("vcdim: statistic not implemented")
