package observability

import "go.uber.org/zap"

// zap field constructors re-exported so call sites outside the HTTP layer
// don't import zap directly.
//
//nolint:gochecknoglobals // Function aliases, not mutable state
var (
	String   = zap.String
	Int      = zap.Int
	Int64    = zap.Int64
	Float64  = zap.Float64
	Bool     = zap.Bool
	Duration = zap.Duration
	Error    = zap.Error
)
