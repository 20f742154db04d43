package gofig

import "errors"

// Errors
var (
	ErrBadConnectivity = errors.New("chosen-cell connectivity must be 4 or 8; background connectivity must be 0, 4 or 8")
	ErrSizeExceeded    = errors.New("requested figure size is outside 1..MaxFigureSize")
	ErrBadFigureExpr   = errors.New("bad figure expression")
	ErrStatsParallel   = errors.New("stats collection is not available in the parallel driver")
)
