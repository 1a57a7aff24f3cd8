package workload

import "errors"

var (
	ErrUnknownOp  = errors.New("unknown operation")
	ErrMissingKey = errors.New("operation needs a key")
	ErrExtraArgs  = errors.New("unexpected arguments")
	ErrBadKey     = errors.New("invalid key")
	ErrBadConfig  = errors.New("invalid workload config")
)
