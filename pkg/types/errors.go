package types

import "errors"

// Board operation errors. Operations that return one of these leave the
// board unchanged.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidName   = errors.New("name must not be empty")
	ErrInvalidTag    = errors.New("tag must not be empty")
	ErrInvalidDraft  = errors.New("invalid pin draft")
	ErrInvalidPatch  = errors.New("invalid pin patch")
	ErrWrongPinType  = errors.New("operation not supported for pin type")
	ErrNoGesture     = errors.New("no gesture in progress")
	ErrGestureActive = errors.New("a gesture is already in progress")
	ErrInvalidKind   = errors.New("unknown gesture kind")
)
