package apperr

import "errors"

var (
	// ErrNotFound signals an absent record or document. Callers are expected
	// to degrade to an empty/zero value; it is never fatal for a pipeline run.
	ErrNotFound = errors.New("not found")
	// ErrMalformedData signals a field that should hold a JSON list but does
	// not decode. Recovered locally with an empty list.
	ErrMalformedData = errors.New("malformed data")
	// ErrReviewLocked rejects mutations against a locked expert review.
	ErrReviewLocked = errors.New("review is locked")
	// ErrPrecondition rejects a state transition whose prerequisite is missing,
	// e.g. locking a review that was never saved.
	ErrPrecondition = errors.New("precondition failed")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
)
