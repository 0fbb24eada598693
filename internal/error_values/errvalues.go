package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrUnknownPlan = errors.New("unknown subscription plan")

	ErrWeekNotFound      = errors.New("no activity recorded for this week")
	ErrWeekOutsideWindow = errors.New("week is outside of plan history window")
	ErrInvalidPayload    = errors.New("payload contains unknown day or category keys")

	ErrReadingOutOfRange  = errors.New("reading value is out of plausible range")
	ErrReadingInFuture    = errors.New("reading can't be taken in the future")
	ErrUnknownContext     = errors.New("unknown glucose reading context")
	ErrNoteTooLong        = errors.New("reading note is too long")
	ErrReadingNotFound    = errors.New("reading doesn't exist")
	ErrUnknownMetric      = errors.New("unknown wearable metric")
	ErrTooManySamples     = errors.New("too many samples in one import")
	ErrEmptyImport        = errors.New("import contains no samples")
	ErrMalformedSampleRow = errors.New("malformed sample row")
)
