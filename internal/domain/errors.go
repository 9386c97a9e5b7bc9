package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrEmptyIdea          = errors.New("idea description is empty")
	ErrServiceUnavailable = errors.New("job service unavailable")
	ErrJobTimeout         = errors.New("generation job timed out")
	ErrJobSuperseded      = errors.New("job superseded by a newer submission")
	ErrJobNotCompleted    = errors.New("job not completed")
	ErrGatedFeature       = errors.New("premium feature not unlocked")
	ErrUnknownDocument    = errors.New("unknown document type")
)
