package monads

import "errors"

var (
	// ErrEmptyAccess is raised when the value of an empty Option is requested.
	ErrEmptyAccess = errors.New("get called on an empty option")
	// ErrSuccessAccess is raised when the error of a successful Try is requested.
	ErrSuccessAccess = errors.New("get error called on a success")
	// ErrFailureAccess is raised when the value of a failed Try is requested.
	ErrFailureAccess = errors.New("get called on a failure")
	// ErrPredicateUnsatisfied is the failure produced by Try.Filter.
	ErrPredicateUnsatisfied = errors.New("predicate not satisfied")
	// ErrInvalidArgument rejects building a variant from an absent marker.
	ErrInvalidArgument = errors.New("invalid argument")
)
