package logwrap

import (
	"errors"
)

// ErrorMatcher is the membership predicate of the error filter: it reports
// whether a returned error is one the on-error variants should log.
type ErrorMatcher func(err error) bool

// ErrorIs matches errors for which errors.Is reports the given target.
func ErrorIs(target error) ErrorMatcher {
	return func(err error) bool {
		return errors.Is(err, target)
	}
}

// ErrorAs matches errors whose chain contains type T.
func ErrorAs[T error]() ErrorMatcher {
	return func(err error) bool {
		var target T
		return errors.As(err, &target)
	}
}

// MatchAll matches every error. Use it for explicit catch-all behavior;
// a wrapper configured without any matcher catches nothing.
func MatchAll() ErrorMatcher {
	return func(error) bool {
		return true
	}
}
