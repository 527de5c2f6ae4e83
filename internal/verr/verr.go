// Package verr classifies verification-pipeline failures so callers can
// distinguish bad input from a misbehaving sensor without string matching.
package verr

import "errors"

type Category string

const (
	CategoryInvalidInput      Category = "invalid_input"
	CategorySensorContract    Category = "sensor_contract"
	CategorySensorUnavailable Category = "sensor_unavailable"
	CategoryHashingFailure    Category = "hashing_failure"
)

type classifiedError struct {
	category  Category
	code      string
	retryable bool
	cause     error
}

func (e *classifiedError) Error() string {
	if e.cause == nil {
		return string(e.category)
	}
	return e.cause.Error()
}

func (e *classifiedError) Unwrap() error {
	return e.cause
}

// Wrap tags cause with a category and machine-readable code. A nil cause
// returns nil so call sites can wrap unconditionally.
func Wrap(cause error, category Category, code string, retryable bool) error {
	if cause == nil {
		return nil
	}
	return &classifiedError{
		category:  category,
		code:      code,
		retryable: retryable,
		cause:     cause,
	}
}

func CategoryOf(err error) Category {
	var classified *classifiedError
	if errors.As(err, &classified) {
		return classified.category
	}
	return ""
}

func CodeOf(err error) string {
	var classified *classifiedError
	if errors.As(err, &classified) {
		return classified.code
	}
	return ""
}

func RetryableOf(err error) bool {
	var classified *classifiedError
	if errors.As(err, &classified) {
		return classified.retryable
	}
	return false
}
