package errors

import "errors"

// As reports whether err, or any error it wraps, can be assigned to target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is reports whether err, or any error it wraps, matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
