package form

import (
	"errors"
	"strings"
)

// unknownFieldError is returned when a key is not part of the schema.
type unknownFieldError struct{ key string }

func (e unknownFieldError) Error() string { return "unknown field: " + e.key }

// IsUnknownField reports whether err names a key outside the schema.
func IsUnknownField(err error) bool {
	var e unknownFieldError
	return errors.As(err, &e)
}

// UnparsedError lists the fields whose values did not parse as numbers.
type UnparsedError struct {
	Fields []string
}

func (e *UnparsedError) Error() string {
	return "fields did not parse as numbers: " + strings.Join(e.Fields, ", ")
}

// IsUnparsed reports whether err is an *UnparsedError.
func IsUnparsed(err error) bool {
	var e *UnparsedError
	return errors.As(err, &e)
}

// RequireParsed returns an *UnparsedError when unparsed is non-empty.
func RequireParsed(unparsed []string) error {
	if len(unparsed) == 0 {
		return nil
	}
	return &UnparsedError{Fields: append([]string(nil), unparsed...)}
}
