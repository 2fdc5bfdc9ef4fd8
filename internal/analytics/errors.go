package analytics

import (
	"errors"
	"fmt"
)

// ErrInvalidDateFormat is returned when a supplied month string is not
// parseable as "YYYY-MM". It is a client error, not a collaborator one.
var ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM")

// UnknownMetricTypeError is returned by Compute when the requested metric
// type is not part of the closed enumeration. It carries the offending
// string so the transport layer can echo it back.
type UnknownMetricTypeError struct {
	Type string
}

func (e *UnknownMetricTypeError) Error() string {
	return fmt.Sprintf("unknown metric type %q", e.Type)
}

// IsClientError reports whether err should surface as a client error
// rather than a collaborator failure.
func IsClientError(err error) bool {
	var umt *UnknownMetricTypeError
	return errors.Is(err, ErrInvalidDateFormat) || errors.As(err, &umt)
}
