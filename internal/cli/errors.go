package cli

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitOK    = 0
	ExitError = 1
)

var (
	ErrParse        = errors.New("invalid arguments")
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidYear  = errors.New("invalid year")
)

// UsageError is an argument problem. It is reported together with the usage text.
type UsageError struct {
	Kind error
	Msg  string
}

func (e *UsageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	if e.Kind == ErrParse {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *UsageError) Unwrap() error { return e.Kind }

func parseError(err error) error {
	return &UsageError{Kind: ErrParse, Msg: err.Error()}
}

func parseErrorf(format string, args ...any) error {
	return &UsageError{Kind: ErrParse, Msg: fmt.Sprintf(format, args...)}
}

func invalidMonth(v int) error {
	return &UsageError{Kind: ErrInvalidMonth, Msg: fmt.Sprint(v)}
}

func invalidYear(v int) error {
	return &UsageError{Kind: ErrInvalidYear, Msg: fmt.Sprint(v)}
}
