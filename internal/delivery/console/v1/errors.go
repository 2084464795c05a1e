package v1

import (
	"errors"
	"fmt"
	"strings"
)

// Every message returned by a command starts with exactly one marker.
const (
	SuccessMarker = "✓"
	ErrorMarker   = "✗"
	InfoMarker    = "ℹ"
)

var (
	errInvalidTaskID     = errors.New("invalid task id")
	errInvalidTaskStatus = errors.New("invalid task status")
)

// unexpectedArgumentError reports a positional argument a command does
// not accept.
type unexpectedArgumentError struct {
	arg  string
	hint string
}

func (e *unexpectedArgumentError) Error() string {
	return fmt.Sprintf("unexpected argument %q", e.arg)
}

// renderArgumentError turns an argument error into the message shown to
// the user.
func renderArgumentError(err error) string {
	var unexpected *unexpectedArgumentError
	switch {
	case errors.Is(err, errInvalidTaskID):
		return failure("Invalid task ID")
	case errors.Is(err, errInvalidTaskStatus):
		return failure("Invalid status. Use 'pending' or 'completed'.")
	case errors.As(err, &unexpected):
		return failure("Unexpected argument %q (%s)", unexpected.arg, unexpected.hint)
	}
	return failure("%s", err)
}

// UnknownCommandError is returned by Dispatch when no handler is
// registered under the requested name.
type UnknownCommandError struct {
	Name string
	// Suggestion is the closest registered command name, if any is close enough.
	Suggestion string
}

func (e *UnknownCommandError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown command %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown command %q", e.Name)
}

func success(format string, args ...any) string {
	return marked(SuccessMarker, format, args...)
}

func failure(format string, args ...any) string {
	return marked(ErrorMarker, format, args...)
}

func info(format string, args ...any) string {
	return marked(InfoMarker, format, args...)
}

func marked(marker, format string, args ...any) string {
	return marker + " " + fmt.Sprintf(format, args...)
}

// MarkerOf returns the marker a message starts with, or "" if it has none.
func MarkerOf(message string) string {
	for _, marker := range []string{SuccessMarker, ErrorMarker, InfoMarker} {
		if strings.HasPrefix(message, marker) {
			return marker
		}
	}
	return ""
}
