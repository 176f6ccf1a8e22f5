// Package errors provides annotated errors that carry structured logging
// attributes and the source location where the error was wrapped.
//
// It re-exports the standard library helpers so that callers only need a
// single errors import.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// annotatedError wraps an error with a message, slog attributes, and the
// source location of the wrap call.
type annotatedError struct {
	msg    string
	err    error
	attrs  []slog.Attr
	source string
}

// Error implements the error interface.
func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

// Unwrap exposes the wrapped error to errors.Is and errors.As.
func (e *annotatedError) Unwrap() error {
	return e.err
}

// NewSentinel creates a new sentinel error with the given message.
func NewSentinel(msg string) error {
	return &annotatedError{msg: msg, err: nil, attrs: nil, source: ""}
}

// Wrap annotates err with a message and optional slog attributes.
// The caller's source location is recorded for log output.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		msg:    msg,
		err:    err,
		attrs:  attrs,
		source: callerSource(2), //nolint:mnd // skip Wrap and callerSource frames.
	}
}

// DecoratePanic converts a recovered panic value into an annotated error.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}
	return &annotatedError{
		msg:    fmt.Sprintf("panic: %v", recovered),
		err:    nil,
		attrs:  nil,
		source: callerSource(3), //nolint:mnd // skip DecoratePanic, the deferred func, and the runtime frame.
	}
}

// callerSource returns "file:line" for the caller skip frames up the stack.
func callerSource(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// SlogError renders err as a slog group attribute including the messages,
// the annotations, and the innermost recorded source location.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	attrs := []slog.Attr{slog.String("message", err.Error())}

	var annotations []any
	var source string
	for unwrapped := err; unwrapped != nil; unwrapped = errors.Unwrap(unwrapped) {
		var annotated *annotatedError
		if errors.As(unwrapped, &annotated) {
			for _, attr := range annotated.attrs {
				annotations = append(annotations, attr)
			}
			if annotated.source != "" {
				source = annotated.source
			}
			unwrapped = annotated
		}
	}

	if len(annotations) > 0 {
		attrs = append(attrs, slog.Group("annotations", annotations...))
	}
	if source != "" {
		attrs = append(attrs, slog.String("source", source))
	}

	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}
	return slog.Group("error", args...)
}

// New re-exports errors.New.
func New(text string) error {
	return errors.New(text)
}

// Is re-exports errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As re-exports errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap re-exports errors.Unwrap.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join re-exports errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
