// Package dispatcherr formats the one error class the dispatcher does not
// swallow: an underlying-operation failure (§7, "Underlying operation
// fails" — overflow, bad format, I/O). A decline (unknown name, unmatched
// arity, failed coercion) is silent and never reaches this package; it
// produces dispatch.None without any error value at all.
//
// Adapted from the teacher's internal/errors package, which formats a
// CompilerError with source position (file/line/column, source excerpt,
// caret). A dispatcher call has no source position — only a call site — so
// this package reports the receiver type, method name, and a short
// rendering of the coerced argument vector instead of a line/column and
// source excerpt.
package dispatcherr

import (
	"fmt"
	"strings"
)

// CallError wraps an error raised by the underlying platform operation
// (the Go standard library call a library method ultimately delegates to)
// with the call-site context needed to make the failure actionable.
type CallError struct {
	Receiver string
	Method   string
	Args     []string
	Cause    error
}

// New builds a CallError. args should already be the human-readable
// rendering of each coerced argument (e.g. `"3"`, `"'a'"`), not the raw V.
func New(receiver, method string, args []string, cause error) *CallError {
	return &CallError{Receiver: receiver, Method: method, Args: append([]string(nil), args...), Cause: cause}
}

func (e *CallError) Error() string {
	return e.Format()
}

func (e *CallError) Unwrap() error { return e.Cause }

// Format renders "<Receiver>.<Method>(<args>): <cause>", the call-site
// analog of the teacher's "<file>:<line>:<column>: <message>".
func (e *CallError) Format() string {
	var sb strings.Builder
	sb.WriteString(e.Receiver)
	sb.WriteString(".")
	sb.WriteString(e.Method)
	sb.WriteString("(")
	sb.WriteString(strings.Join(e.Args, ", "))
	sb.WriteString(")")
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// FormatAll renders multiple CallErrors, matching the teacher's
// FormatErrors grouping of multiple CompilerErrors into one report.
func FormatAll(errs []*CallError) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format()
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d dispatcher call(s) failed:\n", len(errs)))
	for i, e := range errs {
		sb.WriteString(fmt.Sprintf("[%d/%d] %s\n", i+1, len(errs), e.Format()))
	}
	return sb.String()
}
