// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package httperr provides error types with HTTP status codes for API error handling.
package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is a failure classified with the HTTP status it should be answered with.
//
// The message is the only text a client ever sees. The cause is kept for operators:
// it is exposed through Unwrap and logged by Recover, but never rendered.
//
// Values are immutable. Every With* builder returns a modified copy and leaves
// the receiver untouched, so an HTTPError can be handed to the error path without
// the risk of later edits.
type HTTPError struct {
	status  int
	message *string
	header  http.Header
	cause   error
}

// New creates an HTTPError with the given status, no message and no cause.
// A status outside the 200-599 range is stored as 500. Informational 1xx
// statuses are excluded because net/http cannot send one as a final response.
func New(status int) *HTTPError {
	if status < 200 || status > 599 {
		status = http.StatusInternalServerError
	}
	return &HTTPError{status: status}
}

// WithMessage returns a copy of e carrying a client-visible message.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	clone := *e
	clone.message = &message
	return &clone
}

// WithCause returns a copy of e with cause as the underlying failure.
// The cause is logged by Recover and reachable through errors.Unwrap,
// but is never part of the response body.
func (e *HTTPError) WithCause(cause error) *HTTPError {
	clone := *e
	clone.cause = cause
	return &clone
}

// WithSource is an alias of WithCause.
func (e *HTTPError) WithSource(source error) *HTTPError {
	return e.WithCause(source)
}

// WithHeader returns a copy of e that adds a header to the rendered response,
// for example Retry-After on a 429 or Allow on a 405.
// Invalid header names or values are dropped when the response is built.
func (e *HTTPError) WithHeader(name, value string) *HTTPError {
	clone := *e
	clone.header = e.header.Clone()
	if clone.header == nil {
		clone.header = http.Header{}
	}
	clone.header.Add(name, value)
	return &clone
}

// Status returns the HTTP status code associated with this error.
func (e *HTTPError) Status() int {
	return e.status
}

// Message returns the client-visible message and whether one was set.
func (e *HTTPError) Message() (string, bool) {
	if e.message == nil {
		return "", false
	}
	return *e.message, true
}

// Header returns a copy of the extra response headers.
func (e *HTTPError) Header() http.Header {
	return e.header.Clone()
}

// Error implements the error interface.
// It never includes the message or the cause.
func (e *HTTPError) Error() string {
	if reason := http.StatusText(e.status); reason != "" {
		return fmt.Sprintf("fail with status %d %s", e.status, reason)
	}
	return fmt.Sprintf("fail with status %d", e.status)
}

// Unwrap returns the underlying error for errors.Is() and errors.As() compatibility.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Code extracts the HTTP status code from an error.
// It unwraps the error chain looking for an HTTPError.
// If no HTTPError is found, or the one found is a nil pointer, it returns
// http.StatusInternalServerError (500).
func Code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		return httpErr.status
	}

	return http.StatusInternalServerError
}

// body is the client-visible text: the message, else the reason phrase, else "".
func (e *HTTPError) body() string {
	if msg, ok := e.Message(); ok {
		return msg
	}
	return http.StatusText(e.status)
}
