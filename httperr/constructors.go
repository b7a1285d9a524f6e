// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// errUnknownCause stands in for a missing cause on InternalServerError.
var errUnknownCause = errors.New("unknown")

// Status is shorthand for New(status).
func Status(status int) *HTTPError {
	return New(status)
}

// OK returns an HTTPError with status 200.
// Useful to short-circuit a handler with an empty success response.
func OK() *HTTPError {
	return New(http.StatusOK)
}

// NoContent returns an HTTPError with status 204.
func NoContent() *HTTPError {
	return New(http.StatusNoContent)
}

// BadRequest returns an HTTPError with status 400.
func BadRequest() *HTTPError {
	return New(http.StatusBadRequest)
}

// BadRequestf returns an HTTPError with status 400 and a formatted message.
func BadRequestf(format string, args ...any) *HTTPError {
	return BadRequest().WithMessage(fmt.Sprintf(format, args...))
}

// Forbidden returns an HTTPError with status 403.
func Forbidden() *HTTPError {
	return New(http.StatusForbidden)
}

// Forbiddenf returns an HTTPError with status 403 and a formatted message.
func Forbiddenf(format string, args ...any) *HTTPError {
	return Forbidden().WithMessage(fmt.Sprintf(format, args...))
}

// NotFound returns an HTTPError with status 404.
func NotFound() *HTTPError {
	return New(http.StatusNotFound)
}

// NotFoundf returns an HTTPError with status 404 and a formatted message.
func NotFoundf(format string, args ...any) *HTTPError {
	return NotFound().WithMessage(fmt.Sprintf(format, args...))
}

// InternalServerError returns an HTTPError with status 500 caused by cause.
// No message is set, so clients only see the reason phrase.
// A nil cause is replaced by an opaque "unknown" error.
func InternalServerError(cause error) *HTTPError {
	if cause == nil {
		cause = errUnknownCause
	}
	return New(http.StatusInternalServerError).WithCause(cause)
}
