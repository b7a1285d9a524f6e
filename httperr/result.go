// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import "net/http"

// WithStatus wraps an error with an HTTP status code.
// The original error becomes the cause of the returned HTTPError.
// If err is nil, WithStatus returns nil.
func WithStatus(err error, status int) error {
	if err == nil {
		return nil
	}
	return New(status).WithCause(err)
}

// WithStatusMsg is like WithStatus and also sets a client-visible message.
// message is only called when err is non-nil.
func WithStatusMsg(err error, status int, message func() string) error {
	if err == nil {
		return nil
	}
	return New(status).WithMessage(message()).WithCause(err)
}

// ClientErr wraps err as a 400 Bad Request.
func ClientErr(err error) error {
	return WithStatus(err, http.StatusBadRequest)
}

// ServerErr wraps err as a 500 Internal Server Error.
func ServerErr(err error) error {
	return WithStatus(err, http.StatusInternalServerError)
}

// Result holds the outcome of a call returning (T, error) so it can be
// converted in one expression:
//
//	id, err := httperr.From(strconv.Atoi(raw)).ClientErr()
type Result[T any] struct {
	value T
	err   error
}

// From captures the return values of a fallible call.
func From[T any](value T, err error) Result[T] {
	return Result[T]{value: value, err: err}
}

// ClientErr returns the value unchanged, or a 400 HTTPError caused by the failure.
func (r Result[T]) ClientErr() (T, error) {
	return r.WithErrStatus(http.StatusBadRequest)
}

// ServerErr returns the value unchanged, or a 500 HTTPError caused by the failure.
func (r Result[T]) ServerErr() (T, error) {
	return r.WithErrStatus(http.StatusInternalServerError)
}

// WithErrStatus returns the value unchanged, or an HTTPError with status caused by the failure.
func (r Result[T]) WithErrStatus(status int) (T, error) {
	if r.err == nil {
		return r.value, nil
	}
	var zero T
	return zero, WithStatus(r.err, status)
}

// WithErrMsg is like WithErrStatus and also sets a client-visible message.
// message is only called on failure.
func (r Result[T]) WithErrMsg(status int, message func() string) (T, error) {
	if r.err == nil {
		return r.value, nil
	}
	var zero T
	return zero, WithStatusMsg(r.err, status, message)
}
