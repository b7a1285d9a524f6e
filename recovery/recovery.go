// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package recovery

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/stacklok/toolhive-httperr/httperr"
)

// PanicError is the cause recorded for a request whose handler panicked.
type PanicError struct {
	Value any
	Stack []byte
}

// Error implements the error interface.
func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// Unwrap returns the panic value when it is itself an error.
func (p *PanicError) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}

// Middleware is an HTTP middleware that recovers from panics.
// When a panic occurs, it returns a 500 Internal Server Error response
// to the client, preventing the panic from crashing the server.
// Panics are logged with the global zap logger.
func Middleware(next http.Handler) http.Handler {
	return WithLogger(nil)(next)
}

// WithLogger returns a panic recovery middleware that logs to log.
//
// The panic is turned into an httperr.InternalServerError caused by a
// PanicError and rendered through httperr.Recover, so the client only sees
// "Internal Server Error". The stack trace is logged as one extra line.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func WithLogger(log httperr.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = zap.S()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				perr := &PanicError{Value: rec, Stack: debug.Stack()}
				resp, _ := httperr.Recover(log, httperr.InternalServerError(perr))
				log.Errorf("%s %s panicked:\n%s", r.Method, r.URL.Path, perr.Stack)
				resp.Write(w)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
