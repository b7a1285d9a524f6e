// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package handler adapts error-returning HTTP handlers to net/http and routes
// their errors through the httperr recovery boundary.
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/stacklok/toolhive-httperr/httperr"
	"github.com/stacklok/toolhive-httperr/recovery"
)

// Rejections produced by the router itself rather than by application code.
// They are not HTTPErrors, so httperr.Recover passes them on to the fallback.
var (
	// ErrRouteNotFound is returned when no route matches the request path.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMethodNotAllowed is returned when the path matches but the method does not.
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// MethodNotAllowedError is the router's rejection for a path that exists
// under other methods. It matches ErrMethodNotAllowed with errors.Is.
type MethodNotAllowedError struct {
	// Allowed lists the methods registered for the path.
	Allowed []string
}

// Error implements the error interface.
func (e *MethodNotAllowedError) Error() string {
	return ErrMethodNotAllowed.Error()
}

// Unwrap returns ErrMethodNotAllowed.
func (*MethodNotAllowedError) Unwrap() error {
	return ErrMethodNotAllowed
}

// methods probed when building the Allow header of a 405.
var methods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
}

// Func is an HTTP handler that reports failure by returning an error.
// A handler that returns a non-nil error must not have written a response.
type Func func(w http.ResponseWriter, r *http.Request) error

// FallbackFunc handles errors that httperr.Recover did not recognize.
type FallbackFunc func(log httperr.Logger, w http.ResponseWriter, r *http.Request, err error)

// Option configures a Boundary.
type Option func(*Boundary)

// WithFallback replaces DefaultFallback.
func WithFallback(f FallbackFunc) Option {
	return func(b *Boundary) {
		b.fallback = f
	}
}

// Boundary turns errors returned by a Func into responses.
// It holds no per-request state and is safe for concurrent use.
type Boundary struct {
	log      httperr.Logger
	fallback FallbackFunc
}

// NewBoundary creates a Boundary logging to log.
// A nil log uses the global zap logger.
func NewBoundary(log httperr.Logger, opts ...Option) *Boundary {
	if log == nil {
		log = zap.S()
	}
	b := &Boundary{
		log:      log,
		fallback: DefaultFallback,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Handle returns an http.Handler running fn and recovering any error it returns.
func (b *Boundary) Handle(fn Func) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			b.Reject(w, r, err)
		}
	})
}

// Reject renders err: HTTPErrors through httperr.Recover, anything else through the fallback.
func (b *Boundary) Reject(w http.ResponseWriter, r *http.Request, err error) {
	resp, err := httperr.Recover(b.log, err)
	if err != nil {
		b.fallback(b.log, w, r, err)
		return
	}
	if resp != nil {
		resp.Write(w)
	}
}

// DefaultFallback answers router rejections with 404 or 405 and any other
// unrecognized error with a logged 500. The error text is never sent.
// A 405 carries an Allow header when err is a MethodNotAllowedError.
func DefaultFallback(log httperr.Logger, w http.ResponseWriter, _ *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrRouteNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrMethodNotAllowed):
		status = http.StatusMethodNotAllowed
		var notAllowed *MethodNotAllowedError
		if errors.As(err, &notAllowed) && notAllowed != nil && len(notAllowed.Allowed) > 0 {
			w.Header().Set("Allow", strings.Join(notAllowed.Allowed, ", "))
		}
	default:
		log.Errorf("unhandled rejection: %v", err)
	}
	http.Error(w, http.StatusText(status), status)
}

// NewRouter returns a chi router with panic recovery installed and chi's
// not-found and method-not-allowed cases rejected through b.
func NewRouter(b *Boundary) chi.Router {
	r := chi.NewRouter()
	r.Use(recovery.WithLogger(b.log))
	r.NotFound(b.Handle(func(http.ResponseWriter, *http.Request) error {
		return ErrRouteNotFound
	}).ServeHTTP)
	r.MethodNotAllowed(b.Handle(func(_ http.ResponseWriter, req *http.Request) error {
		return &MethodNotAllowedError{Allowed: allowedMethods(r, req)}
	}).ServeHTTP)
	return r
}

// allowedMethods returns the methods routes registers for the request path.
func allowedMethods(routes chi.Routes, req *http.Request) []string {
	path := req.URL.RawPath
	if path == "" {
		path = req.URL.Path
	}
	var allowed []string
	for _, method := range methods {
		if routes.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
