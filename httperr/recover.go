// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=recover.go -destination=mocks/mock_logger.go -package=mocks Logger

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	httpval "github.com/stacklok/toolhive-httperr/validation/http"
)

// Logger is the error-level logging capability used by Recover.
// *zap.SugaredLogger satisfies it directly.
type Logger interface {
	Errorf(template string, args ...any)
}

// Response is the client-visible rendering of an HTTPError.
type Response struct {
	Status int
	Body   string
	Header http.Header
}

// Write sends the response as text/plain.
// The body is skipped for statuses that do not permit one.
func (r *Response) Write(w http.ResponseWriter) {
	h := w.Header()
	for name, values := range r.Header {
		h[name] = append([]string(nil), values...)
	}
	h.Set("Content-Type", "text/plain; charset=utf-8")
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(r.Status)
	if bodyAllowed(r.Status) {
		_, _ = w.Write([]byte(r.Body))
	}
}

// Recover turns a rejected request's error into a response.
//
// If err carries an HTTPError, the error and every link of its cause chain are
// logged at error level and a Response is returned with the stored status and
// the message (or the status reason phrase when no message was set).
// Causes are never rendered.
//
// When the HTTPError is not on err's linear Unwrap chain, as inside
// errors.Join, it is logged after that chain together with its own causes.
//
// Any other error is returned unchanged so an outer handler can deal with it,
// including a nil *HTTPError stored in a non-nil error.
// A nil err yields (nil, nil). A nil log uses the global zap logger.
func Recover(log Logger, err error) (*Response, error) {
	if err == nil {
		return nil, nil
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr == nil {
		return nil, err
	}

	if log == nil {
		log = zap.S()
	}

	log.Errorf("%v", err)
	reached := isHTTPError(err, httpErr)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		log.Errorf("  -> %v", cause)
		reached = reached || isHTTPError(cause, httpErr)
	}

	// errors.Join and multi-%w wrappers have no linear chain to httpErr.
	if !reached {
		log.Errorf("  -> %v", httpErr)
		for cause := httpErr.Unwrap(); cause != nil; cause = errors.Unwrap(cause) {
			log.Errorf("  -> %v", cause)
		}
	}

	return &Response{
		Status: httpErr.status,
		Body:   httpErr.body(),
		Header: validHeaders(log, httpErr.header),
	}, nil
}

func isHTTPError(err error, target *HTTPError) bool {
	e, ok := err.(*HTTPError) //nolint:errorlint // identity check on one chain link
	return ok && e == target
}

func validHeaders(log Logger, header http.Header) http.Header {
	if len(header) == 0 {
		return nil
	}
	out := make(http.Header, len(header))
	for name, values := range header {
		for _, value := range values {
			if err := httpval.ValidateHeader(name, value); err != nil {
				log.Errorf("dropping response header %q: %v", name, err)
				continue
			}
			out[name] = append(out[name], value)
		}
	}
	return out
}

func bodyAllowed(status int) bool {
	switch {
	case status >= 100 && status <= 199:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	}
	return true
}
