// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package http provides validation functions for HTTP response headers.
package http

import (
	"errors"
	"fmt"

	"golang.org/x/net/http/httpguts"
)

const (
	maxHeaderNameLen  = 256
	maxHeaderValueLen = 8192
)

// ErrInvalidHeader is wrapped by every validation failure in this package.
var ErrInvalidHeader = errors.New("invalid HTTP header")

// ValidateHeaderName validates that a string is a valid HTTP header name per RFC 7230.
// It checks for CRLF injection, control characters, and ensures RFC token compliance.
func ValidateHeaderName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidHeader)
	}

	if len(name) > maxHeaderNameLen {
		return fmt.Errorf("%w: name exceeds maximum length of %d bytes", ErrInvalidHeader, maxHeaderNameLen)
	}

	// Same check as Go's HTTP/2 implementation
	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("%w: name contains invalid characters", ErrInvalidHeader)
	}

	return nil
}

// ValidateHeaderValue validates that a string is a valid HTTP header value per RFC 7230.
// It checks for CRLF injection and control characters. Empty values are allowed.
func ValidateHeaderValue(value string) error {
	if len(value) > maxHeaderValueLen {
		return fmt.Errorf("%w: value exceeds maximum length of %d bytes", ErrInvalidHeader, maxHeaderValueLen)
	}

	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("%w: value contains control characters", ErrInvalidHeader)
	}

	return nil
}

// ValidateHeader validates a header name and value pair.
func ValidateHeader(name, value string) error {
	if err := ValidateHeaderName(name); err != nil {
		return err
	}
	if err := ValidateHeaderValue(value); err != nil {
		return fmt.Errorf("header %q: %w", name, err)
	}
	return nil
}
