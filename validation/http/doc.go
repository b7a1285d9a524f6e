// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package http provides security-focused validation functions for HTTP headers.

Headers attached to an error response come from application code, sometimes
built from request data. Validating them before they are written prevents
header injection (CRLF sequences) and oversized values.

	if err := http.ValidateHeader("Retry-After", "30"); err != nil {
		// drop the header
	}

The validators check for:
  - CRLF injection attempts (\r\n sequences)
  - Control characters
  - RFC 7230 token compliance for header names
  - Length limits (256 bytes for names, 8192 for values)

All failures wrap ErrInvalidHeader.
*/
package http
