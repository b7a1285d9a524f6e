// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package name provides validation for user supplied resource names.

	if err := name.Validate(req.Name); err != nil {
		return httperr.BadRequest().WithMessage("invalid item name").WithCause(err)
	}

Valid names must:
  - Be non-empty (not just whitespace) and at most MaxLength bytes
  - Contain only lowercase alphanumeric characters, underscores, dashes, and spaces
  - Not contain null bytes
  - Not have leading or trailing whitespace
  - Not contain consecutive spaces

Every failure wraps ErrInvalidName.
*/
package name
