// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package name validates user supplied resource names.
package name

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// MaxLength is the longest accepted name in bytes.
const MaxLength = 128

// ErrInvalidName is wrapped by every error returned from Validate.
var ErrInvalidName = errors.New("invalid name")

var validNameRegex = regexp.MustCompile(`^[a-z0-9_\-\s]+$`)

// Validate reports whether name only holds lowercase alphanumerics,
// underscores, dashes and single inner spaces.
func Validate(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: cannot be empty or consist only of whitespace", ErrInvalidName)
	}

	if len(name) > MaxLength {
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidName, MaxLength)
	}

	if strings.Contains(name, "\x00") {
		return fmt.Errorf("%w: cannot contain null bytes", ErrInvalidName)
	}

	if name != strings.ToLower(name) {
		return fmt.Errorf("%w: must be lowercase", ErrInvalidName)
	}

	if !validNameRegex.MatchString(name) {
		return fmt.Errorf("%w: only lowercase alphanumerics, underscores, dashes and spaces are allowed: %q", ErrInvalidName, name)
	}

	if strings.TrimSpace(name) != name {
		return fmt.Errorf("%w: leading or trailing whitespace: %q", ErrInvalidName, name)
	}

	if strings.Contains(name, "  ") {
		return fmt.Errorf("%w: consecutive spaces: %q", ErrInvalidName, name)
	}

	return nil
}
