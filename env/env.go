// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Reader looks up environment variables. An unset variable reads as "".
type Reader interface {
	Getenv(key string) string
}

// OSReader reads the process environment.
type OSReader struct{}

// Getenv returns the value of the environment variable named by key.
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}
