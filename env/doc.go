// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env abstracts environment variable access so that configuration and
logger setup can be tested without touching the process environment.

Production code reads through OSReader:

	cfg, err := config.Load(path, &env.OSReader{})

Tests inject the generated mock from the mocks sub-package:

	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)
	reader.EXPECT().Getenv("HTTPERR_LOG_LEVEL").Return("debug")
*/
package env
