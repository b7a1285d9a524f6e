// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logger builds the zap loggers used to record rejected requests,
// for running locally as a CLI and in Kubernetes.
package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stacklok/toolhive-httperr/env"
)

// DebugProvider is an interface for checking if debug mode is enabled.
// This allows different projects to plug in their own debug flag implementation.
type DebugProvider interface {
	IsDebug() bool
}

// LevelProvider may also be implemented by a DebugProvider to pick the
// minimum level directly. It takes precedence over IsDebug.
type LevelProvider interface {
	Level() slog.Level
}

// defaultDebugProvider provides a default implementation that returns false.
type defaultDebugProvider struct{}

func (*defaultDebugProvider) IsDebug() bool {
	return false
}

// New creates a zap logger without touching the globals.
// If UNSTRUCTURED_LOGS is unset or true, it outputs plain log messages
// with only time and level to stderr. Otherwise it builds the production
// JSON logger writing to stdout.
func New(envReader env.Reader, debugProvider DebugProvider) (*zap.Logger, error) {
	if debugProvider == nil {
		debugProvider = &defaultDebugProvider{}
	}

	var config zap.Config
	if unstructuredLogsWithEnv(envReader) {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
		config.OutputPaths = []string{"stderr"}
		config.DisableStacktrace = true
		config.DisableCaller = true
	} else {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
	}

	level := zap.InfoLevel
	if lp, ok := debugProvider.(LevelProvider); ok {
		level = zapLevel(lp.Level())
	} else if debugProvider.IsDebug() {
		level = zap.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)

	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("building zap logger: %w", err)
	}
	return l, nil
}

// Initialize creates and configures the global logger using the default debug provider.
func Initialize() {
	InitializeWithOptions(&env.OSReader{}, &defaultDebugProvider{})
}

// InitializeWithDebug creates and configures the global logger with a custom debug provider.
func InitializeWithDebug(debugProvider DebugProvider) {
	InitializeWithOptions(&env.OSReader{}, debugProvider)
}

// InitializeWithOptions replaces the zap globals with a logger built by New.
// It panics if the logger cannot be built.
func InitializeWithOptions(envReader env.Reader, debugProvider DebugProvider) {
	zap.ReplaceGlobals(zap.Must(New(envReader, debugProvider)))
}

// NewLogr returns a logr.Logger which uses the given zap logger.
func NewLogr(l *zap.Logger) logr.Logger {
	return zapr.NewLogger(l)
}

// ErrorLogr adapts a logr.Logger to the printf-style error logging
// expected by httperr.Recover.
type ErrorLogr struct {
	Logger logr.Logger
}

// Errorf logs a formatted message as a logr error without an error value.
func (l ErrorLogr) Errorf(template string, args ...any) {
	l.Logger.Error(nil, fmt.Sprintf(template, args...))
}

// zapLevel maps a slog level onto the nearest zap level at or below it.
func zapLevel(l slog.Level) zapcore.Level {
	switch {
	case l < slog.LevelInfo:
		return zapcore.DebugLevel
	case l < slog.LevelWarn:
		return zapcore.InfoLevel
	case l < slog.LevelError:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func unstructuredLogsWithEnv(envReader env.Reader) bool {
	unstructuredLogs, err := strconv.ParseBool(envReader.Getenv("UNSTRUCTURED_LOGS"))
	if err != nil {
		// at this point if the error is not nil, the env var wasn't set, or is ""
		// which means we just default to outputting unstructured logs.
		return true
	}
	return unstructuredLogs
}
