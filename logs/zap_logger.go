/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logs defines the loggers used by the CLI and passed down to collectors.
package logs

import (
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/foldkit/foldkit/commonerrors"
)

const (
	syncError = "invalid argument" // sync error can happen on Linux (sync /dev/stderr: invalid argument) see https://github.com/uber-go/zap/issues/328
)

// NewZapLogger returns a logger which uses zap logger (https://github.com/uber-go/zap)
func NewZapLogger(zapL *zap.Logger, loggerSource string) (loggers Loggers, err error) {
	if zapL == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	return NewLogrLoggerWithClose(zapr.NewLogger(zapL), loggerSource, func() error {
		err := zapL.Sync()
		if commonerrors.CorrespondTo(err, syncError) {
			return nil
		}
		return err
	})
}

// NewCLIZapLogger returns a console zap logger writing to standard error. Verbose enables debug traces.
func NewCLIZapLogger(loggerSource string, verbose bool) (Loggers, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zapL, err := cfg.Build()
	if err != nil {
		return nil, commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not create logger")
	}
	return NewZapLogger(zapL, loggerSource)
}
