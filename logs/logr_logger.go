/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/sasha-s/go-deadlock"

	"github.com/foldkit/foldkit/commonerrors"
)

const (
	KeyLogSource    = "source"
	KeyLoggerSource = "logger-source"
)

type logrLogger struct {
	mu        deadlock.RWMutex
	base      logr.Logger
	logger    logr.Logger
	closeFunc func() error
}

func (l *logrLogger) Close() error {
	if l.closeFunc == nil {
		return nil
	}
	return l.closeFunc()
}

// Check always succeeds once the loggers are created: a logr.Logger without sink discards messages.
func (l *logrLogger) Check() error {
	if l == nil {
		return commonerrors.ErrNoLogger
	}
	return nil
}

func (l *logrLogger) SetLogSource(source string) error {
	if source == "" {
		return commonerrors.ErrNoLogSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = l.logger.WithValues(KeyLogSource, source)
	return nil
}

func (l *logrLogger) SetLoggerSource(source string) error {
	if source == "" {
		return commonerrors.ErrNoLoggerSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = l.base.WithName(source).WithValues(KeyLoggerSource, source)
	return nil
}

func (l *logrLogger) get() logr.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.logger
}

func (l *logrLogger) Log(output ...any) {
	l.get().Info(strings.TrimSpace(fmt.Sprintln(output...)))
}

func (l *logrLogger) LogError(err ...any) {
	var cause error
	var rest []any
	for i := range err {
		if e, ok := err[i].(error); ok && cause == nil {
			cause = e
			continue
		}
		rest = append(rest, err[i])
	}
	l.get().Error(cause, strings.TrimSpace(fmt.Sprintln(rest...)))
}

// NewLogrLogger creates loggers based on a logr implementation (https://github.com/go-logr/logr)
func NewLogrLogger(logrImpl logr.Logger, loggerSource string) (Loggers, error) {
	return NewLogrLoggerWithClose(logrImpl, loggerSource, nil)
}

// NewLogrLoggerWithClose is similar to NewLogrLogger but runs closeFunc when the loggers are closed.
func NewLogrLoggerWithClose(logrImpl logr.Logger, loggerSource string, closeFunc func() error) (loggers Loggers, err error) {
	l := &logrLogger{base: logrImpl, logger: logrImpl, closeFunc: closeFunc}
	err = l.SetLoggerSource(loggerSource)
	if err != nil {
		return
	}
	loggers = l
	return
}

// ToLogr converts loggers into a logr.Logger. Loggers created from a logr implementation return it directly.
func ToLogr(loggers Loggers) logr.Logger {
	if loggers == nil {
		return logr.Discard()
	}
	if l, ok := loggers.(*logrLogger); ok {
		return l.get()
	}
	return stdr.New(log.New(&loggersWriter{loggers: loggers}, "", 0))
}

type loggersWriter struct {
	loggers Loggers
}

func (w *loggersWriter) Write(p []byte) (int, error) {
	w.loggers.Log(strings.TrimSpace(string(p)))
	return len(p), nil
}
