/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"log"
	"strings"

	"github.com/sasha-s/go-deadlock"
)

type StringWriter struct {
	mu   deadlock.RWMutex
	logs strings.Builder
}

func (w *StringWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.logs.Write(p)
}

func (w *StringWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.logs.Reset()
	return nil
}

func (w *StringWriter) GetFullContent() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.logs.String()
}

// StringLoggers keeps every message in memory. Mostly useful in tests.
type StringLoggers struct {
	GenericLoggers
	LogWriter StringWriter
}

func (l *StringLoggers) GetLogContent() string {
	return l.LogWriter.GetFullContent()
}

// Close closes the logger and discards its content.
func (l *StringLoggers) Close() (err error) {
	err = l.LogWriter.Close()
	if err != nil {
		return
	}
	err = l.GenericLoggers.Close()
	return
}

// NewStringLogger creates a logger to a string.
func NewStringLogger(loggerSource string) (loggers *StringLoggers, err error) {
	loggers = &StringLoggers{}
	loggers.GenericLoggers = GenericLoggers{
		Output: log.New(&loggers.LogWriter, fmt.Sprintf("[%v] Output: ", loggerSource), 0),
		Error:  log.New(&loggers.LogWriter, fmt.Sprintf("[%v] Error: ", loggerSource), 0),
	}
	return
}
