/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestStringLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewStringLogger("Test")
	require.NoError(t, err)
	testLog(t, loggers)
}

func TestStringLoggerContent(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewStringLogger("Test")
	require.NoError(t, err)
	message := faker.Sentence()
	loggers.Log(message)
	loggers.LogError(message)
	content := loggers.GetLogContent()
	assert.Contains(t, content, "[Test] Output: "+message)
	assert.Contains(t, content, "[Test] Error: "+message)
	require.NoError(t, loggers.Close())
	assert.Empty(t, loggers.GetLogContent())
}
