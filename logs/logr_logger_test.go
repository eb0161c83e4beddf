/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/foldkit/foldkit/commonerrors"
	"github.com/foldkit/foldkit/commonerrors/errortest"
	"github.com/foldkit/foldkit/logs/logstest"
)

func TestLogrLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewLogrLogger(logstest.NewTestLogger(t), "Test")
	require.NoError(t, err)
	testLog(t, loggers)
	_, err = NewLogrLogger(logstest.NewTestLogger(t), "")
	errortest.AssertError(t, err, commonerrors.ErrNoLoggerSource)
}

func TestLogrLoggerSources(t *testing.T) {
	defer goleak.VerifyNone(t)
	var lines []string
	sink := funcr.New(func(prefix, args string) {
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{})
	loggers, err := NewLogrLogger(sink, "first")
	require.NoError(t, err)
	require.NoError(t, loggers.SetLoggerSource("second"))
	require.NoError(t, loggers.SetLogSource("decode"))
	loggers.Log("done")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "second")
	assert.NotContains(t, lines[0], "first")
	assert.Contains(t, lines[0], "decode")
	assert.Contains(t, lines[0], "done")
}

func TestToLogr(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewLogrLogger(logstest.NewTestLogger(t), "Test")
	require.NoError(t, err)
	converted := ToLogr(loggers)
	converted.WithName(faker.Name()).WithValues(faker.Word(), faker.Name()).Error(commonerrors.ErrUnexpected, faker.Sentence())
	converted.Info(faker.Sentence(), faker.Word(), faker.Name())

	strLogger, err := NewStringLogger("string")
	require.NoError(t, err)
	message := faker.Sentence()
	ToLogr(strLogger).WithName("collector").Info(message)
	assert.Contains(t, strLogger.GetLogContent(), message)
	assert.Contains(t, strLogger.GetLogContent(), "collector")

	ToLogr(nil).Info(faker.Sentence())
}
