// Copyright 2025 TimeWtr
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"testing"

	"github.com/TimeWtr/thermowatch/utils/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

func TestRegisterLoggers(t *testing.T) {
	require.NoError(t, registerLoggers())

	for _, tp := range []log.LoggerType{log.ZapLoggerType, log.LogrusLoggerType} {
		l, err := log.New(tp)
		require.NoError(t, err)
		assert.NotNil(t, l)
	}
}

func TestRun_Cancelled(t *testing.T) {
	require.NoError(t, registerLoggers())
	l, err := log.New(log.LogrusLoggerType)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, run(ctx, l), context.Canceled)
}
