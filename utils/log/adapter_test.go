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

package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegistry(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		err := Register("zerolog", func() Logger { return nil })
		assert.ErrorIs(t, err, ErrLoggerType)

		_, err = New("zerolog")
		assert.ErrorIs(t, err, ErrLoggerType)
	})

	t.Run("missing adapter", func(t *testing.T) {
		mu.Lock()
		delete(adapters, LogrusLoggerType)
		mu.Unlock()

		_, err := New(LogrusLoggerType)
		assert.ErrorIs(t, err, ErrLoggerAdapter)
	})

	t.Run("registered adapter", func(t *testing.T) {
		require.NoError(t, Register(ZapLoggerType, func() Logger {
			return NewZapAdapter(zap.NewNop())
		}))

		l, err := New(ZapLoggerType)
		require.NoError(t, err)
		assert.IsType(t, &ZapAdapter{}, l)
	})
}

func TestSetLevel(t *testing.T) {
	defer func() { _ = SetLevel(LevelInfo) }()

	assert.ErrorIs(t, SetLevel(LevelInvalid), ErrLevel)
	assert.NoError(t, SetLevel(LevelWarn))

	adapter, _ := NewZapAdapter(zap.NewNop()).(*ZapAdapter)
	assert.Equal(t, LevelWarn, adapter.level)
}
