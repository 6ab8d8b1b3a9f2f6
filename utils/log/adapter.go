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
	"errors"
	"sync"
)

var (
	ErrLoggerType    = errors.New("logger type is invalid")
	ErrLoggerAdapter = errors.New("logger adapter not exist, please register adapter")
	ErrLevel         = errors.New("invalid log level")
)

var (
	mu           sync.RWMutex
	adapters     = map[LoggerType]func() Logger{}
	currentLevel = LevelInfo
)

// Register binds a constructor to a logger type, replacing any previous one.
func Register(tp LoggerType, adapter func() Logger) error {
	if !tp.valid() {
		return ErrLoggerType
	}

	mu.Lock()
	defer mu.Unlock()
	adapters[tp] = adapter
	return nil
}

func New(tp LoggerType) (Logger, error) {
	if !tp.valid() {
		return nil, ErrLoggerType
	}

	mu.RLock()
	adapter, ok := adapters[tp]
	mu.RUnlock()
	if !ok {
		return nil, ErrLoggerAdapter
	}

	return adapter(), nil
}

// SetLevel sets the level picked up by adapters created afterwards.
func SetLevel(level Level) error {
	if !level.valid() {
		return ErrLevel
	}

	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
	return nil
}

func getLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return currentLevel
}
