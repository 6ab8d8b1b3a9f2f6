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

package errorx

import (
	"errors"
)

var (
	ErrNilObserver      = errors.New("observer cannot be nil")
	ErrObserverNotFound = errors.New("observer not found")
	ErrObserverPanic    = errors.New("observer panicked")
)

var (
	ErrIterations   = errors.New("iterations must be greater than zero")
	ErrInterval     = errors.New("interval cannot be negative")
	ErrReadingRange = errors.New("min reading cannot be greater than max reading")
	ErrReadingSpan  = errors.New("reading range is too wide")
	ErrNilSource    = errors.New("reading source cannot be nil")
)

var (
	ErrDriverRunning = errors.New("driver is already running")
)
