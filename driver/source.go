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

package driver

import (
	"math/rand"
	"time"
)

type Source interface {
	Next() float64
}

// RandomSource yields uniformly distributed integer readings in [min, max].
// The range must pass Config validation.
type RandomSource struct {
	r        *rand.Rand
	min, max int
}

func NewRandomSource(minReading, maxReading int, seed int64) *RandomSource {
	return &RandomSource{
		r:   rand.New(rand.NewSource(seed)), //nolint:gosec // simulated readings
		min: minReading,
		max: maxReading,
	}
}

func (r *RandomSource) Next() float64 {
	return float64(r.min + r.r.Intn(r.max-r.min+1))
}

func newDefaultSource(minReading, maxReading int) *RandomSource {
	return NewRandomSource(minReading, maxReading, time.Now().UnixNano())
}
