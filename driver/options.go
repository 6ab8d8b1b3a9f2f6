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
	"time"

	"github.com/TimeWtr/thermowatch/errorx"
)

type Options func(*Driver) error

func WithIterations(iterations int) Options {
	return func(d *Driver) error {
		d.cfg.Iterations = iterations
		return nil
	}
}

func WithInterval(interval time.Duration) Options {
	return func(d *Driver) error {
		d.cfg.Interval = interval
		return nil
	}
}

func WithReadingRange(minReading, maxReading int) Options {
	return func(d *Driver) error {
		d.cfg.MinReading = minReading
		d.cfg.MaxReading = maxReading
		return nil
	}
}

// WithSource replaces the random reading source.
func WithSource(src Source) Options {
	return func(d *Driver) error {
		if src == nil {
			return errorx.ErrNilSource
		}

		d.source = src
		return nil
	}
}
