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
	"math"
	"time"

	"github.com/TimeWtr/thermowatch"
	"github.com/TimeWtr/thermowatch/errorx"
)

type Config struct {
	Iterations int           // 读数循环次数
	Interval   time.Duration // 两次读数之间的间隔
	MinReading int           // 随机读数下限(包含)
	MaxReading int           // 随机读数上限(包含)
}

func DefaultConfig() Config {
	return Config{
		Iterations: thermowatch.DefaultIterations,
		Interval:   thermowatch.DefaultInterval,
		MinReading: thermowatch.DefaultMinReading,
		MaxReading: thermowatch.DefaultMaxReading,
	}
}

func (c Config) validate() error {
	if c.Iterations <= 0 {
		return errorx.ErrIterations
	}

	if c.Interval < 0 {
		return errorx.ErrInterval
	}

	if c.MinReading > c.MaxReading {
		return errorx.ErrReadingRange
	}

	// span+1 must stay positive for rand.Intn.
	if span := c.MaxReading - c.MinReading; span < 0 || span == math.MaxInt {
		return errorx.ErrReadingSpan
	}

	return nil
}
