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
	"sync/atomic"
	"time"

	"github.com/TimeWtr/thermowatch/errorx"
	"github.com/TimeWtr/thermowatch/utils/atomicx"
	"github.com/TimeWtr/thermowatch/utils/log"
	"golang.org/x/net/context"
)

// Measurer receives readings, a sensor.Sensor in practice.
type Measurer interface {
	ChangeMeasurements(value float64) error
}

type Stats struct {
	Iterations int64 // 完成的读数次数
	Failures   int64 // 存在观察者失败的通知周期数
}

// Driver feeds readings into a Measurer at a fixed interval for a fixed
// number of iterations.
type Driver struct {
	cfg        Config
	measurer   Measurer
	source     Source
	l          log.Logger
	state      *atomicx.Bool
	iterations atomic.Int64
	failures   atomic.Int64
}

func New(measurer Measurer, l log.Logger, opts ...Options) (*Driver, error) {
	d := &Driver{
		cfg:      DefaultConfig(),
		measurer: measurer,
		l:        l,
		state:    atomicx.NewBool(),
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	if err := d.cfg.validate(); err != nil {
		return nil, err
	}

	if d.source == nil {
		d.source = newDefaultSource(d.cfg.MinReading, d.cfg.MaxReading)
	}

	return d, nil
}

// Run blocks until every iteration is done or ctx is cancelled. Observer
// failures are logged and do not stop the loop.
func (d *Driver) Run(ctx context.Context) error {
	if !d.state.CompareAndSwap(false, true) {
		return errorx.ErrDriverRunning
	}
	defer d.state.Store(false)

	d.l.Info("driver started",
		log.IntField("iterations", d.cfg.Iterations),
		log.DurationField("interval", d.cfg.Interval))

	timer := time.NewTimer(d.cfg.Interval)
	defer timer.Stop()

	for i := 0; i < d.cfg.Iterations; i++ {
		select {
		case <-ctx.Done():
			d.l.Info("driver cancelled", log.Int64Field("completed", d.iterations.Load()))
			return ctx.Err()
		case <-timer.C:
		}

		reading := d.source.Next()
		if err := d.measurer.ChangeMeasurements(reading); err != nil {
			d.failures.Add(1)
			d.l.Warn("notification cycle failed",
				log.Float64Field("temperature", reading),
				log.ErrorField(err))
		}
		d.iterations.Add(1)

		timer.Reset(d.cfg.Interval)
	}

	d.l.Info("driver finished",
		log.Int64Field("completed", d.iterations.Load()),
		log.Int64Field("failures", d.failures.Load()))
	return nil
}

func (d *Driver) Running() bool {
	return d.state.Load()
}

func (d *Driver) Stats() Stats {
	return Stats{
		Iterations: d.iterations.Load(),
		Failures:   d.failures.Load(),
	}
}

func (d *Driver) Config() Config {
	return d.cfg
}
