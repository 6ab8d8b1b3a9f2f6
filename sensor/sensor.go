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

package sensor

import (
	"github.com/TimeWtr/thermowatch/metrics"
	"github.com/TimeWtr/thermowatch/observer"
	"github.com/TimeWtr/thermowatch/utils/log"
)

type Options func(*Sensor)

func WithCollector(mc metrics.Collector) Options {
	return func(s *Sensor) {
		if mc != nil {
			s.mc = mc
		}
	}
}

var _ observer.Subject = (*Sensor)(nil)

// Sensor is a simulated temperature sensor. Temperature is its only
// observable field.
type Sensor struct {
	*observer.Registry
	temperature float64
	mc          metrics.Collector
	l           log.Logger
}

func New(l log.Logger, opts ...Options) *Sensor {
	s := &Sensor{
		mc: metrics.NopCollector{},
		l:  l,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.Registry = observer.NewRegistry(l, observer.WithCollector(s.mc))
	return s
}

// ChangeMeasurements stores value as the current temperature and notifies
// every registered observer. Any value is accepted.
func (s *Sensor) ChangeMeasurements(value float64) error {
	s.temperature = value
	s.mc.ObserveReading(value)
	s.l.Debug("temperature changed",
		log.Float64Field("temperature", value),
		log.IntField("observers", s.Len()))

	return s.Notify(s.State())
}

func (s *Sensor) Temperature() float64 {
	return s.temperature
}

func (s *Sensor) State() observer.State {
	return observer.State{Temperature: s.temperature}
}
