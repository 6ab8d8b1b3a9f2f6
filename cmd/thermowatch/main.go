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
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/TimeWtr/thermowatch/driver"
	"github.com/TimeWtr/thermowatch/metrics"
	"github.com/TimeWtr/thermowatch/observer"
	"github.com/TimeWtr/thermowatch/sensor"
	"github.com/TimeWtr/thermowatch/utils/log"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"golang.org/x/net/context"
)

func main() {
	if err := registerLoggers(); err != nil {
		panic(err)
	}

	l, err := log.New(log.ZapLoggerType)
	if err != nil {
		panic(err)
	}
	defer func() { _ = l.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, l); err != nil && !errors.Is(err, context.Canceled) {
		l.Error("thermowatch exited", log.ErrorField(err))
		os.Exit(1)
	}
}

func registerLoggers() error {
	err := log.Register(log.ZapLoggerType, func() log.Logger {
		zl, zerr := zap.NewProduction()
		if zerr != nil {
			zl = zap.NewNop()
		}
		return log.NewZapAdapter(zl)
	})
	if err != nil {
		return err
	}

	return log.Register(log.LogrusLoggerType, func() log.Logger {
		return log.NewLogrusAdapter(logrus.New())
	})
}

func run(ctx context.Context, l log.Logger) error {
	mc := metrics.NewPrometheus()
	s := sensor.New(l.With(log.StringField("component", "sensor")), sensor.WithCollector(mc))

	if err := s.Register(observer.NewThresholdController(os.Stdout)); err != nil {
		return err
	}
	if err := s.Register(observer.NewDisplay(os.Stdout)); err != nil {
		return err
	}

	d, err := driver.New(s, l.With(log.StringField("component", "driver")))
	if err != nil {
		return err
	}

	return d.Run(ctx)
}
