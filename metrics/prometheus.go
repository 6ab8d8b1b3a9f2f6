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

package metrics

import (
	"net/http"

	"github.com/TimeWtr/thermowatch"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "thermowatch"

var _ Collector = (*Prometheus)(nil)

type Prometheus struct {
	enabled       bool                   // 是否开启指标采集
	registry      *prometheus.Registry   // 指标注册表
	temperature   prometheus.Gauge       // 最新温度读数
	readings      prometheus.Histogram   // 温度读数分布
	cycles        prometheus.Counter     // 通知周期总数
	cycleLatency  prometheus.Histogram   // 通知周期耗时
	cycleFanout   prometheus.Gauge       // 最近一次周期通知的观察者数量
	notifications *prometheus.CounterVec // 按观察者和结果统计的通知次数
}

func NewPrometheus() *Prometheus {
	p := &Prometheus{
		enabled:  true,
		registry: prometheus.NewRegistry(),
	}
	return p.register()
}

func (p *Prometheus) register() *Prometheus {
	p.temperature = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "temperature_degrees",
		Help:      "Latest temperature reading.",
	})
	p.registry.MustRegister(p.temperature)

	p.readings = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "readings_degrees",
		Help:      "Distribution of temperature readings.",
		Buckets:   prometheus.LinearBuckets(thermowatch.DefaultMinReading, 10, 7),
	})
	p.registry.MustRegister(p.readings)

	p.cycles = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notify_cycles_total",
		Help:      "Number of notification cycles.",
	})
	p.registry.MustRegister(p.cycles)

	p.cycleLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notify_cycle_seconds",
		Help:      "Latency of notification cycles.",
	})
	p.registry.MustRegister(p.cycleLatency)

	p.cycleFanout = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notify_cycle_observers",
		Help:      "Number of observers notified in the latest cycle.",
	})
	p.registry.MustRegister(p.cycleFanout)

	p.notifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Number of observer notifications by observer and result.",
	}, []string{"observer", "result"})
	p.registry.MustRegister(p.notifications)

	return p
}

// Handler 返回HTTP处理器用于对接各种框架
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(
		p.registry,
		promhttp.HandlerOpts{EnableOpenMetrics: true},
	)
}

func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

func (p *Prometheus) CollectSwitcher(enable bool) {
	p.enabled = enable
}

func (p *Prometheus) ObserveReading(temperature float64) {
	if !p.enabled {
		return
	}

	p.temperature.Set(temperature)
	p.readings.Observe(temperature)
}

func (p *Prometheus) ObserveCycle(observers int, seconds float64) {
	if !p.enabled {
		return
	}

	p.cycles.Inc()
	p.cycleFanout.Set(float64(observers))
	p.cycleLatency.Observe(seconds)
}

func (p *Prometheus) ObserveNotify(observer string, status thermowatch.OperationType) {
	if !p.enabled {
		return
	}

	p.notifications.With(prometheus.Labels{
		"observer": observer,
		"result":   status.String(),
	}).Inc()
}
