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
	"github.com/TimeWtr/thermowatch"
)

// Collector 传感器通知链路的指标采集接口
type Collector interface {
	CollectSwitcher(enable bool) // 采集器开关
	ReadingMetrics
	NotifyMetrics
}

// ReadingMetrics 传感器读数指标
type ReadingMetrics interface {
	// ObserveReading 最新的温度读数
	ObserveReading(temperature float64)
}

// NotifyMetrics 通知周期指标
type NotifyMetrics interface {
	// ObserveCycle 一次通知周期通知的观察者数量和耗时(秒)
	ObserveCycle(observers int, seconds float64)
	// ObserveNotify 单个观察者的通知结果
	ObserveNotify(observer string, status thermowatch.OperationType)
}

var _ Collector = NopCollector{}

// NopCollector discards everything; used when no collector is configured.
type NopCollector struct{}

func (NopCollector) CollectSwitcher(bool) {}

func (NopCollector) ObserveReading(float64) {}

func (NopCollector) ObserveCycle(int, float64) {}

func (NopCollector) ObserveNotify(string, thermowatch.OperationType) {}
