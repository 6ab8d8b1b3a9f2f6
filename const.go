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

package thermowatch

import "time"

const (
	// PanicThreshold readings strictly above this value are reported as a panic.
	PanicThreshold = 90
	// Unit is appended to every displayed reading.
	Unit = "Deg"
)

const (
	DefaultIterations = 10000
	DefaultInterval   = 2 * time.Second
	DefaultMinReading = 50
	DefaultMaxReading = 110
)

type ControlStatus int

const (
	StatusNormal ControlStatus = iota
	StatusPanic
)

func (c ControlStatus) String() string {
	switch c {
	case StatusNormal:
		return "Everything under control"
	case StatusPanic:
		return "Panic!"
	default:
		return "unknown"
	}
}

// Classify maps a temperature reading onto its control status.
func Classify(temperature float64) ControlStatus {
	if temperature > PanicThreshold {
		return StatusPanic
	}

	return StatusNormal
}

type OperationType int

const (
	NotifySuccess OperationType = iota
	NotifyFailure
)

func (o OperationType) String() string {
	switch o {
	case NotifySuccess:
		return "success"
	case NotifyFailure:
		return "failure"
	default:
		return "unknown"
	}
}
