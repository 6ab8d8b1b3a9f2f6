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

package observer

//go:generate mockgen -destination=mocks/observer_mock.go -package=mocks github.com/TimeWtr/thermowatch/observer Observer

// State is the snapshot of a subject's observable fields pushed on every
// notification. It is passed by value.
type State struct {
	Temperature float64
}

type Observer interface {
	// Update stores state as the observer's own and reacts through OnChange.
	Update(state State) error
	// OnChange reports the state stored by the latest Update.
	OnChange() error
}

type Subject interface {
	Register(observer Observer) error
	Remove(observer Observer) error
	Notify(state State) error
}

// Named observers are labelled by name in logs and metrics.
type Named interface {
	Name() string
}
