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

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/TimeWtr/thermowatch"
	"github.com/TimeWtr/thermowatch/errorx"
	"github.com/TimeWtr/thermowatch/metrics"
	"github.com/TimeWtr/thermowatch/utils/log"
	"go.uber.org/multierr"
)

type Options func(*Registry)

func WithCollector(mc metrics.Collector) Options {
	return func(r *Registry) {
		if mc != nil {
			r.mc = mc
		}
	}
}

var _ Subject = (*Registry)(nil)

// Registry keeps observers in registration order and notifies them
// synchronously. Duplicates are allowed.
type Registry struct {
	observers []Observer
	mu        sync.RWMutex
	mc        metrics.Collector
	l         log.Logger
}

func NewRegistry(l log.Logger, opts ...Options) *Registry {
	r := &Registry{
		observers: []Observer{},
		mc:        metrics.NopCollector{},
		l:         l,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Registry) Register(observer Observer) error {
	if observer == nil {
		r.l.Warn("reject nil observer")
		return errorx.ErrNilObserver
	}

	r.mu.Lock()
	r.observers = append(r.observers, observer)
	count := len(r.observers)
	r.mu.Unlock()

	r.l.Debug("observer registered",
		log.StringField("observer", nameOf(observer)),
		log.IntField("observers", count))
	return nil
}

// Remove drops the first registered entry equal to observer.
func (r *Registry) Remove(observer Observer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, ob := range r.observers {
		if sameObserver(ob, observer) {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			r.l.Debug("observer removed",
				log.StringField("observer", nameOf(observer)),
				log.IntField("observers", len(r.observers)))
			return nil
		}
	}

	return errorx.ErrObserverNotFound
}

// Notify pushes state to every observer in registration order. A failing
// observer does not stop the cycle; all failures are returned together.
func (r *Registry) Notify(state State) error {
	observers := r.Observers()

	start := time.Now()
	var err error
	for idx, ob := range observers {
		err = multierr.Append(err, r.notifyOne(idx, ob, state))
	}
	r.mc.ObserveCycle(len(observers), time.Since(start).Seconds())

	return err
}

func (r *Registry) notifyOne(idx int, ob Observer, state State) (err error) {
	name := nameOf(ob)
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", errorx.ErrObserverPanic, rec)
		}

		if err == nil {
			r.mc.ObserveNotify(name, thermowatch.NotifySuccess)
			return
		}

		err = fmt.Errorf("observer #%d (%s): %w", idx, name, err)
		r.mc.ObserveNotify(name, thermowatch.NotifyFailure)
		r.l.Error("notify observer failed",
			log.StringField("observer", name),
			log.IntField("position", idx),
			log.ErrorField(err))
	}()

	return ob.Update(state)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.observers)
}

// Observers returns a copy of the registered observers.
func (r *Registry) Observers() []Observer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	copyObservers := make([]Observer, len(r.observers))
	copy(copyObservers, r.observers)
	return copyObservers
}

// sameObserver reports whether a and b are equal. Observers whose dynamic
// type is not comparable never match.
func sameObserver(a, b Observer) bool {
	ta := reflect.TypeOf(a)
	if ta == nil || ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}

	return a == b
}

// nameOf falls back to the dynamic type when Name panics.
func nameOf(ob Observer) (name string) {
	named, ok := ob.(Named)
	if !ok {
		return fmt.Sprintf("%T", ob)
	}

	defer func() {
		if rec := recover(); rec != nil {
			name = fmt.Sprintf("%T", ob)
		}
	}()

	return named.Name()
}
