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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/TimeWtr/thermowatch/metrics"
	"github.com/TimeWtr/thermowatch/observer"
	"github.com/TimeWtr/thermowatch/utils/log"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func getLog() log.Logger {
	l, _ := zap.NewDevelopment()
	return log.NewZapAdapter(l)
}

type MockObserver struct {
	mock.Mock
	state observer.State
}

func (m *MockObserver) Update(state observer.State) error {
	m.state = state
	args := m.Called(state)
	return args.Error(0)
}

func (m *MockObserver) OnChange() error {
	return nil
}

func TestSensor_ChangeMeasurements(t *testing.T) {
	s := New(getLog())

	observers := []*MockObserver{new(MockObserver), new(MockObserver), new(MockObserver)}
	for _, ob := range observers {
		ob.On("Update", observer.State{Temperature: 87}).Return(nil).Once()
		require.NoError(t, s.Register(ob))
	}

	require.NoError(t, s.ChangeMeasurements(87))
	assert.Equal(t, float64(87), s.Temperature())

	for _, ob := range observers {
		ob.AssertExpectations(t)
		assert.Equal(t, float64(87), ob.state.Temperature)
	}
}

func TestSensor_ControllerAndDisplay(t *testing.T) {
	buf := new(bytes.Buffer)
	s := New(getLog())
	controller := observer.NewThresholdController(buf)
	display := observer.NewDisplay(buf)
	require.NoError(t, s.Register(controller))
	require.NoError(t, s.Register(display))

	require.NoError(t, s.ChangeMeasurements(95))

	assert.Equal(t, "Controller: Panic!\nDisplay: 95 Deg\n", buf.String())
	assert.Equal(t, float64(95), controller.State().Temperature)
	assert.Equal(t, float64(95), display.State().Temperature)

	buf.Reset()
	require.NoError(t, s.ChangeMeasurements(90))
	assert.Equal(t, "Controller: Everything under control\nDisplay: 90 Deg\n", buf.String())
}

func TestSensor_NoObservers(t *testing.T) {
	s := New(getLog())
	assert.NoError(t, s.ChangeMeasurements(60))
	assert.Equal(t, observer.State{Temperature: 60}, s.State())
}

func TestSensor_RemovedObserverSkipped(t *testing.T) {
	buf := new(bytes.Buffer)
	s := New(getLog())
	controller := observer.NewThresholdController(buf)
	display := observer.NewDisplay(buf)
	require.NoError(t, s.Register(controller))
	require.NoError(t, s.Register(display))
	require.NoError(t, s.Remove(controller))

	require.NoError(t, s.ChangeMeasurements(100))
	assert.Equal(t, "Display: 100 Deg\n", buf.String())
	assert.Zero(t, controller.State().Temperature)
}

func TestSensor_FailingObserver(t *testing.T) {
	failing := new(MockObserver)
	failing.On("Update", observer.State{Temperature: 70}).Return(errors.New("broken pipe"))

	buf := new(bytes.Buffer)
	s := New(getLog())
	require.NoError(t, s.Register(failing))
	require.NoError(t, s.Register(observer.NewDisplay(buf)))

	err := s.ChangeMeasurements(70)
	assert.ErrorContains(t, err, "broken pipe")
	assert.Equal(t, "Display: 70 Deg\n", buf.String())
}

func TestSensor_WithCollector(t *testing.T) {
	mc := metrics.NewPrometheus()
	s := New(getLog(), WithCollector(mc))
	require.NoError(t, s.Register(observer.NewDisplay(new(bytes.Buffer))))

	require.NoError(t, s.ChangeMeasurements(66))
	require.NoError(t, s.ChangeMeasurements(104))

	expected := `
# HELP thermowatch_temperature_degrees Latest temperature reading.
# TYPE thermowatch_temperature_degrees gauge
thermowatch_temperature_degrees 104
`
	assert.NoError(t, testutil.CollectAndCompare(mc.Registry(),
		strings.NewReader(expected), "thermowatch_temperature_degrees"))
	assert.Equal(t, 1, testutil.CollectAndCount(mc.Registry(), "thermowatch_notify_cycles_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(mc.Registry(), "thermowatch_notifications_total"))
}
