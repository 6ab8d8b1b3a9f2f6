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
	"io"
	"os"
	"strconv"

	"github.com/TimeWtr/thermowatch"
)

// base holds the state shared by the console observers.
type base struct {
	w     io.Writer
	state State
}

func newBase(w io.Writer) base {
	if w == nil {
		w = os.Stdout
	}

	return base{w: w}
}

func (b *base) State() State {
	return b.state
}

var (
	_ Observer = (*ThresholdController)(nil)
	_ Observer = (*Display)(nil)
)

// ThresholdController reports whether the temperature is above the panic threshold.
type ThresholdController struct {
	base
}

func NewThresholdController(w io.Writer) *ThresholdController {
	return &ThresholdController{base: newBase(w)}
}

func (c *ThresholdController) Name() string {
	return "controller"
}

func (c *ThresholdController) Update(state State) error {
	c.state = state
	return c.OnChange()
}

func (c *ThresholdController) OnChange() error {
	_, err := fmt.Fprintf(c.w, "Controller: %s\n", thermowatch.Classify(c.state.Temperature))
	return err
}

// Display prints the temperature as is, followed by the unit.
type Display struct {
	base
}

func NewDisplay(w io.Writer) *Display {
	return &Display{base: newBase(w)}
}

func (d *Display) Name() string {
	return "display"
}

func (d *Display) Update(state State) error {
	d.state = state
	return d.OnChange()
}

func (d *Display) OnChange() error {
	_, err := fmt.Fprintf(d.w, "Display: %s %s\n",
		strconv.FormatFloat(d.state.Temperature, 'f', -1, 64), thermowatch.Unit)
	return err
}
