// ***************************************************************************
//
//  Copyright 2019 David (Dizzy) Smith, dizzyd@dizzyd.com
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//       http://www.apache.org/licenses/LICENSE-2.0
//
//   Unless required by applicable law or agreed to in writing, software
//   distributed under the License is distributed on an "AS IS" BASIS,
//   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//   See the License for the specific language governing permissions and
//   limitations under the License.
// ***************************************************************************
package lighting

import (
	"math"
	"time"
)

// SingleColor returns n solid functions of the same color.
func SingleColor(n int, c Color) []ColorFunc {
	out := make([]ColorFunc, n)
	for i := range out {
		out[i] = SolidColor{C: c}
	}
	return out
}

// SolidGradientGrid spreads a gradient as solid colors across a w by h
// grid, flattened column-major. The gradient is stretched across length
// cells and rotated by angle degrees.
func SolidGradientGrid(w, h int, gradient *Gradient, length int, angle float64) []ColorFunc {
	out := make([]ColorFunc, 0, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			t := gridCell(x, y, length, angle)
			out = append(out, SolidColor{C: gradient.GetColor(t)})
		}
	}
	return out
}

// ColumnGradient spreads a gradient across the columns of a w by h grid.
func ColumnGradient(w, h int, gradient *Gradient) []ColorFunc {
	return SolidGradientGrid(w, h, gradient, w, 0)
}

// RowGradient spreads a gradient across the rows of a w by h grid.
func RowGradient(w, h int, gradient *Gradient) []ColorFunc {
	return SolidGradientGrid(w, h, gradient, h, 90)
}

// UniformPeriodic returns n references to one shared periodic walk, so
// every key shows the same color at the same time.
func UniformPeriodic(n int, gradient *Gradient, period time.Duration, now time.Time) []ColorFunc {
	fn := NewPeriodicColor(gradient, period, 0, now)
	out := make([]ColorFunc, n)
	for i := range out {
		out[i] = fn
	}
	return out
}

// PeriodicGradientGrid spreads phase-shifted periodic walks across a w by h
// grid, so the gradient appears to travel across the board. Reverse flips
// the travel direction.
func PeriodicGradientGrid(w, h int, gradient *Gradient, period time.Duration, length int, angle float64,
	reverse bool, now time.Time) []ColorFunc {
	out := make([]ColorFunc, 0, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			t := gridCell(x, y, length, angle)
			phase := time.Duration(t * float64(period))
			if reverse {
				phase = period - phase
			}
			out = append(out, NewPeriodicColor(gradient, period, phase, now))
		}
	}
	return out
}

// gridCell projects a grid coordinate onto [0, 1] along a rotated axis
// stretched across length cells.
func gridCell(x, y, length int, angle float64) float64 {
	if length < 2 {
		return 0
	}
	rads := -angle * math.Pi / 180
	i := math.Round(math.Abs(float64(x)*math.Cos(rads) - float64(y)*math.Sin(rads)))
	if i > float64(length-1) {
		i = float64(length - 1)
	}
	return i / float64(length-1)
}

// KeyFuncs pairs a flattened function slice with the ALL mask's key order.
// Extra functions are dropped; extra keys stay unbound.
func KeyFuncs(funcs []ColorFunc) map[string]ColorFunc {
	out := make(map[string]ColorFunc, len(All))
	for i, key := range All {
		if i >= len(funcs) {
			break
		}
		out[key] = funcs[i]
	}
	return out
}
