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
package config

import (
	"time"

	"github.com/dizzyd/keylight/lighting"
)

// FlameStarlight is the flame / starlight / blue-press preset: a flame
// gradient rising across the board, Perlin-driven flicker and dampen
// layers subtracted on top, sparkling starlight over the function row and
// the spacebar, and a reactive blue layer under pressed keys.
type FlameStarlight struct {
	seed int64
	now  time.Time
}

// NewFlameStarlight seeds the preset's noise fields and anchors its
// periodic state at now.
func NewFlameStarlight(seed int64, now time.Time) *FlameStarlight {
	return &FlameStarlight{seed: seed, now: now}
}

func (c *FlameStarlight) Scheme() *lighting.CombiningScheme {
	cols, rows := lighting.GridSize()
	b := &Builder{}

	flameBase := lighting.MustGradient([]lighting.GradientKeyPoint{
		{Color: lighting.NewColor(255, 0, 0), T: 0},
		{Color: lighting.NewColor(255, 175, 0), T: 1},
	}, true)
	b.Layer(
		lighting.NewFunctionScheme(lighting.KeyFuncs(lighting.ColumnGradient(cols, rows, flameBase))),
		lighting.Overlay, lighting.All)

	flicker := lighting.MustGradient([]lighting.GradientKeyPoint{
		{Color: lighting.NewColor(0, 0, 0), T: 0},
		{Color: lighting.NewColor(127, 127, 127), T: 1},
	}, false)
	b.Layer(
		lighting.NewNoiseScheme(lighting.NewPalette(flicker, 0.1, 120, 0), c.seed, c.now),
		lighting.Subtract, lighting.All)

	dampen := lighting.MustGradient([]lighting.GradientKeyPoint{
		{Color: lighting.NewColor(180, 180, 180), T: 0},
		{Color: lighting.NewColor(130, 130, 175), T: 0.1},
		{Color: lighting.NewColor(0, 0, 0), T: 1},
	}, false)
	b.Layer(
		lighting.NewFunctionScheme(lighting.KeyFuncs(lighting.ColumnGradient(cols, rows, dampen))),
		lighting.Subtract, lighting.All)

	const starlightChance = 0.125
	starlight := lighting.MustGradient([]lighting.GradientKeyPoint{
		{Color: lighting.NewColor(0, 0, 0), T: 0},
		{Color: lighting.NewColor(0, 0, 0), T: 1 - starlightChance},
		{Color: lighting.NewColor(100, 25, 127), T: 1 - starlightChance},
		{Color: lighting.NewColor(200, 50, 255), T: 1},
	}, false)
	b.Layer(
		lighting.NewNoiseScheme(lighting.NewPalette(starlight, 0.05, 115, 0), c.seed+1, c.now),
		lighting.Overlay, lighting.Function.Union(lighting.NewMask("Space")))

	b.Layer(
		lighting.NewReactiveScheme(lighting.SolidColorScheme{C: lighting.NewColor(80, 0, 255)}, 400*time.Millisecond),
		lighting.Overlay, lighting.All)

	return b.Build()
}
