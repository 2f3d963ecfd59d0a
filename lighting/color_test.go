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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewColorClamps(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    Color
	}{
		{"in range", 10, 20, 30, Color{10, 20, 30}},
		{"negative", -5, -1, -255, Color{0, 0, 0}},
		{"overflow", 300, 256, 1000, Color{255, 255, 255}},
		{"mixed", -5, 300, 10, Color{0, 255, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewColor(tt.r, tt.g, tt.b))
		})
	}
}

func TestColorAddSubClamp(t *testing.T) {
	a := NewColor(200, 10, 128)
	b := NewColor(100, 20, 128)

	assert.Equal(t, Color{255, 30, 255}, a.Add(b))
	assert.Equal(t, Color{100, 0, 0}, a.Sub(b))
}

func TestColorScale(t *testing.T) {
	c := NewColor(200, 100, 51)

	assert.Equal(t, Color{100, 50, 26}, c.Scale(0.5))
	assert.Equal(t, Color{255, 200, 102}, c.Scale(2))
	assert.Equal(t, Color{0, 0, 0}, c.Scale(0))
}

func TestColorInvert(t *testing.T) {
	tests := []struct{ r, g, b int }{
		{0, 0, 0},
		{255, 255, 255},
		{10, 200, 128},
		{-5, 300, 17},
	}
	for _, tt := range tests {
		c := NewColor(tt.r, tt.g, tt.b)
		inv := c.Invert()
		assert.Equal(t, 255-c.R, inv.R)
		assert.Equal(t, 255-c.G, inv.G)
		assert.Equal(t, 255-c.B, inv.B)
		assert.Equal(t, c, inv.Invert())
	}
}

func TestColorIsBlack(t *testing.T) {
	assert.True(t, Color{}.IsBlack())
	assert.False(t, NewColor(0, 0, 1).IsBlack())
}

func TestGray(t *testing.T) {
	assert.Equal(t, Color{7, 7, 7}, Gray(7))
	assert.Equal(t, Color{255, 255, 255}, Gray(500))
}

func TestLerpRGB(t *testing.T) {
	a := NewColor(0, 0, 0)
	b := NewColor(100, 200, 50)

	assert.Equal(t, a, Lerp(a, b, 0, false))
	assert.Equal(t, b, Lerp(a, b, 1, false))
	assert.Equal(t, Color{50, 100, 25}, Lerp(a, b, 0.5, false))
}

func TestLerpHSVEndpoints(t *testing.T) {
	a := NewColor(255, 0, 0)
	b := NewColor(255, 175, 0)

	assert.Equal(t, a, Lerp(a, b, 0, true))
	assert.Equal(t, b, Lerp(a, b, 1, true))
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "Color[0x0aff00]", NewColor(10, 255, 0).String())
}
