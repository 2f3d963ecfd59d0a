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
	"github.com/stretchr/testify/require"
)

func TestNewGradientValidation(t *testing.T) {
	black := GradientKeyPoint{Color: NewColor(0, 0, 0), T: 0}
	white := GradientKeyPoint{Color: NewColor(255, 255, 255), T: 1}

	_, err := NewGradient(nil, false)
	assert.ErrorIs(t, err, ErrGradientPoints)

	_, err = NewGradient([]GradientKeyPoint{black}, false)
	assert.ErrorIs(t, err, ErrGradientPoints)

	_, err = NewGradient([]GradientKeyPoint{black, {Color: white.Color, T: 0}}, false)
	assert.ErrorIs(t, err, ErrGradientSpan)

	g, err := NewGradient([]GradientKeyPoint{black, white}, false)
	require.NoError(t, err)
	assert.Equal(t, 1.0, g.Span())
}

func TestGradientSortsKeyPoints(t *testing.T) {
	g := MustGradient([]GradientKeyPoint{
		{Color: NewColor(255, 175, 0), T: 1},
		{Color: NewColor(255, 0, 0), T: 0},
	}, false)

	assert.Equal(t, NewColor(255, 0, 0), g.GetColor(0))
	assert.Equal(t, NewColor(255, 175, 0), g.GetColor(1))
}

func TestGradientEndpointsExact(t *testing.T) {
	first := NewColor(12, 34, 56)
	last := NewColor(200, 100, 0)
	g := MustGradient([]GradientKeyPoint{
		{Color: first, T: 0.25},
		{Color: NewColor(90, 90, 90), T: 0.5},
		{Color: last, T: 0.75},
	}, false)

	assert.Equal(t, first, g.GetColor(g.Min()))
	assert.Equal(t, last, g.GetColor(g.Max()))
}

func TestGradientClampsOutOfRange(t *testing.T) {
	first := NewColor(10, 0, 0)
	last := NewColor(0, 0, 10)
	g := MustGradient([]GradientKeyPoint{
		{Color: first, T: 0},
		{Color: last, T: 1},
	}, false)

	assert.Equal(t, first, g.GetColor(-5))
	assert.Equal(t, last, g.GetColor(5))
}

func TestGradientInterpolatesBetweenBrackets(t *testing.T) {
	g := MustGradient([]GradientKeyPoint{
		{Color: NewColor(0, 0, 0), T: 0},
		{Color: NewColor(100, 100, 100), T: 1},
		{Color: NewColor(200, 0, 0), T: 2},
	}, false)

	assert.Equal(t, Color{50, 50, 50}, g.GetColor(0.5))
	assert.Equal(t, Color{100, 100, 100}, g.GetColor(1))
	assert.Equal(t, Color{150, 50, 50}, g.GetColor(1.5))
}

func TestGradientHardStep(t *testing.T) {
	// Two key points sharing a T produce a hard color step, as used by the
	// starlight palette.
	g := MustGradient([]GradientKeyPoint{
		{Color: NewColor(0, 0, 0), T: 0},
		{Color: NewColor(0, 0, 0), T: 0.875},
		{Color: NewColor(100, 25, 127), T: 0.875},
		{Color: NewColor(200, 50, 255), T: 1},
	}, false)

	assert.Equal(t, NewColor(0, 0, 0), g.GetColor(0.5))
	assert.Equal(t, NewColor(0, 0, 0), g.GetColor(0.875))
	assert.Equal(t, NewColor(150, 38, 191), g.GetColor(0.9375))
	assert.Equal(t, NewColor(200, 50, 255), g.GetColor(1))
}

func TestMustGradientPanics(t *testing.T) {
	assert.Panics(t, func() { MustGradient(nil, false) })
}
