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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grayPalette(t *testing.T) *Palette {
	t.Helper()
	return NewPalette(grayRamp(t), 0.1, 120, 0)
}

func TestNoiseSchemeCoversMask(t *testing.T) {
	s := NewNoiseScheme(grayPalette(t), 42, testEpoch)

	colors := s.GetAllColors(All, testEpoch)
	require.Len(t, colors, len(All))
	for _, key := range All {
		c := colors[key]
		// A gray ramp palette only ever yields grays.
		assert.Equal(t, c.R, c.G)
		assert.Equal(t, c.G, c.B)
	}
}

func TestNoiseSchemeDeterministicForSeed(t *testing.T) {
	a := NewNoiseScheme(grayPalette(t), 42, testEpoch)
	b := NewNoiseScheme(grayPalette(t), 42, testEpoch)

	now := testEpoch.Add(3 * time.Second)
	assert.Equal(t, a.GetAllColors(All, now), b.GetAllColors(All, now))
}

func TestNoiseSchemeSeedChangesField(t *testing.T) {
	a := NewNoiseScheme(grayPalette(t), 42, testEpoch)
	b := NewNoiseScheme(grayPalette(t), 43, testEpoch)

	assert.NotEqual(t, a.GetAllColors(All, testEpoch), b.GetAllColors(All, testEpoch))
}

func TestNoiseSchemeFullSmoothingFreezesField(t *testing.T) {
	s := NewNoiseScheme(NewPalette(grayRamp(t), 0.5, 120, 1), 42, testEpoch)

	first := s.GetAllColors(All, testEpoch)
	later := s.GetAllColors(All, testEpoch.Add(10*time.Second))
	assert.Equal(t, first, later)
}

func TestNewPaletteClampsSmoothing(t *testing.T) {
	assert.Equal(t, 0.0, NewPalette(grayRamp(t), 1, 1, -2).smoothing)
	assert.Equal(t, 1.0, NewPalette(grayRamp(t), 1, 1, 5).smoothing)
	assert.Equal(t, 0.25, NewPalette(grayRamp(t), 1, 1, 0.25).smoothing)
}

func TestPaletteGetColor(t *testing.T) {
	p := grayPalette(t)
	assert.Equal(t, Color{}, p.GetColor(0))
	assert.Equal(t, Color{255, 255, 255}, p.GetColor(1))
}
