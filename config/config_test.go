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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dizzyd/keylight/lighting"
)

var testNow = time.Date(2019, 6, 1, 12, 0, 0, 0, time.UTC)

func TestBuilderPreservesLayerOrder(t *testing.T) {
	red := lighting.SolidColorScheme{C: lighting.NewColor(255, 0, 0)}
	blue := lighting.SolidColorScheme{C: lighting.NewColor(0, 0, 255)}

	b := &Builder{}
	b.Layer(red, lighting.Overlay, lighting.All).
		Layer(blue, lighting.Overlay, lighting.WASD)

	layers := b.Layers()
	require.Len(t, layers, 2)
	assert.Equal(t, red, layers[0].Scheme)
	assert.Equal(t, blue, layers[1].Scheme)

	// The later layer wins where masks overlap.
	scheme := b.Build()
	colors := scheme.GetAllColors(lighting.All, testNow)
	assert.Equal(t, lighting.NewColor(0, 0, 255), colors["W"])
	assert.Equal(t, lighting.NewColor(255, 0, 0), colors["Escape"])
}

func TestBuilderBuildEmpty(t *testing.T) {
	scheme := (&Builder{}).Build()
	assert.Equal(t, 0, scheme.Len())
}

func TestFlameStarlightStack(t *testing.T) {
	scheme := NewFlameStarlight(42, testNow).Scheme()

	assert.Equal(t, 5, scheme.Len())
	// The reactive layer contributes key-press hooks.
	assert.NotEmpty(t, scheme.Hooks())
}

func TestFlameStarlightDeterministicForSeed(t *testing.T) {
	a := NewFlameStarlight(42, testNow).Scheme()
	b := NewFlameStarlight(42, testNow).Scheme()

	now := testNow.Add(1500 * time.Millisecond)
	assert.Equal(t, a.GetAllColors(lighting.All, now), b.GetAllColors(lighting.All, now))
}

func TestFlameStarlightCoversBoard(t *testing.T) {
	scheme := NewFlameStarlight(42, testNow).Scheme()

	colors := scheme.GetAllColors(lighting.All, testNow)
	require.Len(t, colors, len(lighting.All))

	// Outside the starlight mask only the flame layers apply, and with no
	// keys pressed those never produce blue.
	starlit := lighting.Function.Union(lighting.NewMask("Space"))
	for _, key := range lighting.All {
		if starlit.Contains(key) {
			continue
		}
		assert.Equal(t, uint8(0), colors[key].B, "key %q picked up blue without a press", key)
	}
}
