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

func TestCombiningEmptyStackIsBlack(t *testing.T) {
	s := NewCombiningScheme()
	colors := s.GetAllColors(WASD, testEpoch)

	require.Len(t, colors, len(WASD))
	for _, key := range WASD {
		assert.Equal(t, Color{}, colors[key])
	}
}

func TestCombiningOverlayReproducesLayer(t *testing.T) {
	s := NewCombiningScheme()
	s.AddScheme(SolidColorScheme{C: NewColor(10, 20, 30)}, Overlay, All)

	colors := s.GetAllColors(All, testEpoch)
	require.Len(t, colors, len(All))
	for _, key := range All {
		assert.Equal(t, NewColor(10, 20, 30), colors[key])
	}
}

func TestCombiningOverlayBlackIsTransparent(t *testing.T) {
	s := NewCombiningScheme()
	s.AddScheme(SolidColorScheme{C: NewColor(10, 0, 0)}, Overlay, All)
	s.AddScheme(SolidColorScheme{C: NewColor(0, 0, 0)}, Overlay, All)

	colors := s.GetAllColors(WASD, testEpoch)
	for _, key := range WASD {
		assert.Equal(t, NewColor(10, 0, 0), colors[key])
	}
}

func TestCombiningAddAndSubtractClamp(t *testing.T) {
	s := NewCombiningScheme()
	s.AddScheme(SolidColorScheme{C: NewColor(200, 0, 10)}, Add, All)
	s.AddScheme(SolidColorScheme{C: NewColor(100, 0, 30)}, Add, All)

	colors := s.GetAllColors(Mask{"A"}, testEpoch)
	assert.Equal(t, Color{255, 0, 40}, colors["A"])

	s.AddScheme(SolidColorScheme{C: NewColor(0, 5, 100)}, Subtract, All)
	colors = s.GetAllColors(Mask{"A"}, testEpoch)
	assert.Equal(t, Color{255, 0, 0}, colors["A"])
}

func TestCombiningMaskedLayerLeavesOtherKeysUntouched(t *testing.T) {
	base := SolidColorScheme{C: NewColor(10, 0, 0)}
	accent := SolidColorScheme{C: NewColor(5, 0, 0)}

	s := NewCombiningScheme()
	s.AddScheme(base, Overlay, All)
	s.AddScheme(accent, Add, Mask{"A"})

	colors := s.GetAllColors(All, testEpoch)
	assert.Equal(t, NewColor(15, 0, 0), colors["A"])
	for _, key := range All {
		if key == "A" {
			continue
		}
		assert.Equal(t, NewColor(10, 0, 0), colors[key])
	}
}

func TestCombiningLayerOrderMatters(t *testing.T) {
	red := SolidColorScheme{C: NewColor(255, 0, 0)}
	blue := SolidColorScheme{C: NewColor(0, 0, 255)}

	s := NewCombiningScheme()
	s.AddScheme(red, Overlay, All)
	s.AddScheme(blue, Overlay, All)
	assert.Equal(t, NewColor(0, 0, 255), s.GetAllColors(Mask{"A"}, testEpoch)["A"])

	s.ClearSchemes()
	s.AddScheme(blue, Overlay, All)
	s.AddScheme(red, Overlay, All)
	assert.Equal(t, NewColor(255, 0, 0), s.GetAllColors(Mask{"A"}, testEpoch)["A"])
}

func TestCombiningRemoveSchemeByIdentity(t *testing.T) {
	first := NewFunctionScheme(map[string]ColorFunc{"A": SolidColor{C: NewColor(1, 0, 0)}})
	second := NewFunctionScheme(map[string]ColorFunc{"A": SolidColor{C: NewColor(2, 0, 0)}})

	s := NewCombiningScheme()
	s.AddScheme(first, Overlay, All)
	s.AddScheme(second, Overlay, All)
	require.Equal(t, 2, s.Len())

	s.RemoveScheme(second)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, NewColor(1, 0, 0), s.GetAllColors(Mask{"A"}, testEpoch)["A"])

	s.RemoveScheme(first)
	assert.Equal(t, 0, s.Len())
}

func TestCombiningHooksAggregation(t *testing.T) {
	s := NewCombiningScheme()
	assert.Empty(t, s.Hooks())

	s.AddScheme(SolidColorScheme{C: NewColor(1, 2, 3)}, Overlay, All)
	assert.Empty(t, s.Hooks())

	s.AddScheme(NewReactiveScheme(SolidColorScheme{C: NewColor(80, 0, 255)}, 250*time.Millisecond), Overlay, All)
	assert.NotEmpty(t, s.Hooks())
}
