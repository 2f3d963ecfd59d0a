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

import "time"

// CombineType selects the blend rule used when stacking one layer's colors
// onto the accumulated colors below it.
type CombineType int

const (
	// Overlay replaces the accumulated color, unless the layer's color is
	// black, which is treated as transparent.
	Overlay CombineType = iota
	// Add sums the layer onto the accumulator, clamped per channel.
	Add
	// Subtract removes the layer from the accumulator, clamped per channel.
	Subtract
)

func (t CombineType) String() string {
	switch t {
	case Overlay:
		return "Overlay"
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	}
	return "Unknown"
}

type layer struct {
	scheme  LightingScheme
	combine CombineType
	mask    Mask
}

// CombiningScheme flattens an ordered stack of (scheme, combine type, mask)
// layers into one color per key. Insertion order is the compositing order
// and is permanent for the lifetime of a layer.
type CombiningScheme struct {
	layers []layer
}

func NewCombiningScheme() *CombiningScheme {
	return &CombiningScheme{}
}

// AddScheme appends a layer to the top of the stack.
func (s *CombiningScheme) AddScheme(scheme LightingScheme, combine CombineType, mask Mask) {
	s.layers = append(s.layers, layer{scheme: scheme, combine: combine, mask: mask})
}

// RemoveScheme removes the layers carrying the given scheme, matched by
// identity rather than position.
func (s *CombiningScheme) RemoveScheme(scheme LightingScheme) {
	kept := s.layers[:0]
	for _, l := range s.layers {
		if l.scheme != scheme {
			kept = append(kept, l)
		}
	}
	s.layers = kept
}

// ClearSchemes removes every layer.
func (s *CombiningScheme) ClearSchemes() {
	s.layers = nil
}

// Len returns the number of layers in the stack.
func (s *CombiningScheme) Len() int {
	return len(s.layers)
}

// GetAllColors composites the stack over the mask. The accumulator starts
// all black; each layer is restricted to the intersection of the call mask
// and the layer mask, then merged per its combine type. Keys a layer does
// not cover keep their accumulated color.
func (s *CombiningScheme) GetAllColors(mask Mask, now time.Time) map[string]Color {
	acc := make(map[string]Color, len(mask))
	for _, key := range mask {
		acc[key] = Color{}
	}

	for _, l := range s.layers {
		colors := l.scheme.GetAllColors(mask.Intersect(l.mask), now)
		for key, c := range colors {
			prev, ok := acc[key]
			if !ok {
				continue
			}
			switch l.combine {
			case Overlay:
				if !c.IsBlack() {
					acc[key] = c
				}
			case Add:
				acc[key] = prev.Add(c)
			case Subtract:
				acc[key] = prev.Sub(c)
			}
		}
	}
	return acc
}

// Hooks aggregates the event handlers of every layer scheme that reacts to
// key input.
func (s *CombiningScheme) Hooks() []Hook {
	var hooks []Hook
	for _, l := range s.layers {
		if h, ok := l.scheme.(Hooker); ok {
			hooks = append(hooks, h.Hooks()...)
		}
	}
	return hooks
}
