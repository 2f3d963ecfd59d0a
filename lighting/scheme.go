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

// LightingScheme produces a color for every key in a mask at an instant.
// Results are computed at call time, never cached.
type LightingScheme interface {
	GetAllColors(mask Mask, now time.Time) map[string]Color
}

// SolidColorScheme colors every key in the mask the same.
type SolidColorScheme struct {
	C Color
}

func (s SolidColorScheme) GetAllColors(mask Mask, _ time.Time) map[string]Color {
	out := make(map[string]Color, len(mask))
	for _, key := range mask {
		out[key] = s.C
	}
	return out
}

// FunctionScheme colors each key through its own color function. Keys in
// the mask without an entry are left uncolored.
type FunctionScheme struct {
	Funcs map[string]ColorFunc
}

func NewFunctionScheme(funcs map[string]ColorFunc) *FunctionScheme {
	return &FunctionScheme{Funcs: funcs}
}

func (s *FunctionScheme) GetAllColors(mask Mask, now time.Time) map[string]Color {
	out := make(map[string]Color, len(mask))
	for _, key := range mask {
		if fn, ok := s.Funcs[key]; ok {
			out[key] = fn.Color(now)
		}
	}
	return out
}

// Hooks aggregates the event handlers of any reactive functions in the
// table.
func (s *FunctionScheme) Hooks() []Hook {
	var hooks []Hook
	for _, fn := range s.Funcs {
		if h, ok := fn.(Hooker); ok {
			hooks = append(hooks, h.Hooks()...)
		}
	}
	return hooks
}

// ReactiveScheme lights keys under a wrapped scheme only while they are
// pressed, fading across the decay window after release. Each key gets its
// own envelope bound to that key.
type ReactiveScheme struct {
	inner     LightingScheme
	envelopes map[string]*Reactive
}

func NewReactiveScheme(inner LightingScheme, decay time.Duration) *ReactiveScheme {
	envelopes := make(map[string]*Reactive, len(All))
	for _, key := range All {
		if _, ok := KeyCodes[key]; ok {
			envelopes[key] = NewReactive(nil, key, decay)
		}
	}
	return &ReactiveScheme{inner: inner, envelopes: envelopes}
}

func (s *ReactiveScheme) GetAllColors(mask Mask, now time.Time) map[string]Color {
	colors := s.inner.GetAllColors(mask, now)
	out := make(map[string]Color, len(colors))
	for key, c := range colors {
		env, ok := s.envelopes[key]
		if !ok {
			continue
		}
		out[key] = c.Scale(env.Scalar(now))
	}
	return out
}

// Hooks exposes one event handler per key envelope.
func (s *ReactiveScheme) Hooks() []Hook {
	hooks := make([]Hook, 0, len(s.envelopes))
	for _, env := range s.envelopes {
		hooks = append(hooks, env.HandleEvent)
	}
	return hooks
}
