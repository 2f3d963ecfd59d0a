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
	"math/rand"
	"strings"
	"sync"
	"time"
)

// ColorFunc produces a single color for an instant in time. Implementations
// never read the wall clock themselves; callers pass the instant in, so the
// output is deterministic and testable.
type ColorFunc interface {
	Color(now time.Time) Color
}

// SolidColor ignores time and always returns the same color.
type SolidColor struct {
	C Color
}

func (f SolidColor) Color(time.Time) Color {
	return f.C
}

// PeriodicColor walks a gradient once per period, wrapping back to the
// start. The phase offsets where on the gradient the walk begins.
type PeriodicColor struct {
	gradient *Gradient
	period   time.Duration
	epoch    time.Time
}

func NewPeriodicColor(gradient *Gradient, period, phase time.Duration, now time.Time) *PeriodicColor {
	return &PeriodicColor{gradient: gradient, period: period, epoch: now.Add(-phase)}
}

func (f *PeriodicColor) Color(now time.Time) Color {
	elapsed := now.Sub(f.epoch) % f.period
	if elapsed < 0 {
		elapsed += f.period
	}
	frac := float64(elapsed) / float64(f.period)
	return f.gradient.GetColor(f.gradient.Min() + frac*f.gradient.Span())
}

// StaticGradient samples a gradient at one fixed position.
type StaticGradient struct {
	gradient *Gradient
	t        float64
}

// NewStaticGradient samples the gradient at t.
func NewStaticGradient(gradient *Gradient, t float64) StaticGradient {
	return StaticGradient{gradient: gradient, t: t}
}

// NewRandomStatic samples the gradient at a uniform-random position.
func NewRandomStatic(gradient *Gradient, rnd *rand.Rand) StaticGradient {
	t := gradient.Min() + rnd.Float64()*gradient.Span()
	return StaticGradient{gradient: gradient, t: t}
}

func (f StaticGradient) Color(time.Time) Color {
	return f.gradient.GetColor(f.t)
}

// Reactive scales a lower color function by an envelope driven by key
// events: 1.0 while the bound key is held, decaying linearly to 0 over the
// decay window after release, and 0 otherwise.
//
// The envelope state may be mutated by the event-delivery goroutine while
// another goroutine is composing colors, so it is guarded by a mutex.
type Reactive struct {
	lower ColorFunc
	key   string
	code  int
	decay time.Duration

	mu      sync.Mutex
	on      bool
	release time.Time
}

// NewReactive binds the envelope to a logical key name. A key missing from
// the scan code table never matches any event.
func NewReactive(lower ColorFunc, key string, decay time.Duration) *Reactive {
	code, ok := KeyCodes[key]
	if !ok {
		code = -1 << 30
	}
	return &Reactive{lower: lower, key: key, code: code, decay: decay}
}

// HandleEvent updates the envelope from a press or release of the bound
// key. Events for other keys are ignored.
func (r *Reactive) HandleEvent(ev KeyEvent) {
	if !r.matches(ev) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if ev.Pressed {
		r.on = true
		return
	}
	r.on = false
	r.release = ev.Time
}

// matches disambiguates shared scan codes: a key bound to a right-hand
// name only reacts to events whose name carries the "right" prefix, and a
// numpad-class key only reacts to events with the keypad flag set.
func (r *Reactive) matches(ev KeyEvent) bool {
	if ev.Code != r.code {
		return false
	}
	if RightKeys.Contains(r.key) {
		return strings.HasPrefix(ev.Name, "right") && !ev.Keypad
	}
	if NumpadKeys.Contains(r.key) {
		return ev.Keypad
	}
	return !ev.Keypad && !strings.HasPrefix(ev.Name, "right")
}

// Scalar returns the envelope value at an instant: 1 while on, linearly
// decaying from 1 to 0 across the decay window after release.
func (r *Reactive) Scalar(now time.Time) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.on {
		return 1
	}
	if r.release.IsZero() {
		return 0
	}
	elapsed := now.Sub(r.release)
	if elapsed >= r.decay {
		return 0
	}
	return float64(r.decay-elapsed) / float64(r.decay)
}

func (r *Reactive) Color(now time.Time) Color {
	return r.lower.Color(now).Scale(r.Scalar(now))
}

// Hooks exposes the event handler for registration.
func (r *Reactive) Hooks() []Hook {
	return []Hook{r.HandleEvent}
}
