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
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple. Every channel is clamped to [0, 255] at
// construction and after every operation; the zero value is black.
type Color struct {
	R, G, B uint8
}

// NewColor builds a Color, clamping each channel to [0, 255].
func NewColor(r, g, b int) Color {
	return Color{clampChannel(r), clampChannel(g), clampChannel(b)}
}

// Gray builds a Color with all three channels set to v.
func Gray(v int) Color {
	return NewColor(v, v, v)
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Add returns the channel-wise sum of c and o.
func (c Color) Add(o Color) Color {
	return NewColor(int(c.R)+int(o.R), int(c.G)+int(o.G), int(c.B)+int(o.B))
}

// Sub returns the channel-wise difference of c and o.
func (c Color) Sub(o Color) Color {
	return NewColor(int(c.R)-int(o.R), int(c.G)-int(o.G), int(c.B)-int(o.B))
}

// Scale multiplies each channel by s, rounding to the nearest integer.
func (c Color) Scale(s float64) Color {
	return NewColor(
		int(math.Round(float64(c.R)*s)),
		int(math.Round(float64(c.G)*s)),
		int(math.Round(float64(c.B)*s)))
}

// Invert returns the channel-wise complement 255-c.
func (c Color) Invert() Color {
	return Color{255 - c.R, 255 - c.G, 255 - c.B}
}

// IsBlack reports whether all three channels are zero. Compositing treats
// black as transparent for Overlay layers.
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

func (c Color) String() string {
	return fmt.Sprintf("Color[0x%02x%02x%02x]", c.R, c.G, c.B)
}

// Lerp interpolates between a and b at t, either directly through RGB space
// or through HSV space. The hue is interpolated linearly, without wrapping
// around the color wheel.
func Lerp(a, b Color, t float64, hsv bool) Color {
	if hsv {
		ah, as, av := a.hsv()
		bh, bs, bv := b.hsv()
		return fromHSV(lerp(ah, bh, t), lerp(as, bs, t), lerp(av, bv, t))
	}
	return NewColor(
		int(math.Round(lerp(float64(a.R), float64(b.R), t))),
		int(math.Round(lerp(float64(a.G), float64(b.G), t))),
		int(math.Round(lerp(float64(a.B), float64(b.B), t))))
}

func lerp(v0, v1, t float64) float64 {
	return (1-t)*v0 + t*v1
}

func (c Color) hsv() (h, s, v float64) {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsv()
}

func fromHSV(h, s, v float64) Color {
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return Color{r, g, b}
}
