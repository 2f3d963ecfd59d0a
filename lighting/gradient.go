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
	"sort"

	"github.com/pkg/errors"
)

var ErrGradientPoints = errors.New("gradient requires at least two key points")
var ErrGradientSpan = errors.New("gradient key points must cover an increasing span")

// GradientKeyPoint anchors a color at position T on a gradient.
type GradientKeyPoint struct {
	Color Color
	T     float64
}

// Gradient interpolates between two or more key points sorted by T, in RGB
// or HSV space. Construction fails eagerly for fewer than two points or a
// non-increasing span.
type Gradient struct {
	points []GradientKeyPoint
	hsv    bool
}

// NewGradient validates and sorts the key points. Points sharing the same T
// keep their relative order, which allows hard color steps.
func NewGradient(points []GradientKeyPoint, hsv bool) (*Gradient, error) {
	if len(points) < 2 {
		return nil, errors.WithStack(ErrGradientPoints)
	}
	sorted := make([]GradientKeyPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].T < sorted[j].T })
	if !(sorted[len(sorted)-1].T > sorted[0].T) {
		return nil, errors.WithStack(ErrGradientSpan)
	}
	return &Gradient{points: sorted, hsv: hsv}, nil
}

// MustGradient is NewGradient for palettes declared as program constants;
// it panics on invalid points.
func MustGradient(points []GradientKeyPoint, hsv bool) *Gradient {
	g, err := NewGradient(points, hsv)
	if err != nil {
		panic(err)
	}
	return g
}

// GetColor returns the color at position t, interpolated between the
// bracketing key points. Positions outside the span clamp to the end
// points, so GetColor(Min()) and GetColor(Max()) are exact.
func (g *Gradient) GetColor(t float64) Color {
	pts := g.points
	if t <= pts[0].T {
		return pts[0].Color
	}
	if t >= pts[len(pts)-1].T {
		return pts[len(pts)-1].Color
	}

	i := 1
	for i < len(pts)-1 && t > pts[i].T {
		i++
	}
	prev, next := pts[i-1], pts[i]
	u := (t - prev.T) / (next.T - prev.T)
	return Lerp(prev.Color, next.Color, u, g.hsv)
}

// Min returns the position of the first key point.
func (g *Gradient) Min() float64 {
	return g.points[0].T
}

// Max returns the position of the last key point.
func (g *Gradient) Max() float64 {
	return g.points[len(g.points)-1].T
}

// Span returns the distance from the first to the last key point.
func (g *Gradient) Span() float64 {
	return g.Max() - g.Min()
}
