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
	"sync"
	"time"

	perlin "github.com/aquilax/go-perlin"
)

// Palette maps the [0, 1] output of a noise field through a gradient.
// Speed shifts the field over time, scale zooms it (lower scale, bigger
// blobs), and smoothing blends each sample toward the previous one to
// reduce flicker at low speeds.
type Palette struct {
	gradient  *Gradient
	speed     float64
	scale     float64
	smoothing float64
}

func NewPalette(gradient *Gradient, speed, scale, smoothing float64) *Palette {
	if smoothing < 0 {
		smoothing = 0
	}
	if smoothing > 1 {
		smoothing = 1
	}
	return &Palette{gradient: gradient, speed: speed, scale: scale, smoothing: smoothing}
}

// GetColor samples the palette gradient at a proportion in [0, 1].
func (p *Palette) GetColor(proportion float64) Color {
	return p.gradient.GetColor(proportion)
}

const (
	noiseAlpha = 2
	noiseBeta  = 2
	noiseIter  = 3
	// Grid coordinates are divided by this before the palette scale is
	// applied, so the default scale of ~120 spans a few noise cells across
	// the board.
	noiseZoom = 1000
)

// NoiseScheme derives each key's color from a Perlin field sampled at the
// key's column-major board position plus elapsed time, mapped through a
// palette.
type NoiseScheme struct {
	palette *Palette
	noise   *perlin.Perlin
	epoch   time.Time

	mu   sync.Mutex
	last map[string]float64
}

func NewNoiseScheme(palette *Palette, seed int64, now time.Time) *NoiseScheme {
	return &NoiseScheme{
		palette: palette,
		noise:   perlin.NewPerlin(noiseAlpha, noiseBeta, noiseIter, seed),
		epoch:   now,
		last:    make(map[string]float64),
	}
}

func (s *NoiseScheme) GetAllColors(mask Mask, now time.Time) map[string]Color {
	t := now.Sub(s.epoch).Seconds() * s.palette.speed
	zoom := s.palette.scale / noiseZoom

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]Color, len(mask))
	for _, key := range mask {
		x, y, ok := PositionOf(key, false)
		if !ok {
			continue
		}
		v := s.noise.Noise3D(float64(x)*zoom, float64(y)*zoom, t)
		v = clampUnit((v + 1) / 2)
		if s.palette.smoothing > 0 {
			if prev, ok := s.last[key]; ok {
				v = prev + (v-prev)*(1-s.palette.smoothing)
			}
			s.last[key] = v
		}
		out[key] = s.palette.GetColor(v)
	}
	return out
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
