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

// Package config builds ordered lighting layer stacks. Layer order is
// exactly the order of the Layer calls; there is no registration magic.
package config

import "github.com/dizzyd/keylight/lighting"

// Layer is one ordered entry of a lighting configuration.
type Layer struct {
	Scheme  lighting.LightingScheme
	Combine lighting.CombineType
	Mask    lighting.Mask
}

// Builder assembles an ordered layer stack.
type Builder struct {
	layers []Layer
}

// Layer appends one layer. Returns the builder for chaining.
func (b *Builder) Layer(scheme lighting.LightingScheme, combine lighting.CombineType, mask lighting.Mask) *Builder {
	b.layers = append(b.layers, Layer{Scheme: scheme, Combine: combine, Mask: mask})
	return b
}

// Layers returns the declared layers in order.
func (b *Builder) Layers() []Layer {
	return b.layers
}

// Build flattens the declared layers into a combining scheme.
func (b *Builder) Build() *lighting.CombiningScheme {
	scheme := lighting.NewCombiningScheme()
	for _, l := range b.layers {
		scheme.AddScheme(l.Scheme, l.Combine, l.Mask)
	}
	return scheme
}
