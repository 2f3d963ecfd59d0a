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

// Mask is an ordered set of key names an effect applies to. Masks are
// treated as immutable values; the set operations return new masks.
type Mask []string

// Preset masks.
var (
	// All covers every physical key, in row-major board order.
	All Mask

	WASD     = Mask{"W", "A", "S", "D"}
	Function = Mask{"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12"}
	Numpad   = Mask{"N0", "N1", "N2", "N3", "N4", "N5", "N6", "N7", "N8", "N9", "Divide", "Multiply",
		"NumLock", "NDelete", "Subtract", "Add", "RightEnter"}
)

func init() {
	for _, row := range keyGridByRow {
		for _, name := range row {
			if name != "" {
				All = append(All, name)
			}
		}
	}
}

// NewMask builds a mask from key names, dropping empty names and
// preserving order.
func NewMask(keys ...string) Mask {
	out := make(Mask, 0, len(keys))
	for _, key := range keys {
		if key != "" {
			out = append(out, key)
		}
	}
	return out
}

// Union returns the keys of m followed by the keys of o that m does not
// already contain. Duplicates are dropped, keeping first-occurrence order.
func (m Mask) Union(o Mask) Mask {
	out := make(Mask, 0, len(m)+len(o))
	seen := make(map[string]bool, len(m)+len(o))
	for _, key := range m {
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	for _, key := range o {
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	return out
}

// Difference returns m with every occurrence of o's keys removed.
func (m Mask) Difference(o Mask) Mask {
	drop := make(map[string]bool, len(o))
	for _, key := range o {
		drop[key] = true
	}
	out := make(Mask, 0, len(m))
	for _, key := range m {
		if !drop[key] {
			out = append(out, key)
		}
	}
	return out
}

// Intersect returns the keys present in both masks, in m's order.
func (m Mask) Intersect(o Mask) Mask {
	keep := make(map[string]bool, len(o))
	for _, key := range o {
		keep[key] = true
	}
	out := make(Mask, 0, len(m))
	for _, key := range m {
		if keep[key] {
			out = append(out, key)
		}
	}
	return out
}

// Contains reports whether the mask includes the key.
func (m Mask) Contains(key string) bool {
	for _, k := range m {
		if k == key {
			return true
		}
	}
	return false
}
