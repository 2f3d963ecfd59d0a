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
package device

import (
	"time"

	"github.com/dizzyd/keylight/lighting"
	"github.com/dizzyd/keylight/protocol"
)

const packetSize = 64

// spillStride is the device quirk for color cells that run past a packet
// boundary: the remaining bytes continue in the next packet at
// offset+k-60, not offset+k-64.
const spillStride = 60

// KeyData tracks the current color of one physical key and where its three
// color bytes live inside the outbound packet layout.
type KeyData struct {
	Color  lighting.Color
	Packet int
	Offset int
}

// Layout is a device-specific constant table: the key name to
// (packet, offset) mapping and the fixed per-packet header bytes, captured
// from real traffic and reproduced byte for byte.
type Layout struct {
	Name        string
	PacketCount int
	ReportID    byte
	Keys        map[string]KeyData
	FillHeader  func(packet int, buf []byte)
}

// ColorManager owns one KeyData per physical key, initialized to black,
// and encodes the current colors into a ready-to-send packet stream.
type ColorManager struct {
	layout Layout
	keys   map[string]*KeyData
}

func NewColorManager(layout Layout) *ColorManager {
	keys := make(map[string]*KeyData, len(layout.Keys))
	for name, data := range layout.Keys {
		kd := data
		kd.Color = lighting.Color{}
		keys[name] = &kd
	}
	return &ColorManager{layout: layout, keys: keys}
}

// SetKeyColor updates one key's current color. Keys the layout does not
// know are ignored.
func (m *ColorManager) SetKeyColor(key string, c lighting.Color) {
	if kd, ok := m.keys[key]; ok {
		kd.Color = c
	}
}

// KeyColor returns a key's current color.
func (m *ColorManager) KeyColor(key string) (lighting.Color, bool) {
	kd, ok := m.keys[key]
	if !ok {
		return lighting.Color{}, false
	}
	return kd.Color, true
}

// ResetColors sets every key back to black.
func (m *ColorManager) ResetColors() {
	for _, kd := range m.keys {
		kd.Color = lighting.Color{}
	}
}

// ApplyScheme computes the scheme's colors for the masked keys and writes
// them into the managed key data.
func (m *ColorManager) ApplyScheme(scheme lighting.LightingScheme, mask lighting.Mask, now time.Time) {
	for key, c := range scheme.GetAllColors(mask, now) {
		m.SetKeyColor(key, c)
	}
}

// Packets encodes the current key colors into the device's packet layout:
// fixed-size buffers with their constant headers, three color bytes per
// key at its offset (spilling by the 60-byte stride), emitted as
// alternating outbound data and inbound ack-wait pairs.
func (m *ColorManager) Packets() protocol.PacketStream {
	buffers := make([][]byte, m.layout.PacketCount)
	for i := range buffers {
		buffers[i] = make([]byte, packetSize)
		m.layout.FillHeader(i, buffers[i])
	}

	for _, kd := range m.keys {
		channels := [3]byte{kd.Color.R, kd.Color.G, kd.Color.B}
		for k, channel := range channels {
			packet, offset := kd.Packet, kd.Offset+k
			if offset >= packetSize {
				offset -= spillStride
				packet++
			}
			if packet >= len(buffers) {
				continue
			}
			buffers[packet][offset] = channel
		}
	}

	stream := make(protocol.PacketStream, 0, 2*len(buffers))
	for _, buf := range buffers {
		stream = append(stream,
			protocol.Packet{Outbound: true, ReportID: m.layout.ReportID, Data: buf},
			protocol.Packet{Outbound: false, ReportID: m.layout.ReportID, Data: make([]byte, packetSize)})
	}
	return stream
}
