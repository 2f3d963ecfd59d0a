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
package protocol

import (
	"bytes"
	"encoding/hex"

	"github.com/pkg/errors"
)

var ErrOddHex = errors.New("hex payload must have even length")
var ErrEmptyPacket = errors.New("packet needs at least a report id byte")

// Packet is one HID report frame: either an outbound command or the
// inbound reply expected in its place. Packets are immutable once built.
type Packet struct {
	Outbound bool
	ReportID byte
	Data     []byte
}

// ParsePacket decodes a traffic line body. Direction is "O" for outbound
// or "I" for an expected inbound frame; the first decoded byte of the hex
// string is the report id, the remainder is the payload.
func ParsePacket(direction, hexData string) (Packet, error) {
	if len(hexData)%2 != 0 {
		return Packet{}, errors.WithStack(ErrOddHex)
	}
	raw, err := hex.DecodeString(hexData)
	if err != nil {
		return Packet{}, errors.Wrapf(err, "invalid packet hex %q", hexData)
	}
	if len(raw) == 0 {
		return Packet{}, errors.WithStack(ErrEmptyPacket)
	}
	return Packet{Outbound: direction == "O", ReportID: raw[0], Data: raw[1:]}, nil
}

// Serialize is the exact inverse of ParsePacket: the report id byte
// prepended to the payload, hex-encoded.
func (p Packet) Serialize() string {
	frame := make([]byte, 0, len(p.Data)+1)
	frame = append(frame, p.ReportID)
	frame = append(frame, p.Data...)
	return hex.EncodeToString(frame)
}

// Direction returns the traffic-file direction marker for this packet.
func (p Packet) Direction() string {
	if p.Outbound {
		return "O"
	}
	return "I"
}

// Equal reports structural equality: direction, report id and payload.
func (p Packet) Equal(o Packet) bool {
	return p.Outbound == o.Outbound && p.ReportID == o.ReportID && bytes.Equal(p.Data, o.Data)
}

func (p Packet) String() string {
	return p.Direction() + " " + p.Serialize()
}
