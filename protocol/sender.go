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
	"log/slog"

	"github.com/pkg/errors"
)

// ReportLength is the fixed payload size of the keyboards' HID reports.
const ReportLength = 64

// Transport sends and receives raw HID reports for one opened device.
type Transport interface {
	// Send writes a report under the given report id and returns the
	// number of bytes written, including the report id byte.
	Send(data []byte, reportID byte) (int, error)

	// Recv reads the next inbound report, report id byte first.
	Recv(length int) ([]byte, error)
}

// Sender executes packet streams against a transport, matching inbound
// acks against expected frames and counting per-packet outcomes. Nothing
// is retried: an ack mismatch is counted as a failure and execution
// continues, while a transport error aborts the stream.
type Sender struct {
	transport Transport
	prepared  map[string]PacketStream
	log       *slog.Logger
}

func NewSender(transport Transport, log *slog.Logger) *Sender {
	if log == nil {
		log = slog.Default()
	}
	return &Sender{
		transport: transport,
		prepared:  make(map[string]PacketStream),
		log:       log,
	}
}

// Prepare loads a named traffic file for later replay.
func (s *Sender) Prepare(name, path string) error {
	stream, err := LoadStream(path)
	if err != nil {
		return err
	}
	s.prepared[name] = stream
	return nil
}

// AddPrepared registers an in-memory stream under a name.
func (s *Sender) AddPrepared(name string, stream PacketStream) {
	s.prepared[name] = stream
}

// HasPrepared reports whether a named stream has been registered.
func (s *Sender) HasPrepared(name string) bool {
	_, ok := s.prepared[name]
	return ok
}

// ExecutePrepared replays a previously registered stream by name.
func (s *Sender) ExecutePrepared(name string) (successes, failures int, err error) {
	stream, ok := s.prepared[name]
	if !ok {
		return 0, 0, errors.Errorf("no prepared traffic named %q", name)
	}
	return s.Execute(stream)
}

// Execute runs a stream in order and returns the per-packet outcome
// counts. The protocol is best effort and non-transactional: when a
// transport error aborts the stream partway, the packets already sent
// stay applied.
func (s *Sender) Execute(stream PacketStream) (successes, failures int, err error) {
	for i, packet := range stream {
		ok, err := s.handle(packet)
		if err != nil {
			return successes, failures, errors.Wrapf(err, "packet %d of %d", i+1, len(stream))
		}
		if ok {
			successes++
		} else {
			failures++
		}
	}
	return successes, failures, nil
}

func (s *Sender) handle(packet Packet) (bool, error) {
	if packet.Outbound {
		written, err := s.transport.Send(packet.Data, packet.ReportID)
		if err != nil {
			s.log.Error("error sending packet", "packet", packet.String(), "error", err)
			return false, err
		}
		// The transport consumes the report id byte on top of the payload.
		return written-1 == len(packet.Data), nil
	}

	raw, err := s.transport.Recv(ReportLength)
	if err != nil {
		s.log.Error("error receiving packet", "error", err)
		return false, err
	}
	if len(raw) == 0 {
		return false, nil
	}
	received := Packet{Outbound: false, ReportID: raw[0], Data: raw[1:]}
	return packet.Equal(received), nil
}
