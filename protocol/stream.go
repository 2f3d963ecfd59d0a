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
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// PacketStream is an ordered sequence of packets, executed in order.
type PacketStream []Packet

// ReadStream parses the prepared-traffic text format: one packet per line,
// "<direction> <hex>". Blank lines, lines whose first character is not "I"
// or "O", and lines that fail to parse are skipped.
func ReadStream(r io.Reader) (PacketStream, error) {
	var stream PacketStream
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 3 {
			continue
		}
		direction := line[:1]
		if direction != "I" && direction != "O" {
			continue
		}
		packet, err := ParsePacket(direction, strings.TrimSpace(line[2:]))
		if err != nil {
			slog.Debug("skipping malformed traffic line", "line", line, "error", err)
			continue
		}
		stream = append(stream, packet)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return stream, nil
}

// LoadStream reads a prepared-traffic file.
func LoadStream(path string) (PacketStream, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open traffic file %s", path)
	}
	defer file.Close()

	stream, err := ReadStream(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse traffic file %s", path)
	}
	slog.Info("loaded prepared traffic", "path", path, "packets", len(stream))
	return stream, nil
}

func (s PacketStream) String() string {
	var out strings.Builder
	for _, packet := range s {
		out.WriteString(packet.String())
		out.WriteByte('\n')
	}
	return out.String()
}
