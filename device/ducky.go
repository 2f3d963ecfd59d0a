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

import "log/slog"

// Ducky One 2 RGB, 108-key US layout.
const (
	DuckyOne2VID       uint16 = 0x04d9
	DuckyOne2PID       uint16 = 0x0348
	DuckyOne2UsagePage uint16 = 0xff00
	DuckyOne2Usage     uint16 = 1
)

// DuckyOne2Layout returns the packet layout captured from the Ducky One 2
// RGB's own traffic with Wireshark and USBPcap.
func DuckyOne2Layout() Layout {
	keys := make(map[string]KeyData, 108)
	at := func(name string, packet, offset int) {
		keys[name] = KeyData{Packet: packet, Offset: offset}
	}

	// Packet 0
	at("Escape", 0, 0x08)
	at("SectionSign", 0, 0x0b)
	at("Tab", 0, 0x0e)
	at("CapsLock", 0, 0x11)
	at("LeftShift", 0, 0x14)
	at("LeftControl", 0, 0x17)
	at("1", 0, 0x1d)
	at("Q", 0, 0x20)
	at("A", 0, 0x23)
	at("LeftWindows", 0, 0x29)
	at("F1", 0, 0x2c)
	at("2", 0, 0x2f)
	at("W", 0, 0x32)
	at("S", 0, 0x35)
	at("Z", 0, 0x38)
	at("LeftAlt", 0, 0x3b)

	// Packet 1
	at("F2", 1, 0x08)
	at("3", 1, 0x0b)
	at("E", 1, 0x0e)
	at("D", 1, 0x11)
	at("X", 1, 0x14)
	at("F3", 1, 0x1a)
	at("4", 1, 0x1d)
	at("R", 1, 0x20)
	at("F", 1, 0x23)
	at("C", 1, 0x26)
	at("F4", 1, 0x2c)
	at("5", 1, 0x2f)
	at("T", 1, 0x32)
	at("G", 1, 0x35)
	at("V", 1, 0x38)

	// Packet 2
	at("6", 2, 0x0b)
	at("Y", 2, 0x0e)
	at("H", 2, 0x11)
	at("B", 2, 0x14)
	at("Space", 2, 0x17)
	at("F5", 2, 0x1a)
	at("7", 2, 0x1d)
	at("U", 2, 0x20)
	at("J", 2, 0x23)
	at("N", 2, 0x26)
	at("F6", 2, 0x2c)
	at("8", 2, 0x2f)
	at("I", 2, 0x32)
	at("K", 2, 0x35)
	at("M", 2, 0x38)

	// Packet 3
	at("F7", 3, 0x08)
	at("9", 3, 0x0b)
	at("O", 3, 0x0e)
	at("L", 3, 0x11)
	at(",", 3, 0x14)
	at("F8", 3, 0x1a)
	at("0", 3, 0x1d)
	at("P", 3, 0x20)
	at("Semicolon", 3, 0x23)
	at(".", 3, 0x26)
	at("RightAlt", 3, 0x29)
	at("F9", 3, 0x2c)
	at("-", 3, 0x2f)
	at("[", 3, 0x32)
	at("'", 3, 0x35)
	at("FSlash", 3, 0x38)

	// Packet 4
	at("F10", 4, 0x08)
	at("=", 4, 0x0b)
	at("]", 4, 0x0e)
	at("RightWindows", 4, 0x17)
	at("F11", 4, 0x1a)
	at("RightShift", 4, 0x26)
	at("Function", 4, 0x29)
	at("F12", 4, 0x2c)
	at("Backspace", 4, 0x2f)
	at("BSlash", 4, 0x32)
	at("Enter", 4, 0x35)
	at("RightControl", 4, 0x3b)

	// Packet 5
	at("PrintScreen", 5, 0x08)
	at("Insert", 5, 0x0b)
	at("Delete", 5, 0x0e)
	at("LeftArrow", 5, 0x17)
	at("ScrollLock", 5, 0x1a)
	at("Home", 5, 0x1d)
	at("End", 5, 0x20)
	at("UpArrow", 5, 0x26)
	at("DownArrow", 5, 0x29)
	at("Pause", 5, 0x2c)
	at("PageUp", 5, 0x2f)
	at("PageDown", 5, 0x32)
	at("RightArrow", 5, 0x3b)

	// Packet 6
	at("Calc", 6, 0x08)
	at("NumLock", 6, 0x0b)
	at("N7", 6, 0x0e)
	at("N4", 6, 0x11)
	at("N1", 6, 0x14)
	at("N0", 6, 0x17)
	at("Mute", 6, 0x1a)
	at("Divide", 6, 0x1d)
	at("N8", 6, 0x20)
	at("N5", 6, 0x23)
	at("N2", 6, 0x26)
	at("VolumeDown", 6, 0x2c)
	at("Multiply", 6, 0x2f)
	at("N9", 6, 0x32)
	at("N6", 6, 0x35)
	at("N3", 6, 0x38)
	at("NDelete", 6, 0x3b)

	// Packet 7
	at("VolumeUp", 7, 0x08)
	at("Subtract", 7, 0x0b)
	at("Add", 7, 0x0e)
	at("RightEnter", 7, 0x17)

	return Layout{
		Name:        "DuckyOne2RGB",
		PacketCount: 8,
		ReportID:    0x01,
		Keys:        keys,
		FillHeader: func(packet int, buf []byte) {
			buf[0] = 0x56
			buf[1] = 0x42
			buf[4] = 0x02
			if packet == 7 {
				buf[5] = 0x06
			} else {
				buf[5] = 0x12
			}
			buf[6] = byte(18 * packet)
		},
	}
}

// OpenDuckyOne2 opens the keyboard and wires up its color manager. The
// init and exit traffic paths hold the captured handshake sequences; empty
// paths skip the corresponding replay.
func OpenDuckyOne2(initTraffic, exitTraffic string, log *slog.Logger) (*Keyboard, error) {
	handler, err := Open(DuckyOne2VID, DuckyOne2PID, DuckyOne2UsagePage, DuckyOne2Usage)
	if err != nil {
		return nil, err
	}

	keyboard := NewKeyboard(handler, NewColorManager(DuckyOne2Layout()), log)
	if initTraffic != "" {
		if err := keyboard.PrepareTraffic(TrafficInit, initTraffic); err != nil {
			handler.Close()
			return nil, err
		}
	}
	if exitTraffic != "" {
		if err := keyboard.PrepareTraffic(TrafficExit, exitTraffic); err != nil {
			handler.Close()
			return nil, err
		}
	}
	return keyboard, nil
}
