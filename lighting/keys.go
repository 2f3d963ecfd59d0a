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

// keyGridByRow lays out the physical board top-to-bottom, left-to-right.
// Empty strings mark gaps between key clusters.
var keyGridByRow = [][]string{
	{"Escape", "", "F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12", "PrintScreen",
		"ScrollLock", "Pause", "Calc", "Mute", "VolumeDown", "VolumeUp"},
	{"SectionSign", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "=", "Backspace", "Insert", "Home",
		"PageUp", "NumLock", "Divide", "Multiply", "Subtract"},
	{"Tab", "Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "[", "]", "BSlash", "Delete", "End", "PageDown",
		"N7", "N8", "N9", "Add"},
	{"CapsLock", "A", "S", "D", "F", "G", "H", "J", "K", "L", "Semicolon", "'", "", "Enter", "", "", "", "N4",
		"N5", "N6", ""},
	{"LeftShift", "", "Z", "X", "C", "V", "B", "N", "M", ",", ".", "FSlash", "", "RightShift", "", "UpArrow", "",
		"N1", "N2", "N3", ""},
	{"LeftControl", "LeftWindows", "LeftAlt", "", "", "", "Space", "", "", "", "RightAlt", "RightWindows",
		"Function", "RightControl", "LeftArrow", "DownArrow", "RightArrow", "N0", "", "NDelete", "RightEnter"},
}

// keyGridByCol is keyGridByRow rotated a quarter turn clockwise, so
// (0, 0) addresses the bottom-left key.
var keyGridByCol [][]string

func init() {
	rows := len(keyGridByRow)
	cols := len(keyGridByRow[0])
	keyGridByCol = make([][]string, cols)
	for i := 0; i < cols; i++ {
		keyGridByCol[i] = make([]string, rows)
		for j := 0; j < rows; j++ {
			keyGridByCol[i][j] = keyGridByRow[rows-1-j][i]
		}
	}
}

// GridSize returns the dimensions of the column-major grid.
func GridSize() (cols, rows int) {
	return len(keyGridByCol), len(keyGridByCol[0])
}

// KeyCodes maps logical key names to the scan codes delivered with key
// events. Several physical keys share a scan code with their left-hand or
// navigation counterpart; the event's side-band flags disambiguate.
var KeyCodes = map[string]int{
	"Escape": 0x01, "F1": 0x3b, "F2": 0x3c, "F3": 0x3d, "F4": 0x3e, "F5": 0x3f, "F6": 0x40, "F7": 0x41,
	"F8": 0x42, "F9": 0x43, "F10": 0x44, "F11": 0x57, "F12": 0x58, "PrintScreen": 0x37, "ScrollLock": 0x46,
	"Pause": 69, "Calc": -183, "Mute": -173, "VolumeDown": -174, "VolumeUp": -175,
	"SectionSign": 0x29, "1": 0x02, "2": 0x03, "3": 0x04, "4": 0x05, "5": 0x06, "6": 0x07, "7": 0x08,
	"8": 0x09, "9": 0x0a, "0": 0x0b, "-": 0x0c, "=": 0x0d, "Backspace": 0x0e, "Insert": 82, "Home": 71,
	"PageUp": 73, "NumLock": 69, "Divide": 0x35, "Multiply": 0x37, "Subtract": 74,
	"Tab": 0x0f, "Q": 0x10, "W": 0x11, "E": 0x12, "R": 0x13, "T": 0x14, "Y": 0x15, "U": 0x16, "I": 0x17,
	"O": 0x18, "P": 0x19, "[": 0x1a, "]": 0x1b, "BSlash": 0x2b, "Delete": 83, "End": 79, "PageDown": 81,
	"N7": 71, "N8": 72, "N9": 73, "Add": 78,
	"CapsLock": 0x3a, "A": 0x1e, "S": 0x1f, "D": 0x20, "F": 0x21, "G": 0x22, "H": 0x23, "J": 0x24, "K": 0x25,
	"L": 0x26, "Semicolon": 0x27, "'": 0x28, "Enter": 0x1c, "N4": 75, "N5": 76, "N6": 77,
	"LeftShift": 0x2a, "Z": 0x2c, "X": 0x2d, "C": 0x2e, "V": 0x2f, "B": 0x30, "N": 0x31, "M": 0x32,
	",": 0x33, ".": 0x34, "FSlash": 0x35, "RightShift": 0x36, "UpArrow": 72, "N1": 79, "N2": 80, "N3": 81,
	"LeftControl": 0x1d, "LeftWindows": 91, "LeftAlt": 0x38, "Space": 0x39, "RightAlt": 0x38,
	"RightWindows": 92, "Function": 0x00, "RightControl": 29, "LeftArrow": 75, "DownArrow": 80,
	"RightArrow": 77, "N0": 82, "NDelete": 83, "RightEnter": 28,
}

// NumpadKeys are keys whose scan codes collide with a navigation key; an
// event only matches them when its keypad flag is set.
var NumpadKeys = Mask{"Divide", "Multiply", "NumLock", "N1", "N2", "N3", "N4", "N5", "N6", "N7", "N8", "N9",
	"N0", "NDelete"}

// RightKeys are right-hand keys whose scan codes collide with their
// left-hand counterpart; an event only matches them when its name carries
// the "right" prefix.
var RightKeys = Mask{"RightAlt", "RightControl", "RightEnter", "RightWindows", "RightArrow"}

// PositionOf returns the grid coordinate of a key, row-major ((0, 0) top
// left) or column-major ((0, 0) bottom left).
func PositionOf(name string, rowMajor bool) (i, j int, ok bool) {
	grid := keyGridByCol
	if rowMajor {
		grid = keyGridByRow
	}
	for i, sub := range grid {
		for j, known := range sub {
			if known != "" && known == name {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}

// KeyAt returns the key name at a grid coordinate, or "" for a gap or an
// out-of-range coordinate.
func KeyAt(i, j int, rowMajor bool) string {
	grid := keyGridByCol
	if rowMajor {
		grid = keyGridByRow
	}
	if i < 0 || i >= len(grid) || j < 0 || j >= len(grid[i]) {
		return ""
	}
	return grid[i][j]
}

// KeyIndex identifies a physical key. It can be built from the canonical
// name or from a grid coordinate; equality and hashing are always by
// canonical name.
type KeyIndex struct {
	name string
}

// KeyByName builds a KeyIndex from a canonical key name.
func KeyByName(name string) KeyIndex {
	return KeyIndex{name: name}
}

// KeyByPosition builds a KeyIndex from a grid coordinate. The zero
// KeyIndex is returned for gaps and out-of-range coordinates.
func KeyByPosition(i, j int, rowMajor bool) KeyIndex {
	return KeyIndex{name: KeyAt(i, j, rowMajor)}
}

// Name returns the canonical key name.
func (k KeyIndex) Name() string {
	return k.name
}

// Position returns the key's grid coordinate in the chosen orientation.
func (k KeyIndex) Position(rowMajor bool) (i, j int, ok bool) {
	return PositionOf(k.name, rowMajor)
}

func (k KeyIndex) String() string {
	return k.name
}
