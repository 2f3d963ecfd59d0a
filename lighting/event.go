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

import "time"

// KeyEvent is a raw key press or release delivered by a global input hook.
// Name and Keypad are side-band data used to disambiguate keys whose scan
// codes collide (left/right pairs, numpad vs navigation).
type KeyEvent struct {
	Code    int
	Name    string
	Keypad  bool
	Pressed bool
	Time    time.Time
}

// Hook consumes raw key events. Hooks may be invoked from a different
// goroutine than the one composing colors.
type Hook func(KeyEvent)

// Hooker is implemented by color functions and schemes that react to key
// events. The returned hooks are registered for the lifetime of the layer
// that carries them.
type Hooker interface {
	Hooks() []Hook
}
