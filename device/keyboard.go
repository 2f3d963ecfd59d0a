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
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/dizzyd/keylight/lighting"
	"github.com/dizzyd/keylight/protocol"
)

var ErrNotInitialized = errors.New("keyboard connection not initialized")

// Names of the prepared handshake streams a keyboard replays around its
// main loop.
const (
	TrafficInit = "initialize"
	TrafficExit = "exit"
)

// initSettle is how long the device needs after the init handshake before
// it accepts color packets.
const initSettle = 2 * time.Second

// Config supplies a fully-built layer stack. The keyboard never re-derives
// layer ordering from anything but the returned scheme.
type Config interface {
	Scheme() *lighting.CombiningScheme
}

// hookEntry ties registered hooks to the layer scheme that owns them, so
// removing the layer removes its hooks.
type hookEntry struct {
	owner lighting.LightingScheme
	hooks []lighting.Hook
}

// Keyboard drives the per-key lighting of one RGB keyboard: it composes
// the layered scheme, encodes the colors through the color manager, and
// executes the resulting packet stream over the transport. One transport,
// one color manager, one scheme stack per instance; instances share
// nothing.
type Keyboard struct {
	transport protocol.Transport
	sender    *protocol.Sender
	manager   *ColorManager
	scheme    *lighting.CombiningScheme
	log       *slog.Logger

	// Key events arrive on a different goroutine than the compose loop;
	// the hook registry is guarded and delivery works on a snapshot.
	mu          sync.Mutex
	hooks       []hookEntry
	initialized bool
}

func NewKeyboard(transport protocol.Transport, manager *ColorManager, log *slog.Logger) *Keyboard {
	if log == nil {
		log = slog.Default()
	}
	return &Keyboard{
		transport: transport,
		sender:    protocol.NewSender(transport, log),
		manager:   manager,
		scheme:    lighting.NewCombiningScheme(),
		log:       log,
	}
}

// PrepareTraffic loads a named prepared-traffic file for replay.
func (k *Keyboard) PrepareTraffic(name, path string) error {
	return k.sender.Prepare(name, path)
}

// AddLayer appends a lighting layer and registers any key-event hooks the
// scheme carries.
func (k *Keyboard) AddLayer(scheme lighting.LightingScheme, combine lighting.CombineType, mask lighting.Mask) {
	k.scheme.AddScheme(scheme, combine, mask)
	if h, ok := scheme.(lighting.Hooker); ok {
		k.addHooks(scheme, h.Hooks())
	}
}

// RemoveLayer removes a layer by scheme identity, along with its hooks.
func (k *Keyboard) RemoveLayer(scheme lighting.LightingScheme) {
	k.scheme.RemoveScheme(scheme)
	k.removeHooks(scheme)
}

// ResetLayers removes every layer and every registered hook.
func (k *Keyboard) ResetLayers() {
	k.scheme.ClearSchemes()
	k.mu.Lock()
	k.hooks = nil
	k.mu.Unlock()
}

// SetConfig replaces the layer stack with the one built by the config.
func (k *Keyboard) SetConfig(cfg Config) {
	k.ResetLayers()
	k.AddLayer(cfg.Scheme(), lighting.Overlay, lighting.All)
}

func (k *Keyboard) addHooks(owner lighting.LightingScheme, hooks []lighting.Hook) {
	if len(hooks) == 0 {
		return
	}
	k.mu.Lock()
	k.hooks = append(k.hooks, hookEntry{owner: owner, hooks: hooks})
	k.mu.Unlock()
	k.log.Debug("registered hooks", "count", len(hooks))
}

func (k *Keyboard) removeHooks(owner lighting.LightingScheme) {
	k.mu.Lock()
	kept := k.hooks[:0]
	for _, entry := range k.hooks {
		if entry.owner != owner {
			kept = append(kept, entry)
		}
	}
	k.hooks = kept
	k.mu.Unlock()
}

// Deliver fans a raw key event out to every currently registered hook.
// Safe to call concurrently with layer changes and with the compose loop.
func (k *Keyboard) Deliver(ev lighting.KeyEvent) {
	k.mu.Lock()
	var snapshot []lighting.Hook
	for _, entry := range k.hooks {
		snapshot = append(snapshot, entry.hooks...)
	}
	k.mu.Unlock()

	for _, hook := range snapshot {
		hook(ev)
	}
}

// Push composes the current scheme for the masked keys, encodes the
// colors, and sends them to the device. It fails fast when the connection
// has not been initialized by Run.
func (k *Keyboard) Push(mask lighting.Mask, now time.Time) error {
	if !k.isInitialized() {
		return errors.WithStack(ErrNotInitialized)
	}

	k.manager.ApplyScheme(k.scheme, mask, now)
	_, failures, err := k.sender.Execute(k.manager.Packets())
	if err != nil {
		return err
	}
	if failures > 0 {
		k.log.Debug("push completed with failed packets", "failures", failures)
	}
	return nil
}

// Run establishes the connection, replaying the init handshake if one is
// prepared, then repeatedly pushes the composed colors until ctx is
// cancelled or the transport fails. The exit handshake is always replayed
// best effort before returning; a cancellation is a clean shutdown, any
// other error is returned.
func (k *Keyboard) Run(ctx context.Context) error {
	if err := k.initConnection(); err != nil {
		return err
	}
	defer k.closeConnection()

	for {
		select {
		case <-ctx.Done():
			k.log.Info("interrupted, shutting down")
			return nil
		default:
		}
		if err := k.Push(lighting.All, time.Now()); err != nil {
			k.log.Error("main loop failed", "error", err)
			return err
		}
	}
}

// Close releases the underlying transport.
func (k *Keyboard) Close() error {
	if closer, ok := k.transport.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (k *Keyboard) initConnection() error {
	if k.sender.HasPrepared(TrafficInit) {
		if _, _, err := k.sender.ExecutePrepared(TrafficInit); err != nil {
			return errors.Wrap(err, "init handshake failed")
		}
		time.Sleep(initSettle)
	}
	k.setInitialized(true)
	k.log.Info("initialized connection")
	return nil
}

func (k *Keyboard) closeConnection() {
	k.setInitialized(false)
	if k.sender.HasPrepared(TrafficExit) {
		if _, _, err := k.sender.ExecutePrepared(TrafficExit); err != nil {
			k.log.Error("exit handshake failed", "error", err)
		}
	}
	k.log.Info("closed connection")
}

func (k *Keyboard) isInitialized() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.initialized
}

func (k *Keyboard) setInitialized(v bool) {
	k.mu.Lock()
	k.initialized = v
	k.mu.Unlock()
}
