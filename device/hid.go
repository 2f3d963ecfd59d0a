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
	"github.com/dizzyd/hid"
	"github.com/pkg/errors"
)

var ErrNoDevices = errors.New("no matching devices found")

// Handler is the direct interface to one opened HID keyboard. It owns the
// send/recv semantics consumed by the packet sender; enumeration beyond
// selecting the requested interface is left to the hid package.
type Handler struct {
	info   hid.DeviceInfo
	device *hid.Device
}

// Open finds and opens the single HID interface selected by vendor id,
// product id, usage, and usage page. The absence of a match is an error.
func Open(vendorID, productID, usagePage, usage uint16) (*Handler, error) {
	for _, info := range hid.Enumerate(vendorID, productID) {
		if info.Usage != usage || info.UsagePage != usagePage {
			continue
		}
		device, err := info.Open()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open device %d-%d", info.VendorID, info.ProductID)
		}
		return &Handler{info: info, device: device}, nil
	}
	return nil, errors.WithStack(ErrNoDevices)
}

// Send writes one report, report id byte first, and returns the total
// bytes written including that byte. Transport failures are propagated,
// never retried.
func (h *Handler) Send(data []byte, reportID byte) (int, error) {
	report := make([]byte, 0, len(data)+1)
	report = append(report, reportID)
	report = append(report, data...)
	written, err := h.device.Write(report)
	if err != nil {
		return written, errors.Wrapf(err, "failed to send %d byte report 0x%02x", len(data), reportID)
	}
	return written, nil
}

// Recv blocks until the device sends the next inbound report, report id
// byte first.
func (h *Handler) Recv(length int) ([]byte, error) {
	return h.RecvTimeout(length, -1)
}

// RecvTimeout reads the next inbound report, waiting up to timeout
// milliseconds; -1 blocks indefinitely.
func (h *Handler) RecvTimeout(length, timeout int) ([]byte, error) {
	buf := make([]byte, length)
	read, err := h.device.ReadTimeout(buf, timeout)
	if err != nil {
		return nil, errors.Wrap(err, "error reading report")
	}
	return buf[:read], nil
}

// Close releases the device handle.
func (h *Handler) Close() error {
	h.device.Close()
	return nil
}

// Info returns the enumeration record of the opened interface.
func (h *Handler) Info() hid.DeviceInfo {
	return h.info
}
