// Package core defines the contracts the synchronization engine is built on:
// the driver capability interface, device metadata and the error taxonomy.
package core

import (
	"github.com/devicelab-dev/uisync/pkg/snapshot"
)

// Driver is the minimal capability set the engine requires from a concrete
// device backend. Implementations: UIAutomator2, mock, etc.
//
// Every method may block on device I/O and may fail on transport errors; the
// engine propagates such failures unchanged. A driver handle is exclusively
// owned by one engine instance and must not be shared across goroutines
// without external serialization. Close releases the handle; the driver must
// not be used afterward.
type Driver interface {
	// Name identifies the backend (e.g., "uiautomator2", "mock").
	Name() string

	// Snapshot captures a fresh hierarchy of all currently visible elements.
	// No caching: every call reflects the device at that instant.
	Snapshot() (*snapshot.Node, error)

	// Tap issues a single tap at an absolute screen coordinate.
	Tap(p snapshot.Point) error

	// InputText types text into the currently focused element.
	InputText(text string) error

	// ScrollVertical performs one vertical scroll gesture.
	ScrollVertical() error

	// Back presses the platform back control.
	Back() error

	// LaunchApp starts the app with the given bundle/package ID.
	LaunchApp(appID string) error

	// DeviceInfo returns device and platform details.
	DeviceInfo() (*DeviceInfo, error)

	// Close releases the device session.
	Close() error
}

// DeviceInfo contains device and platform details.
type DeviceInfo struct {
	Platform     string `json:"platform"`               // ios, android, mock
	OSVersion    string `json:"osVersion"`              // e.g., "13", "17.0"
	DeviceName   string `json:"deviceName"`             // e.g., "Pixel 6"
	DeviceID     string `json:"deviceId"`               // Unique device identifier
	IsSimulator  bool   `json:"isSimulator"`            // Simulator/emulator vs real device
	ScreenWidth  int    `json:"screenWidth,omitempty"`  // Screen width in pixels
	ScreenHeight int    `json:"screenHeight,omitempty"` // Screen height in pixels
}
