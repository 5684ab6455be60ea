// Package mock provides a scripted driver for testing without a real device.
package mock

import (
	"fmt"

	"github.com/devicelab-dev/uisync/pkg/core"
	"github.com/devicelab-dev/uisync/pkg/snapshot"
)

// Config configures mock driver behavior.
type Config struct {
	// Snapshots is the scripted snapshot sequence. The last entry repeats
	// once the sequence is exhausted. Empty means every capture returns an
	// empty root.
	Snapshots []*snapshot.Node

	// TapAdvances selects how the sequence advances: true means each tap
	// moves to the next snapshot (the screen reacts to input), false means
	// each capture does (the screen animates on its own).
	TapAdvances bool

	// SnapshotErr makes every capture fail, simulating a transport error.
	SnapshotErr error

	// TapErr makes every tap fail.
	TapErr error

	// Info is the device info to report. Nil gets a default mock device.
	Info *core.DeviceInfo
}

// Driver is a scripted implementation of core.Driver.
type Driver struct {
	cfg Config

	// Recorded activity, inspected by tests.
	SnapshotCalls int
	TapPoints     []snapshot.Point
	InputTexts    []string
	ScrollCalls   int
	BackCalls     int
	Launched      []string
	Closed        bool
}

// New creates a new mock driver.
func New(cfg Config) *Driver {
	if cfg.Info == nil {
		cfg.Info = &core.DeviceInfo{
			Platform:     "mock",
			OSVersion:    "1.0",
			DeviceName:   "Mock Device",
			DeviceID:     "mock-device",
			IsSimulator:  true,
			ScreenWidth:  1080,
			ScreenHeight: 2400,
		}
	}
	return &Driver{cfg: cfg}
}

// Name identifies the backend.
func (d *Driver) Name() string { return "mock" }

// Snapshot returns the current scripted snapshot.
func (d *Driver) Snapshot() (*snapshot.Node, error) {
	if d.cfg.SnapshotErr != nil {
		return nil, d.cfg.SnapshotErr
	}

	idx := d.SnapshotCalls
	if d.cfg.TapAdvances {
		idx = len(d.TapPoints)
	}
	d.SnapshotCalls++

	if len(d.cfg.Snapshots) == 0 {
		return &snapshot.Node{}, nil
	}
	if idx >= len(d.cfg.Snapshots) {
		idx = len(d.cfg.Snapshots) - 1
	}
	return d.cfg.Snapshots[idx], nil
}

// Tap records the tap point.
func (d *Driver) Tap(p snapshot.Point) error {
	if d.cfg.TapErr != nil {
		return d.cfg.TapErr
	}
	d.TapPoints = append(d.TapPoints, p)
	return nil
}

// InputText records the typed text.
func (d *Driver) InputText(text string) error {
	d.InputTexts = append(d.InputTexts, text)
	return nil
}

// ScrollVertical records the gesture.
func (d *Driver) ScrollVertical() error {
	d.ScrollCalls++
	return nil
}

// Back records the press.
func (d *Driver) Back() error {
	d.BackCalls++
	return nil
}

// LaunchApp records the app ID.
func (d *Driver) LaunchApp(appID string) error {
	if appID == "" {
		return fmt.Errorf("empty app id")
	}
	d.Launched = append(d.Launched, appID)
	return nil
}

// DeviceInfo returns the configured device info.
func (d *Driver) DeviceInfo() (*core.DeviceInfo, error) {
	return d.cfg.Info, nil
}

// Close marks the driver closed.
func (d *Driver) Close() error {
	d.Closed = true
	return nil
}
