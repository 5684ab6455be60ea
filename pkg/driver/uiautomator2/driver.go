package uiautomator2

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/devicelab-dev/uisync/pkg/core"
	"github.com/devicelab-dev/uisync/pkg/snapshot"
)

// ShellExecutor runs shell commands on a device. Implemented by ADB-backed
// device handles; needed only for app lifecycle commands that the
// UIAutomator2 server does not cover.
type ShellExecutor interface {
	Shell(cmd string) (string, error)
}

// Driver implements core.Driver against a UIAutomator2 server session.
type Driver struct {
	client *Client
	shell  ShellExecutor
}

// New creates a driver over an established client session. shell may be nil;
// LaunchApp then returns an error.
func New(client *Client, shell ShellExecutor) *Driver {
	return &Driver{client: client, shell: shell}
}

// Name identifies the backend.
func (d *Driver) Name() string { return "uiautomator2" }

// Snapshot fetches the page source and parses it into a snapshot tree.
func (d *Driver) Snapshot() (*snapshot.Node, error) {
	source, err := d.client.Source()
	if err != nil {
		return nil, fmt.Errorf("capture page source: %w", err)
	}
	return snapshot.ParseXML(source)
}

// Tap issues a tap at the given coordinate.
func (d *Driver) Tap(p snapshot.Point) error {
	return d.client.Click(p.X, p.Y)
}

// InputText types text into the focused element.
func (d *Driver) InputText(text string) error {
	return d.client.SendKeys(text)
}

// ScrollVertical scrolls the full screen downward by roughly three quarters
// of its height.
func (d *Driver) ScrollVertical() error {
	width, height, err := d.screenSize()
	if err != nil {
		return fmt.Errorf("get screen size: %w", err)
	}
	area := RectModel{Left: 0, Top: 0, Width: width, Height: height}
	return d.client.ScrollInArea(area, DirectionDown, 0.75, 0)
}

// Back presses the Android back button.
func (d *Driver) Back() error {
	return d.client.Back()
}

// LaunchApp starts the app via the launcher intent.
func (d *Driver) LaunchApp(appID string) error {
	if d.shell == nil {
		return fmt.Errorf("launch app %s: no shell executor configured", appID)
	}
	cmd := fmt.Sprintf("monkey -p %s -c android.intent.category.LAUNCHER 1", appID)
	out, err := d.shell.Shell(cmd)
	if err != nil {
		return fmt.Errorf("launch app %s: %w", appID, err)
	}
	if strings.Contains(out, "No activities found") {
		return core.ErrAppNotInstalled.WithMessage(fmt.Sprintf("app %s is not installed", appID))
	}
	return nil
}

// DeviceInfo maps the server's device info onto the core model.
func (d *Driver) DeviceInfo() (*core.DeviceInfo, error) {
	info, err := d.client.GetDeviceInfo()
	if err != nil {
		return nil, err
	}

	width, height := parseDisplaySize(info.RealDisplaySize)
	return &core.DeviceInfo{
		Platform:     "android",
		OSVersion:    info.PlatformVersion,
		DeviceName:   info.Model,
		DeviceID:     info.AndroidID,
		ScreenWidth:  width,
		ScreenHeight: height,
	}, nil
}

// Close ends the automation session.
func (d *Driver) Close() error {
	return d.client.Close()
}

func (d *Driver) screenSize() (int, int, error) {
	info, err := d.client.GetDeviceInfo()
	if err != nil {
		return 0, 0, err
	}
	width, height := parseDisplaySize(info.RealDisplaySize)
	if width == 0 || height == 0 {
		return 0, 0, fmt.Errorf("unexpected display size %q", info.RealDisplaySize)
	}
	return width, height, nil
}

// parseDisplaySize parses "1080x2400" into width and height.
func parseDisplaySize(s string) (int, int) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return 0, 0
	}
	width, _ := strconv.Atoi(parts[0])
	height, _ := strconv.Atoi(parts[1])
	return width, height
}
