package engine

import (
	"github.com/devicelab-dev/uisync/pkg/core"
	"github.com/devicelab-dev/uisync/pkg/logger"
	"github.com/devicelab-dev/uisync/pkg/snapshot"
)

// InputText types text through the driver and waits for the UI to settle.
func (e *Engine) InputText(text string) error {
	logger.Info("input text (%d chars)", len(text))
	if err := e.driver.InputText(text); err != nil {
		return err
	}
	e.WaitToSettle()
	return nil
}

// ScrollVertical performs one vertical scroll gesture and waits for the UI to
// settle.
func (e *Engine) ScrollVertical() error {
	logger.Info("scroll vertical")
	if err := e.driver.ScrollVertical(); err != nil {
		return err
	}
	e.WaitToSettle()
	return nil
}

// BackPress presses the platform back control and waits for the UI to settle.
func (e *Engine) BackPress() error {
	logger.Info("back press")
	if err := e.driver.Back(); err != nil {
		return err
	}
	e.WaitToSettle()
	return nil
}

// LaunchApp starts the app with the given ID and waits for the UI to settle.
func (e *Engine) LaunchApp(appID string) error {
	logger.Info("launch app %s", appID)
	if err := e.driver.LaunchApp(appID); err != nil {
		return err
	}
	e.WaitToSettle()
	return nil
}

// ViewHierarchy returns the current raw snapshot without waiting.
func (e *Engine) ViewHierarchy() (*snapshot.Node, error) {
	return e.driver.Snapshot()
}

// DeviceInfo returns device and platform details from the driver.
func (e *Engine) DeviceInfo() (*core.DeviceInfo, error) {
	return e.driver.DeviceInfo()
}

// DeviceName returns the driver's backend name.
func (e *Engine) DeviceName() string {
	return e.driver.Name()
}

// Close releases the underlying driver handle. The engine must not be used
// afterward.
func (e *Engine) Close() error {
	logger.Info("closing driver %s", e.driver.Name())
	return e.driver.Close()
}
