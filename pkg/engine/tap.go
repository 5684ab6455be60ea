package engine

import (
	"time"

	"github.com/devicelab-dev/uisync/pkg/logger"
	"github.com/devicelab-dev/uisync/pkg/snapshot"
)

// Tap waits for the element to be visible in the current snapshot, then taps
// its center point with the no-change retry policy enabled.
//
// Visibility is re-resolved with the element's originating predicate against
// fresh snapshots, so a UI that shifted since the element was located yields
// updated coordinates rather than a tap on a stale point. If the element
// never reappears within the poll budget the last known point is tapped
// anyway; input delivery is best-effort throughout.
func (e *Engine) Tap(el *Element) error {
	match := el.match
	if match == nil {
		match = sameNode(el.Node)
	}

	point := el.Point
	for i := 0; i < e.cfg.VisibilityAttempts; i++ {
		snap, err := e.driver.Snapshot()
		if err != nil {
			return err
		}
		node, err := snapshot.FindFirst(snap, match)
		if err != nil {
			return err
		}
		if node != nil {
			point = node.Bounds.Center()
			break
		}
		logger.Debug("tap: element %s not visible yet (%d/%d)", el.Node.Describe(), i+1, e.cfg.VisibilityAttempts)
		if i == e.cfg.VisibilityAttempts-1 {
			logger.Warn("tap: element %s never became visible, tapping last known point (%d, %d)",
				el.Node.Describe(), point.X, point.Y)
			break
		}
		time.Sleep(e.cfg.VisibilityInterval())
	}

	return e.TapPoint(point, true)
}

// TapNode taps a raw snapshot node, re-confirming its presence by structural
// identity first.
func (e *Engine) TapNode(node *snapshot.Node) error {
	return e.Tap(NewElement(node))
}

// TapAt taps an absolute screen coordinate with the no-change retry policy
// enabled.
func (e *Engine) TapAt(x, y int) error {
	return e.TapPoint(snapshot.Point{X: x, Y: y}, true)
}

// TapPoint issues a tap and verifies it had an observable effect by comparing
// whole-tree snapshots before and after settlement. When retryIfNoChange is
// set the tap is reissued up to the configured retry count, and after that
// budget one final full cycle runs with retries disabled. Taps on real
// devices are occasionally dropped by the input pipeline; the snapshot
// comparison is a coarse, instrumentation-free way to detect "something
// happened".
//
// A tap with no observed effect after all attempts is not an error: a
// correctly delivered tap that legitimately changes nothing on screen is
// indistinguishable from a dropped one, so it is logged and the operation
// completes normally.
func (e *Engine) TapPoint(p snapshot.Point, retryIfNoChange bool) error {
	attempts := 1
	if retryIfNoChange {
		attempts = e.cfg.TapRetries
	}

	changed, err := e.tapCycle(p, attempts)
	if err != nil {
		return err
	}
	if changed {
		return nil
	}

	if retryIfNoChange {
		logger.Info("tap (%d, %d): no change after %d attempts, one final try", p.X, p.Y, attempts)
		changed, err = e.tapCycle(p, 1)
		if err != nil {
			return err
		}
	}
	if !changed {
		logger.Info("tap (%d, %d): nothing changed on screen", p.X, p.Y)
	}
	return nil
}

// tapCycle captures a baseline, then taps up to attempts times, waiting for
// settlement and re-capturing after each tap. Returns true as soon as a
// post-tap snapshot differs from the baseline.
func (e *Engine) tapCycle(p snapshot.Point, attempts int) (bool, error) {
	before, err := e.driver.Snapshot()
	if err != nil {
		return false, err
	}

	for i := 0; i < attempts; i++ {
		if err := e.driver.Tap(p); err != nil {
			return false, err
		}
		e.WaitToSettle()

		after, err := e.driver.Snapshot()
		if err != nil {
			return false, err
		}
		if !before.Equal(after) {
			return true, nil
		}
		logger.Debug("tap (%d, %d): hierarchy unchanged (attempt %d/%d)", p.X, p.Y, i+1, attempts)
	}
	return false, nil
}
