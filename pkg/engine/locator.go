package engine

import (
	"fmt"
	"time"

	"github.com/devicelab-dev/uisync/pkg/core"
	"github.com/devicelab-dev/uisync/pkg/logger"
	"github.com/devicelab-dev/uisync/pkg/snapshot"
)

// FindWithTimeout polls fresh snapshots until a node matching the predicate
// appears or the wall-clock timeout elapses. The shallowest, left-most
// pre-order match wins. A zero or negative timeout still performs exactly one
// sampling attempt.
//
// Driver failures and predicate errors propagate unchanged; exhaustion
// returns an element_not_found error carrying the last observed snapshot.
func (e *Engine) FindWithTimeout(match snapshot.Predicate, timeout time.Duration) (*Element, error) {
	deadline := time.Now().Add(timeout)
	attempts := 0

	for {
		snap, err := e.driver.Snapshot()
		if err != nil {
			return nil, err
		}
		attempts++

		node, err := snapshot.FindFirst(snap, match)
		if err != nil {
			return nil, fmt.Errorf("predicate failed: %w", err)
		}
		if node != nil {
			logger.Debug("locator: matched %s after %d attempt(s)", node.Describe(), attempts)
			return &Element{
				Node:  node,
				Point: node.Bounds.Center(),
				match: match,
			}, nil
		}

		if !time.Now().Before(deadline) {
			logger.Info("locator: no match within %v (%d attempt(s))", timeout, attempts)
			return nil, core.NewElementNotFound(
				fmt.Sprintf("element not found within %v", timeout), snap)
		}
		// Re-sampling is the only pacing between attempts; capture latency is
		// the natural rate limit.
	}
}

// AllMatching collects every matching node from a single fresh snapshot in
// pre-order. No polling and no timeout: bulk queries have no "at least one"
// semantics to wait for.
func (e *Engine) AllMatching(match snapshot.Predicate) ([]*snapshot.Node, error) {
	snap, err := e.driver.Snapshot()
	if err != nil {
		return nil, err
	}
	return snapshot.FindAll(snap, match)
}
