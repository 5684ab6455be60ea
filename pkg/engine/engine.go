// Package engine coordinates actions against an asynchronously animating UI
// when the only observable signal is a periodically sampled hierarchy
// snapshot. It owns the settle detector, the timeout-bounded element locator
// and the change-checked tap executor; concrete device control lives behind
// core.Driver.
//
// Everything here is synchronous and blocking: operations run to completion on
// the caller's goroutine, snapshots are captured strictly sequentially, and an
// engine must not be shared across goroutines without external locking.
package engine

import (
	"github.com/devicelab-dev/uisync/pkg/config"
	"github.com/devicelab-dev/uisync/pkg/core"
	"github.com/devicelab-dev/uisync/pkg/snapshot"
)

// Engine drives one device session through a core.Driver handle, which it
// owns exclusively until Close.
type Engine struct {
	driver core.Driver
	cfg    *config.Config
}

// New creates an engine over an already-open driver handle. A nil config uses
// defaults.
func New(driver core.Driver, cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Engine{driver: driver, cfg: cfg}
}

// Element is a caller-facing reference to a located node: the raw node plus
// its derived center point, and the predicate it was found with so taps can
// re-resolve it against the current snapshot.
type Element struct {
	Node  *snapshot.Node
	Point snapshot.Point

	match snapshot.Predicate
}

// NewElement wraps a raw node as an Element. Visibility re-checks use
// structural identity with the node.
func NewElement(node *snapshot.Node) *Element {
	return &Element{
		Node:  node,
		Point: node.Bounds.Center(),
		match: sameNode(node),
	}
}

// sameNode matches nodes structurally identical to the reference in
// identifier, text and bounds.
func sameNode(ref *snapshot.Node) snapshot.Predicate {
	return func(n *snapshot.Node) (bool, error) {
		return n.ID == ref.ID && n.Text == ref.Text && n.Bounds == ref.Bounds, nil
	}
}
