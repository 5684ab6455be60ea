// Package snapshot models a captured UI hierarchy and provides the tree
// primitives the synchronization engine is built on. A snapshot is immutable
// once captured; every capture produces a fresh tree.
package snapshot

import "fmt"

// Point is an absolute screen coordinate in pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Bounds represents element position and size.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center returns the center point of the bounds.
func (b Bounds) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// String renders bounds in Android "[x1,y1][x2,y2]" notation.
func (b Bounds) String() string {
	return fmt.Sprintf("[%d,%d][%d,%d]", b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Node is a single element in a captured hierarchy.
type Node struct {
	ID       string  `json:"id,omitempty"`
	Text     string  `json:"text,omitempty"`
	Bounds   Bounds  `json:"bounds"`
	Children []*Node `json:"children,omitempty"`
}

// Equal reports whether two snapshots are recursively identical in ID, text,
// bounds and child sequence. Child order matters; this is structural equality,
// not a semantic diff, and it is the basis of settle and change detection.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.ID != other.ID || n.Text != other.Text || n.Bounds != other.Bounds {
		return false
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i, child := range n.Children {
		if !child.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, child := range n.Children {
		total += child.Count()
	}
	return total
}

// Describe returns a short human-readable summary for logs and errors.
func (n *Node) Describe() string {
	if n == nil {
		return "<nil>"
	}
	switch {
	case n.ID != "" && n.Text != "":
		return fmt.Sprintf("id=%q text=%q %s", n.ID, n.Text, n.Bounds)
	case n.ID != "":
		return fmt.Sprintf("id=%q %s", n.ID, n.Bounds)
	case n.Text != "":
		return fmt.Sprintf("text=%q %s", n.Text, n.Bounds)
	default:
		return n.Bounds.String()
	}
}
