// Package predicate provides the standard matchers consumed by the engine's
// locator. The engine treats every predicate as opaque; anything with the
// snapshot.Predicate signature works.
package predicate

import (
	"fmt"
	"regexp"

	"github.com/devicelab-dev/uisync/pkg/snapshot"
)

// DefaultSizeTolerance is the pixel slack applied when a size predicate is
// built without an explicit tolerance.
const DefaultSizeTolerance = 5

// Text matches nodes whose displayed text equals the given string exactly.
func Text(text string) snapshot.Predicate {
	return func(n *snapshot.Node) (bool, error) {
		return n.Text == text, nil
	}
}

// TextMatches matches nodes whose displayed text matches the regular
// expression pattern. Returns an error for an invalid pattern.
func TextMatches(pattern string) (snapshot.Predicate, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid text pattern %q: %w", pattern, err)
	}
	return func(n *snapshot.Node) (bool, error) {
		return n.Text != "" && re.MatchString(n.Text), nil
	}, nil
}

// IDMatches matches nodes whose identifier matches the regular expression
// pattern. Returns an error for an invalid pattern.
func IDMatches(pattern string) (snapshot.Predicate, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid id pattern %q: %w", pattern, err)
	}
	return func(n *snapshot.Node) (bool, error) {
		return n.ID != "" && re.MatchString(n.ID), nil
	}, nil
}

// Size matches nodes by their rendered dimensions. A zero width or height
// leaves that dimension unconstrained; a zero tolerance applies
// DefaultSizeTolerance.
func Size(width, height, tolerance int) snapshot.Predicate {
	if tolerance == 0 {
		tolerance = DefaultSizeTolerance
	}
	return func(n *snapshot.Node) (bool, error) {
		if width == 0 && height == 0 {
			return false, nil
		}
		if width > 0 && !withinTolerance(n.Bounds.Width, width, tolerance) {
			return false, nil
		}
		if height > 0 && !withinTolerance(n.Bounds.Height, height, tolerance) {
			return false, nil
		}
		return true, nil
	}
}

// And combines predicates; all must hold.
func And(preds ...snapshot.Predicate) snapshot.Predicate {
	return func(n *snapshot.Node) (bool, error) {
		for _, p := range preds {
			ok, err := p(n)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
}

// withinTolerance checks if actual is within tolerance of expected.
func withinTolerance(actual, expected, tolerance int) bool {
	diff := actual - expected
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
