package engine

import (
	"errors"
	"time"

	"github.com/devicelab-dev/uisync/pkg/core"
	"github.com/devicelab-dev/uisync/pkg/logger"
	"github.com/devicelab-dev/uisync/pkg/predicate"
)

// FindElementByText locates the first element whose text equals text exactly.
// Fails with element_not_found (carrying the last snapshot) on timeout.
func (e *Engine) FindElementByText(text string, timeout time.Duration) (*Element, error) {
	logger.Info("find element by text %q (timeout %v)", text, timeout)
	return e.FindWithTimeout(predicate.Text(text), timeout)
}

// FindElementByRegexp locates the first element whose text matches the
// regular expression pattern.
func (e *Engine) FindElementByRegexp(pattern string, timeout time.Duration) (*Element, error) {
	logger.Info("find element by text pattern %q (timeout %v)", pattern, timeout)
	match, err := predicate.TextMatches(pattern)
	if err != nil {
		return nil, err
	}
	return e.FindWithTimeout(match, timeout)
}

// FindElementByIDRegex locates the first element whose identifier matches the
// regular expression pattern.
func (e *Engine) FindElementByIDRegex(pattern string, timeout time.Duration) (*Element, error) {
	logger.Info("find element by id pattern %q (timeout %v)", pattern, timeout)
	match, err := predicate.IDMatches(pattern)
	if err != nil {
		return nil, err
	}
	return e.FindWithTimeout(match, timeout)
}

// FindElementBySize locates the first element of the given dimensions, within
// tolerance pixels. Size queries are speculative, so an exhausted timeout
// returns (nil, nil) rather than an error. A zero width or height leaves that
// dimension unconstrained; a zero tolerance uses the default.
func (e *Engine) FindElementBySize(width, height, tolerance int, timeout time.Duration) (*Element, error) {
	logger.Info("find element by size %dx%d ±%d (timeout %v)", width, height, tolerance, timeout)
	el, err := e.FindWithTimeout(predicate.Size(width, height, tolerance), timeout)
	if err != nil {
		if errors.Is(err, core.ErrElementNotFound) {
			logger.Info("no element of size %dx%d, returning empty result", width, height)
			return nil, nil
		}
		return nil, err
	}
	return el, nil
}
