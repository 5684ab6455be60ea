package engine

import (
	"time"

	"github.com/devicelab-dev/uisync/pkg/logger"
)

// WaitToSettle blocks until two consecutive snapshots are structurally equal
// or the sample budget runs out. It sleeps a short grace period first to
// absorb the opening frame of any transition, then polls at a fixed interval.
//
// Settlement is advisory: this never fails, and returning does not guarantee
// the UI is static. A continuously animating UI (a spinner) simply exhausts
// the budget; capture errors degrade to an immediate return.
func (e *Engine) WaitToSettle() {
	time.Sleep(e.cfg.SettleInitialDelay())

	prev, err := e.driver.Snapshot()
	if err != nil {
		logger.Debug("settle: baseline capture failed, continuing: %v", err)
		return
	}

	for i := 0; i < e.cfg.SettleMaxChecks; i++ {
		time.Sleep(e.cfg.SettleInterval())

		cur, err := e.driver.Snapshot()
		if err != nil {
			logger.Debug("settle: capture failed, continuing: %v", err)
			return
		}
		if prev.Equal(cur) {
			logger.Debug("settle: hierarchy stable after %d sample(s)", i+1)
			return
		}
		prev = cur
	}

	logger.Info("settle: hierarchy still changing after %d samples, continuing anyway", e.cfg.SettleMaxChecks)
}
