// Package salesimport contains the asynchronous point-of-sale import use cases.
package salesimport

import (
	"context"
	"time"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// DefaultPollInterval is the delay between two process status checks.
const DefaultPollInterval = 2 * time.Second

// StatusFunc reports the current status of a polled process.
type StatusFunc func(ctx context.Context) (entity.ImportStatus, error)

// PollUntilTerminal checks the status immediately and then every interval
// until it is completed or error. It stops early on a check error or when
// ctx is done.
func PollUntilTerminal(ctx context.Context, interval time.Duration, check StatusFunc) (entity.ImportStatus, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	status, err := check(ctx)
	if err != nil || status.IsTerminal() {
		return status, err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-ticker.C:
			status, err = check(ctx)
			if err != nil || status.IsTerminal() {
				return status, err
			}
		}
	}
}
