package ports

import (
	"context"

	"github.com/oceanbook/booking-system/internal/core/domain"
)

// EventNotifier publishes a lifecycle event to the outside world. A failed
// Notify fails the surrounding operation: a state transition is not durable
// without its event.
type EventNotifier interface {
	Notify(ctx context.Context, event domain.LifecycleEvent) error
}
