package usecase

import (
	"context"
	"log"

	"nardoo_storefront/internal/domain/entities"
)

// IEventTracker records storefront behaviour. *AnalyticsAggregator satisfies it.
type IEventTracker interface {
	TrackEvent(ctx context.Context, in EventInput) (entities.TrackedEvent, error)
}

var _ IEventTracker = (*AnalyticsAggregator)(nil)

// track is fire-and-forget: a failed analytics write never fails the caller.
func track(ctx context.Context, tracker IEventTracker, eventType string, data map[string]any) {
	if tracker == nil {
		return
	}
	if _, err := tracker.TrackEvent(ctx, EventInput{Type: eventType, Data: data}); err != nil {
		log.Printf("[analytics][usecase] track failed type=%s err=%v", eventType, err)
	}
}
