package interfaces

import "context"

//go:generate mockgen -source=event_publisher_interface.go -destination=mocks/mock_event_publisher_interface.go -package=mock_interfaces

// IEventPublisher forwards domain events (order lifecycle, tracked analytics events)
// to an external broker. Publishing is best effort: callers log failures and move on.

type IEventPublisher interface {
	Publish(ctx context.Context, pattern string, data interface{}) error
}
