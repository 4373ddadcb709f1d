package interfaces

import "context"

//go:generate mockgen -source=key_value_store_interface.go -destination=mocks/mock_key_value_store_interface.go -package=mock_interfaces

// IKeyValueStore abstracts the document store that holds one JSON document per
// collection key (orders, analytics events, page views, sessions, payments).
//
// Implementations must:
//   - return (nil, nil) from Get when the key does not exist
//   - replace the whole document on Set

type IKeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
