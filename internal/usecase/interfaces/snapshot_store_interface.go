package interfaces

import "context"

// ISnapshotStore is the persistent key-value store holding guest-session
// snapshots across the auth boundary.
//
// Get returns (nil, nil) when no snapshot exists under the key; callers
// treat the raw payload as opaque until deserialization.
type ISnapshotStore interface {
	Set(ctx context.Context, key string, payload []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Remove(ctx context.Context, key string) error
}
