package storage

import "context"

// Well-known keys mirroring what the device storage of the original apps
// held: the cart snapshot, the fabricated identity, and the login token.
const (
	KeyCart     = "cart"
	KeyUserID   = "userId"
	KeyUserName = "userName"
	KeyToken    = "token"
)

// SnapshotStore persists small client-side snapshots. It is read at startup
// and written after every mutation, so reloading a view reconstructs
// identical state.
type SnapshotStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
