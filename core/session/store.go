package session

import "context"

// Store persists sessions keyed by sender identity.
//
// Get returns the default session when the sender has none yet; an error
// means the backing store itself is unavailable, which the transport
// adapter surfaces as a generic failure reply.
type Store interface {
	Get(ctx context.Context, senderID string) (Session, error)
	Put(ctx context.Context, senderID string, s Session) error
}
