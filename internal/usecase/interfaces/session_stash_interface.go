package interfaces

import "context"

// ISessionStash is the single-slot, session-scoped storage of a pending token
// id, used when a resume call omits the token explicitly.
//
// Fetch is read-and-clear: a second Fetch with no intervening Put returns "".
// Concurrent requests racing on the same session are an accepted hazard (last
// writer wins); the stash does not arbitrate them.

type ISessionStash interface {
	Put(ctx context.Context, sessionID, tokenID string) error
	Fetch(ctx context.Context, sessionID string) (string, error)
}
