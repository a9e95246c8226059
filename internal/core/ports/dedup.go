package ports

import "context"

// DedupChecker provides idempotency checks for investment submissions.
// Implementations are best-effort fast paths: a miss falls through to the
// persistent store's idempotency-key lookup.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}
