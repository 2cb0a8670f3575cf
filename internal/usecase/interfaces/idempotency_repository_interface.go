package interfaces

import (
	"context"

	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
)

// IIdempotencyRepository abstracts relational persistence for the
// idempotency replay cache.
//
// Get returns a zero-value record (empty CacheKey) and a nil error when
// no row matches; expiry is the caller's concern so the TTL decision
// stays next to the guard's clock.

type IIdempotencyRepository interface {
	Get(ctx context.Context, cacheKey string) (entities.IdempotencyRecord, error)
	Put(ctx context.Context, rec entities.IdempotencyRecord) error
	DeleteExpired(ctx context.Context) (int64, error)
}
