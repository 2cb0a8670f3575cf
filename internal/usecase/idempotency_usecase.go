package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
)

// idempotencyTTL bounds how long a cached response is replayed.
const idempotencyTTL = 24 * time.Hour

var ErrMissingIdempotencyKey = errors.New("missing idempotency key")

// IdempotentOp executes the guarded operation and returns the response
// body and HTTP status to cache.
type IdempotentOp func(ctx context.Context) ([]byte, int, error)

// IdempotentOutcome is the response to write, with Replayed set when it
// came from the cache instead of a fresh execution.
type IdempotentOutcome struct {
	Body       []byte
	StatusCode int
	Replayed   bool
}

// IIdempotencyUseCase deduplicates client retries of mutating requests.

type IIdempotencyUseCase interface {
	Execute(ctx context.Context, prefix, key string, op IdempotentOp) (IdempotentOutcome, error)
}

type IdempotencyUseCase struct {
	repo interfaces.IIdempotencyRepository
	now  func() time.Time
}

var _ IIdempotencyUseCase = (*IdempotencyUseCase)(nil)

func NewIdempotencyUseCase(repo interfaces.IIdempotencyRepository) *IdempotencyUseCase {
	return &IdempotencyUseCase{repo: repo, now: time.Now}
}

// Execute replays the cached response for a known unexpired key without
// invoking op. On a miss it runs op; only successful (2xx) responses are
// cached, so a retry after a transient failure re-attempts for real. A
// cache write failure is logged, not surfaced: the operation already
// succeeded.
func (u *IdempotencyUseCase) Execute(ctx context.Context, prefix, key string, op IdempotentOp) (IdempotentOutcome, error) {
	if key == "" {
		return IdempotentOutcome{}, ErrMissingIdempotencyKey
	}
	cacheKey := prefix + key

	rec, err := u.repo.Get(ctx, cacheKey)
	if err != nil {
		return IdempotentOutcome{}, err
	}
	if rec.CacheKey != "" && !rec.Expired(u.now().UTC()) {
		log.Printf("[idempotency][usecase] replay cache_key=%s status=%d", cacheKey, rec.StatusCode)
		return IdempotentOutcome{Body: rec.ResponseBody, StatusCode: rec.StatusCode, Replayed: true}, nil
	}

	body, status, err := op(ctx)
	if err != nil {
		return IdempotentOutcome{}, err
	}

	if status >= 200 && status < 300 {
		now := u.now().UTC()
		put := entities.IdempotencyRecord{
			CacheKey:     cacheKey,
			ResponseBody: body,
			StatusCode:   status,
			CreatedAt:    now,
			ExpiresAt:    now.Add(idempotencyTTL),
		}
		if err := u.repo.Put(ctx, put); err != nil {
			log.Printf("[idempotency][usecase] cache write failed cache_key=%s err=%v", cacheKey, err)
		}
	}

	return IdempotentOutcome{Body: body, StatusCode: status}, nil
}
