package interfaces

import (
	"context"

	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
)

// IChurchRepository abstracts relational persistence for Church.
//
// Lookups return a zero-value Church (empty ID) and a nil error when no
// row matches, mirroring the other repositories.

type IChurchRepository interface {
	GetByID(ctx context.Context, id string) (entities.Church, error)
	GetByAPIKey(ctx context.Context, apiKey string) (entities.Church, error)
	SetStripeAccountID(ctx context.Context, id, stripeAccountID string) error
}
