package interfaces

import (
	"context"

	"unimarket/internal/domain/entities"
)

// IConnectedAccountRepository abstracts PostgreSQL persistence for
// ConnectedAccount.
//
// GetLatestByUserID returns the newest record for a user because nothing
// prevents multiple onboarding attempts from leaving multiple rows behind.
// Upsert refreshes the capability flags keyed by stripe_account_id.

type IConnectedAccountRepository interface {
	Create(ctx context.Context, a entities.ConnectedAccount) (entities.ConnectedAccount, error)
	GetLatestByUserID(ctx context.Context, userID string) (entities.ConnectedAccount, error)
	Upsert(ctx context.Context, a entities.ConnectedAccount) error
	DeleteByAccountID(ctx context.Context, stripeAccountID string) error
}
