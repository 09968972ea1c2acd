package interfaces

import (
	"context"

	"unimarket/internal/domain/entities"
)

// IDirectChargeRepository abstracts PostgreSQL persistence for DirectCharge.
//
// MarkSucceeded only touches rows still in pending status; invoking it twice
// for the same charge is a no-op the second time.

type IDirectChargeRepository interface {
	Create(ctx context.Context, c entities.DirectCharge) (entities.DirectCharge, error)
	GetBySessionID(ctx context.Context, checkoutSessionID string) (entities.DirectCharge, error)
	MarkSucceeded(ctx context.Context, id string, paymentIntentID string) error
	LinkListing(ctx context.Context, chargeID string, listingID string) (entities.DirectCharge, error)
	SyncCharges(ctx context.Context) error
}
