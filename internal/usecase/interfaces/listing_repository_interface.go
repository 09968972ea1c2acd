package interfaces

import (
	"context"

	"unimarket/internal/domain/entities"
)

// IListingRepository abstracts PostgreSQL persistence for Listing.
//
// The marketplace must be able to:
//   - create a listing when a seller posts an item
//   - browse listings filtered by category/search/seller
//   - flip a listing to sold when checkout completion confirms payment
//   - backfill synthetic seller account ids on legacy rows

type IListingRepository interface {
	Create(ctx context.Context, l entities.Listing) (entities.Listing, error)
	GetByID(ctx context.Context, id string) (entities.Listing, error)
	List(ctx context.Context, filter entities.ListingFilter) ([]entities.Listing, error)
	Update(ctx context.Context, l entities.Listing) (entities.Listing, error)
	Delete(ctx context.Context, id string) error
	MarkSold(ctx context.Context, id string) error
	BackfillSellerAccounts(ctx context.Context, assign func() string) (int, error)
}
