package usecase

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"

	"unimarket/internal/domain/entities"
	"unimarket/internal/usecase/interfaces"
)

var (
	ErrListingNotFound       = errors.New("listing not found")
	ErrInvalidListingID      = errors.New("invalid listing id")
	ErrMissingListingFields  = errors.New("missing required listing fields")
	ErrInvalidListingPayload = errors.New("invalid listing payload")
)

const defaultListingLocation = "Palo Alto, CA"

// IListingUseCase exposes marketplace listing operations.

type IListingUseCase interface {
	CreateListing(ctx context.Context, draft entities.Listing) (entities.Listing, error)
	GetByID(ctx context.Context, id string) (entities.Listing, error)
	ListListings(ctx context.Context, filter entities.ListingFilter) ([]entities.Listing, error)
	UpdateListing(ctx context.Context, l entities.Listing) (entities.Listing, error)
	DeleteListing(ctx context.Context, id string) error
	MarkSold(ctx context.Context, id string) error
	BackfillSellerAccounts(ctx context.Context) (int, error)
}

type ListingUseCase struct {
	repo interfaces.IListingRepository
}

var _ IListingUseCase = (*ListingUseCase)(nil)

func NewListingUseCase(repo interfaces.IListingRepository) *ListingUseCase {
	return &ListingUseCase{repo: repo}
}

// CreateListing validates required fields and stores a new available listing.
// Sellers get a synthetic test sub-account id at creation time; it is replaced
// by a real one once they complete payment onboarding.
func (u *ListingUseCase) CreateListing(ctx context.Context, draft entities.Listing) (entities.Listing, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	draft.Category = strings.TrimSpace(draft.Category)
	draft.SellerEmail = strings.TrimSpace(draft.SellerEmail)
	if draft.Title == "" || draft.Price <= 0 || draft.Category == "" || draft.SellerEmail == "" {
		log.Printf("[listing][usecase] create rejected: missing fields title=%q price=%v category=%q email=%q",
			draft.Title, draft.Price, draft.Category, draft.SellerEmail)
		return entities.Listing{}, ErrMissingListingFields
	}

	draft.SellerStripeAccountID = NewTestAccountID()
	draft.Status = entities.ListingStatusAvailable
	if draft.Location == "" {
		draft.Location = defaultListingLocation
	}

	created, err := u.repo.Create(ctx, draft)
	if err != nil {
		log.Printf("[listing][usecase] create failed err=%v", err)
		return entities.Listing{}, err
	}
	log.Printf("[listing][usecase] created listing_id=%s seller_account=%s", created.ID, created.SellerStripeAccountID)
	return created, nil
}

func (u *ListingUseCase) GetByID(ctx context.Context, id string) (entities.Listing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Listing{}, ErrInvalidListingID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Listing{}, err
	}
	if l.ID == "" {
		return entities.Listing{}, ErrListingNotFound
	}
	return l, nil
}

func (u *ListingUseCase) ListListings(ctx context.Context, filter entities.ListingFilter) ([]entities.Listing, error) {
	return u.repo.List(ctx, filter)
}

func (u *ListingUseCase) UpdateListing(ctx context.Context, l entities.Listing) (entities.Listing, error) {
	l.ID = strings.TrimSpace(l.ID)
	if l.ID == "" {
		return entities.Listing{}, ErrInvalidListingID
	}
	if strings.TrimSpace(l.Title) == "" || l.Price <= 0 {
		return entities.Listing{}, ErrInvalidListingPayload
	}

	updated, err := u.repo.Update(ctx, l)
	if err != nil {
		return entities.Listing{}, err
	}
	if updated.ID == "" {
		return entities.Listing{}, ErrListingNotFound
	}
	return updated, nil
}

func (u *ListingUseCase) DeleteListing(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidListingID
	}
	return u.repo.Delete(ctx, id)
}

func (u *ListingUseCase) MarkSold(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidListingID
	}
	return u.repo.MarkSold(ctx, id)
}

// BackfillSellerAccounts assigns test sub-account ids to legacy listings that
// predate payment onboarding.
func (u *ListingUseCase) BackfillSellerAccounts(ctx context.Context) (int, error) {
	updated, err := u.repo.BackfillSellerAccounts(ctx, NewTestAccountID)
	if err != nil {
		log.Printf("[listing][usecase] backfill failed updated=%d err=%v", updated, err)
		return updated, err
	}
	log.Printf("[listing][usecase] backfill complete updated=%d", updated)
	return updated, nil
}

const accountTokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewTestAccountID generates a synthetic connected-account identifier. The
// acct_test_ prefix keeps these accounts out of connected-account provider
// calls during checkout.
func NewTestAccountID() string {
	b := make([]byte, 10)
	for i := range b {
		b[i] = accountTokenAlphabet[rand.Intn(len(accountTokenAlphabet))]
	}
	return entities.TestAccountPrefix + string(b)
}
