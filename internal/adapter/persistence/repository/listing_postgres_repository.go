package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"unimarket/internal/domain/entities"
	"unimarket/internal/usecase/interfaces"
)

// ListingPostgresRepository persists Listing entities in PostgreSQL.

type ListingPostgresRepository struct {
	db *sqlx.DB
}

var _ interfaces.IListingRepository = (*ListingPostgresRepository)(nil)

func NewListingPostgresRepository(db *sqlx.DB) *ListingPostgresRepository {
	return &ListingPostgresRepository{db: db}
}

func (r *ListingPostgresRepository) Create(ctx context.Context, l entities.Listing) (entities.Listing, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now

	query := `
		INSERT INTO listings (id, title, description, price, category, seller_email,
			seller_stripe_account_id, image_url, location, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.Title, l.Description, l.Price, l.Category, l.SellerEmail,
		l.SellerStripeAccountID, l.ImageURL, l.Location, l.Status, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		return entities.Listing{}, err
	}
	return l, nil
}

func (r *ListingPostgresRepository) GetByID(ctx context.Context, id string) (entities.Listing, error) {
	var l entities.Listing
	err := r.db.GetContext(ctx, &l,
		`SELECT id, title, description, price, category, seller_email,
			COALESCE(seller_stripe_account_id, '') AS seller_stripe_account_id,
			image_url, location, status, sold_at, created_at, updated_at
		FROM listings WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Listing{}, nil
		}
		return entities.Listing{}, err
	}
	return l, nil
}

func (r *ListingPostgresRepository) List(ctx context.Context, filter entities.ListingFilter) ([]entities.Listing, error) {
	query := `
		SELECT id, title, description, price, category, seller_email,
			COALESCE(seller_stripe_account_id, '') AS seller_stripe_account_id,
			image_url, location, status, sold_at, created_at, updated_at
		FROM listings
		WHERE ($1 = '' OR category = $1)
			AND ($2 = '' OR title ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')
			AND ($3 = '' OR seller_email = $3)
		ORDER BY created_at DESC
	`
	listings := []entities.Listing{}
	err := r.db.SelectContext(ctx, &listings, query, filter.Category, filter.Search, filter.SellerEmail)
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *ListingPostgresRepository) Update(ctx context.Context, l entities.Listing) (entities.Listing, error) {
	l.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE listings
		SET title = $2, description = $3, price = $4, category = $5,
			image_url = $6, location = $7, status = $8, updated_at = $9
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		l.ID, l.Title, l.Description, l.Price, l.Category, l.ImageURL, l.Location, l.Status, l.UpdatedAt)
	if err != nil {
		return entities.Listing{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.Listing{}, nil
	}
	return r.GetByID(ctx, l.ID)
}

func (r *ListingPostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	return err
}

func (r *ListingPostgresRepository) MarkSold(ctx context.Context, id string) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`UPDATE listings SET status = $2, sold_at = $3, updated_at = $3 WHERE id = $1`,
		id, entities.ListingStatusSold, now)
	return err
}

// BackfillSellerAccounts assigns a synthetic account id (produced by assign)
// to every listing with no seller account, resetting it to available.
func (r *ListingPostgresRepository) BackfillSellerAccounts(ctx context.Context, assign func() string) (int, error) {
	var ids []string
	err := r.db.SelectContext(ctx, &ids,
		`SELECT id FROM listings WHERE seller_stripe_account_id IS NULL OR seller_stripe_account_id = ''`)
	if err != nil {
		return 0, err
	}

	updated := 0
	now := time.Now().UTC()
	for _, id := range ids {
		_, err := r.db.ExecContext(ctx,
			`UPDATE listings SET seller_stripe_account_id = $2, status = $3, updated_at = $4 WHERE id = $1`,
			id, assign(), entities.ListingStatusAvailable, now)
		if err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
