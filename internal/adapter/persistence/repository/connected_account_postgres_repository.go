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

// ConnectedAccountPostgresRepository persists ConnectedAccount entities in
// PostgreSQL.
//
// There is no uniqueness guard on user_id: every onboarding attempt inserts a
// new row, and lookups take the newest one.

type ConnectedAccountPostgresRepository struct {
	db *sqlx.DB
}

var _ interfaces.IConnectedAccountRepository = (*ConnectedAccountPostgresRepository)(nil)

func NewConnectedAccountPostgresRepository(db *sqlx.DB) *ConnectedAccountPostgresRepository {
	return &ConnectedAccountPostgresRepository{db: db}
}

func (r *ConnectedAccountPostgresRepository) Create(ctx context.Context, a entities.ConnectedAccount) (entities.ConnectedAccount, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO connected_accounts (id, user_id, stripe_account_id, account_type,
			charges_enabled, payouts_enabled, details_submitted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.UserID, a.StripeAccountID, a.AccountType,
		a.ChargesEnabled, a.PayoutsEnabled, a.DetailsSubmitted, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return entities.ConnectedAccount{}, err
	}
	return a, nil
}

func (r *ConnectedAccountPostgresRepository) GetLatestByUserID(ctx context.Context, userID string) (entities.ConnectedAccount, error) {
	var a entities.ConnectedAccount
	err := r.db.GetContext(ctx, &a,
		`SELECT id, user_id, stripe_account_id, account_type, charges_enabled,
			payouts_enabled, details_submitted, created_at, updated_at
		FROM connected_accounts
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.ConnectedAccount{}, nil
		}
		return entities.ConnectedAccount{}, err
	}
	return a, nil
}

// Upsert refreshes the capability flags for a sub-account, inserting the row
// if the account has never been recorded locally.
func (r *ConnectedAccountPostgresRepository) Upsert(ctx context.Context, a entities.ConnectedAccount) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO connected_accounts (id, user_id, stripe_account_id, account_type,
			charges_enabled, payouts_enabled, details_submitted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (stripe_account_id) DO UPDATE SET
			charges_enabled = EXCLUDED.charges_enabled,
			payouts_enabled = EXCLUDED.payouts_enabled,
			details_submitted = EXCLUDED.details_submitted,
			updated_at = EXCLUDED.updated_at`,
		uuid.NewString(), a.UserID, a.StripeAccountID, a.AccountType,
		a.ChargesEnabled, a.PayoutsEnabled, a.DetailsSubmitted, now)
	return err
}

func (r *ConnectedAccountPostgresRepository) DeleteByAccountID(ctx context.Context, stripeAccountID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM connected_accounts WHERE stripe_account_id = $1`, stripeAccountID)
	return err
}
