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

// DirectChargePostgresRepository persists DirectCharge entities in PostgreSQL.

type DirectChargePostgresRepository struct {
	db *sqlx.DB
}

var _ interfaces.IDirectChargeRepository = (*DirectChargePostgresRepository)(nil)

func NewDirectChargePostgresRepository(db *sqlx.DB) *DirectChargePostgresRepository {
	return &DirectChargePostgresRepository{db: db}
}

func (r *DirectChargePostgresRepository) Create(ctx context.Context, c entities.DirectCharge) (entities.DirectCharge, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Currency == "" {
		c.Currency = "usd"
	}
	if c.Status == "" {
		c.Status = entities.ChargeStatusPending
	}
	if c.Metadata == nil {
		c.Metadata = entities.Metadata{}
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO direct_charges (id, connected_account_id, amount, application_fee_amount,
			currency, description, status, payment_intent_id, checkout_session_id, listing_id,
			metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		c.ID, c.ConnectedAccountID, c.Amount, c.ApplicationFeeAmount,
		c.Currency, c.Description, c.Status, c.PaymentIntentID, c.CheckoutSessionID, c.ListingID,
		c.Metadata, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return entities.DirectCharge{}, err
	}
	return c, nil
}

func (r *DirectChargePostgresRepository) GetBySessionID(ctx context.Context, checkoutSessionID string) (entities.DirectCharge, error) {
	var c entities.DirectCharge
	err := r.db.GetContext(ctx, &c,
		`SELECT id, connected_account_id, amount, application_fee_amount, currency,
			description, status, payment_intent_id, checkout_session_id, listing_id,
			metadata, created_at, updated_at
		FROM direct_charges WHERE checkout_session_id = $1`, checkoutSessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.DirectCharge{}, nil
		}
		return entities.DirectCharge{}, err
	}
	return c, nil
}

// MarkSucceeded flips a pending charge to succeeded. The status guard in the
// WHERE clause makes a second invocation a no-op.
func (r *DirectChargePostgresRepository) MarkSucceeded(ctx context.Context, id string, paymentIntentID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE direct_charges
		SET status = $2, payment_intent_id = $3, updated_at = $4
		WHERE id = $1 AND status = $5`,
		id, entities.ChargeStatusSucceeded, paymentIntentID, time.Now().UTC(), entities.ChargeStatusPending)
	return err
}

func (r *DirectChargePostgresRepository) LinkListing(ctx context.Context, chargeID string, listingID string) (entities.DirectCharge, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE direct_charges SET listing_id = $2, updated_at = $3 WHERE id = $1`,
		chargeID, listingID, time.Now().UTC())
	if err != nil {
		return entities.DirectCharge{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.DirectCharge{}, nil
	}

	var c entities.DirectCharge
	err = r.db.GetContext(ctx, &c,
		`SELECT id, connected_account_id, amount, application_fee_amount, currency,
			description, status, payment_intent_id, checkout_session_id, listing_id,
			metadata, created_at, updated_at
		FROM direct_charges WHERE id = $1`, chargeID)
	if err != nil {
		return entities.DirectCharge{}, err
	}
	return c, nil
}

// SyncCharges runs the database-side reconciliation function.
func (r *DirectChargePostgresRepository) SyncCharges(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `SELECT sync_stripe_charges()`)
	return err
}
