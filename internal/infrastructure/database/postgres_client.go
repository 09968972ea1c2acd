package database

import (
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// ConnectPostgres opens the marketplace database and ensures the schema is in
// place.
//
// Supported env vars (local-friendly):
//   - DB_HOST (default: localhost)
//   - DB_PORT (default: 5432)
//   - DB_USERNAME (default: postgres)
//   - DB_PASSWORD (default: postgres)
//   - DB_NAME (default: unimarket)
//   - DB_SSLMODE (default: disable)
func ConnectPostgres() *sqlx.DB {
	db, err := NewPostgresFromEnv()
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	return db
}

func NewPostgresFromEnv() (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getenvDefault("DB_HOST", "localhost"),
		getenvDefault("DB_PORT", "5432"),
		getenvDefault("DB_USERNAME", "postgres"),
		getenvDefault("DB_PASSWORD", "postgres"),
		getenvDefault("DB_NAME", "unimarket"),
		getenvDefault("DB_SSLMODE", "disable"),
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := createSchema(db); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// createSchema creates the marketplace tables, views and helper function.
func createSchema(db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS listings (
			id UUID PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(12,2) NOT NULL,
			category VARCHAR(100) NOT NULL,
			seller_email VARCHAR(255) NOT NULL,
			seller_stripe_account_id VARCHAR(255),
			image_url TEXT NOT NULL DEFAULT '',
			location VARCHAR(255) NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'available',
			sold_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			id UUID PRIMARY KEY,
			listing_id UUID NOT NULL,
			buyer_email VARCHAR(255) NOT NULL,
			seller_email VARCHAR(255) NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS connected_accounts (
			id UUID PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			stripe_account_id VARCHAR(255) NOT NULL UNIQUE,
			account_type VARCHAR(20) NOT NULL DEFAULT 'express',
			charges_enabled BOOLEAN NOT NULL DEFAULT FALSE,
			payouts_enabled BOOLEAN NOT NULL DEFAULT FALSE,
			details_submitted BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS direct_charges (
			id UUID PRIMARY KEY,
			connected_account_id VARCHAR(255) NOT NULL,
			amount BIGINT NOT NULL,
			application_fee_amount BIGINT NOT NULL DEFAULT 0,
			currency VARCHAR(3) NOT NULL DEFAULT 'usd',
			description TEXT NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			payment_intent_id VARCHAR(255) NOT NULL DEFAULT '',
			checkout_session_id VARCHAR(255) NOT NULL UNIQUE,
			listing_id UUID,
			metadata JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_profiles (
			user_id VARCHAR(255) PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL DEFAULT '',
			last_name VARCHAR(100) NOT NULL DEFAULT '',
			full_name VARCHAR(255) NOT NULL DEFAULT '',
			phone_number VARCHAR(50) NOT NULL DEFAULT '',
			gender VARCHAR(20) NOT NULL DEFAULT '',
			birthday VARCHAR(20) NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_listings_category ON listings(category)",
		"CREATE INDEX IF NOT EXISTS idx_listings_seller_email ON listings(seller_email)",
		"CREATE INDEX IF NOT EXISTS idx_listings_seller_account ON listings(seller_stripe_account_id)",
		"CREATE INDEX IF NOT EXISTS idx_messages_buyer_email ON messages(buyer_email)",
		"CREATE INDEX IF NOT EXISTS idx_messages_seller_email ON messages(seller_email)",
		"CREATE INDEX IF NOT EXISTS idx_connected_accounts_user ON connected_accounts(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_direct_charges_account ON direct_charges(connected_account_id)",
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			log.Printf("[database] failed to create index: %v", err)
			// Indexes are not critical; keep going.
		}
	}

	if _, err := db.Exec(SyncChargesFunctionSQL); err != nil {
		return err
	}

	return CreateAnalyticsViews(db)
}

// CreateAnalyticsViews (re-)issues the analytics view definitions. It runs at
// boot and is also exposed through the analytics refresh endpoint.
func CreateAnalyticsViews(db *sqlx.DB) error {
	for _, stmt := range AnalyticsViewSQL() {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// AnalyticsViewSQL returns the CREATE OR REPLACE VIEW statements backing the
// analytics endpoints. The views are pre-joined/pre-aggregated so handlers
// only read rows.
func AnalyticsViewSQL() []string {
	return []string{
		`CREATE OR REPLACE VIEW marketplace_analytics AS
		SELECT
			DATE_TRUNC('day', dc.created_at) AS transaction_date,
			COUNT(*) AS total_transactions,
			COALESCE(SUM(dc.amount), 0) AS total_volume,
			COALESCE(SUM(dc.application_fee_amount), 0) AS total_fees,
			COALESCE(AVG(dc.amount), 0) AS avg_transaction_amount,
			COUNT(CASE WHEN dc.status = 'succeeded' THEN 1 END) AS successful_transactions,
			COUNT(CASE WHEN dc.status = 'pending' THEN 1 END) AS pending_transactions,
			COUNT(DISTINCT (dc.metadata->>'post_id')) AS unique_items_sold,
			COUNT(DISTINCT l.category) AS categories_with_sales
		FROM direct_charges dc
		LEFT JOIN listings l ON l.id::text = (dc.metadata->>'post_id')
		WHERE dc.status = 'succeeded'
		GROUP BY DATE_TRUNC('day', dc.created_at)
		ORDER BY transaction_date DESC`,
		`CREATE OR REPLACE VIEW seller_performance AS
		SELECT
			ca.stripe_account_id,
			COALESCE(MIN(l.seller_email), '') AS seller_email,
			COUNT(DISTINCT l.id) AS total_listings,
			COUNT(DISTINCT CASE WHEN l.status = 'sold' THEN l.id END) AS sold_listings,
			COALESCE(SUM(CASE WHEN l.status = 'sold' THEN l.price ELSE 0 END), 0) AS total_listing_value,
			COUNT(DISTINCT dc.id) AS completed_transactions,
			COALESCE(SUM(CASE WHEN dc.status = 'succeeded' THEN dc.amount ELSE 0 END), 0)/100.0 AS actual_revenue,
			COALESCE(SUM(CASE WHEN dc.status = 'succeeded' THEN dc.application_fee_amount ELSE 0 END), 0)/100.0 AS platform_fees_paid,
			COALESCE(ROUND(
				(COUNT(DISTINCT CASE WHEN l.status = 'sold' THEN l.id END)::decimal / NULLIF(COUNT(DISTINCT l.id), 0)) * 100,
				2
			), 0) AS conversion_rate,
			COALESCE(ROUND(
				(COUNT(DISTINCT CASE WHEN dc.status = 'succeeded' THEN dc.id END)::decimal / NULLIF(COUNT(DISTINCT dc.id), 0)) * 100,
				2
			), 0) AS payment_success_rate
		FROM connected_accounts ca
		LEFT JOIN listings l ON ca.stripe_account_id = l.seller_stripe_account_id
		LEFT JOIN direct_charges dc ON ca.stripe_account_id = dc.connected_account_id
		GROUP BY ca.stripe_account_id
		ORDER BY actual_revenue DESC`,
		`CREATE OR REPLACE VIEW category_performance AS
		SELECT
			l.category,
			COUNT(DISTINCT l.id) AS total_listings,
			COUNT(DISTINCT CASE WHEN l.status = 'sold' THEN l.id END) AS sold_count,
			COALESCE(AVG(l.price), 0) AS avg_listing_price,
			COALESCE(SUM(CASE WHEN l.status = 'sold' THEN l.price ELSE 0 END), 0) AS total_listing_value,
			COUNT(DISTINCT dc.id) AS completed_transactions,
			COALESCE(SUM(CASE WHEN dc.status = 'succeeded' THEN dc.amount ELSE 0 END), 0)/100.0 AS actual_revenue,
			COALESCE(SUM(CASE WHEN dc.status = 'succeeded' THEN dc.application_fee_amount ELSE 0 END), 0)/100.0 AS platform_fees
		FROM listings l
		LEFT JOIN direct_charges dc ON l.seller_stripe_account_id = dc.connected_account_id
		GROUP BY l.category
		ORDER BY actual_revenue DESC`,
	}
}

// SyncChargesFunctionSQL defines sync_stripe_charges(): it links succeeded
// charges back to the listings referenced in their metadata and marks those
// listings sold. Manually triggered through the connect sync / analytics sync
// actions; there is no scheduled reconciliation job.
const SyncChargesFunctionSQL = `
CREATE OR REPLACE FUNCTION sync_stripe_charges() RETURNS void AS $$
BEGIN
	UPDATE direct_charges dc
	SET listing_id = (dc.metadata->>'post_id')::uuid,
		updated_at = NOW()
	WHERE dc.listing_id IS NULL
		AND dc.metadata->>'post_id' <> ''
		AND EXISTS (SELECT 1 FROM listings l WHERE l.id::text = dc.metadata->>'post_id');

	UPDATE listings l
	SET status = 'sold',
		sold_at = COALESCE(l.sold_at, NOW()),
		updated_at = NOW()
	FROM direct_charges dc
	WHERE dc.listing_id = l.id
		AND dc.status = 'succeeded'
		AND l.status <> 'sold';
END;
$$ LANGUAGE plpgsql`

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
