package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"unimarket/internal/domain/entities"
	"unimarket/internal/infrastructure/database"
	"unimarket/internal/usecase/interfaces"
)

// AnalyticsPostgresRepository reads the pre-aggregated analytics views.
//
// All aggregation lives in the database; this repository only plumbs
// parameters and scans rows.

type AnalyticsPostgresRepository struct {
	db *sqlx.DB
}

var _ interfaces.IAnalyticsRepository = (*AnalyticsPostgresRepository)(nil)

func NewAnalyticsPostgresRepository(db *sqlx.DB) *AnalyticsPostgresRepository {
	return &AnalyticsPostgresRepository{db: db}
}

func (r *AnalyticsPostgresRepository) GetTransactionSummary(ctx context.Context, daysBack int) (entities.TransactionSummary, error) {
	var s entities.TransactionSummary
	err := r.db.GetContext(ctx, &s,
		`SELECT
			COUNT(CASE WHEN status = 'succeeded' THEN 1 END) AS transaction_count,
			COALESCE(SUM(CASE WHEN status = 'succeeded' THEN amount ELSE 0 END), 0) AS total_volume,
			COALESCE(SUM(CASE WHEN status = 'succeeded' THEN application_fee_amount ELSE 0 END), 0) AS platform_fees,
			COALESCE(ROUND(
				(COUNT(CASE WHEN status = 'succeeded' THEN 1 END)::decimal / NULLIF(COUNT(*), 0)) * 100, 2
			), 0) AS successful_rate
		FROM direct_charges
		WHERE created_at >= NOW() - ($1 || ' days')::interval`,
		fmt.Sprintf("%d", daysBack))
	if err != nil {
		return entities.TransactionSummary{}, err
	}

	err = r.db.QueryRowxContext(ctx,
		`SELECT COUNT(*),
			COUNT(CASE WHEN status = 'succeeded' THEN 1 END),
			COUNT(CASE WHEN status = 'pending' THEN 1 END)
		FROM direct_charges
		WHERE created_at >= NOW() - ($1 || ' days')::interval`,
		fmt.Sprintf("%d", daysBack)).
		Scan(&s.TotalTransactions, &s.SuccessfulTransactions, &s.PendingTransactions)
	if err != nil {
		return entities.TransactionSummary{}, err
	}

	s.Period = fmt.Sprintf("Last %d days", daysBack)
	if s.TransactionCount > 0 {
		s.AverageTransaction = float64(s.TotalVolume) / float64(s.TransactionCount)
	}
	return s, nil
}

func (r *AnalyticsPostgresRepository) GetMarketplaceAnalytics(ctx context.Context, limit int) ([]entities.MarketplaceAnalyticsRow, error) {
	rows := []entities.MarketplaceAnalyticsRow{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT transaction_date, total_transactions, total_volume, total_fees,
			avg_transaction_amount, successful_transactions, pending_transactions,
			unique_items_sold, categories_with_sales
		FROM marketplace_analytics
		ORDER BY transaction_date DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AnalyticsPostgresRepository) GetSellerPerformance(ctx context.Context) ([]entities.SellerPerformanceRow, error) {
	rows := []entities.SellerPerformanceRow{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT stripe_account_id, seller_email, total_listings, sold_listings,
			total_listing_value, completed_transactions, actual_revenue,
			platform_fees_paid, conversion_rate, payment_success_rate
		FROM seller_performance
		ORDER BY actual_revenue DESC`)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AnalyticsPostgresRepository) GetCategoryPerformance(ctx context.Context) ([]entities.CategoryPerformanceRow, error) {
	rows := []entities.CategoryPerformanceRow{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT category, total_listings, sold_count, avg_listing_price,
			total_listing_value, completed_transactions, actual_revenue, platform_fees
		FROM category_performance
		ORDER BY actual_revenue DESC`)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RefreshViews re-issues the CREATE OR REPLACE VIEW statements. DDL from a
// request handler, carried over from the reference system as-is.
func (r *AnalyticsPostgresRepository) RefreshViews(ctx context.Context) error {
	for _, stmt := range database.AnalyticsViewSQL() {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
