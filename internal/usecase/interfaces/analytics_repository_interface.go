package interfaces

import (
	"context"

	"unimarket/internal/domain/entities"
)

// IAnalyticsRepository reads the pre-aggregated SQL views maintained in the
// database and re-issues their definitions on demand.

type IAnalyticsRepository interface {
	GetTransactionSummary(ctx context.Context, daysBack int) (entities.TransactionSummary, error)
	GetMarketplaceAnalytics(ctx context.Context, limit int) ([]entities.MarketplaceAnalyticsRow, error)
	GetSellerPerformance(ctx context.Context) ([]entities.SellerPerformanceRow, error)
	GetCategoryPerformance(ctx context.Context) ([]entities.CategoryPerformanceRow, error)
	RefreshViews(ctx context.Context) error
}
