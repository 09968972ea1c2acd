package entities

import "time"

// The analytics entities map one-to-one onto SQL views maintained in the
// database; no aggregation happens in-process.

// TransactionSummary aggregates direct charges over a trailing window.
type TransactionSummary struct {
	Period                 string  `json:"period"`
	TransactionCount       int64   `json:"transaction_count" db:"transaction_count"`
	TotalVolume            int64   `json:"total_volume" db:"total_volume"`
	PlatformFees           int64   `json:"platform_fees" db:"platform_fees"`
	SuccessfulRate         float64 `json:"successful_rate" db:"successful_rate"`
	AverageTransaction     float64 `json:"average_transaction"`
	TotalTransactions      int64   `json:"total_transactions"`
	SuccessfulTransactions int64   `json:"successful_transactions"`
	PendingTransactions    int64   `json:"pending_transactions"`
}

// MarketplaceAnalyticsRow is one day of the marketplace_analytics view.
type MarketplaceAnalyticsRow struct {
	TransactionDate        time.Time `json:"transaction_date" db:"transaction_date"`
	TotalTransactions      int64     `json:"total_transactions" db:"total_transactions"`
	TotalVolume            int64     `json:"total_volume" db:"total_volume"`
	TotalFees              int64     `json:"total_fees" db:"total_fees"`
	AvgTransactionAmount   float64   `json:"avg_transaction_amount" db:"avg_transaction_amount"`
	SuccessfulTransactions int64     `json:"successful_transactions" db:"successful_transactions"`
	PendingTransactions    int64     `json:"pending_transactions" db:"pending_transactions"`
	UniqueItemsSold        int64     `json:"unique_items_sold" db:"unique_items_sold"`
	CategoriesWithSales    int64     `json:"categories_with_sales" db:"categories_with_sales"`
}

// SellerPerformanceRow is one seller of the seller_performance view.
type SellerPerformanceRow struct {
	StripeAccountID       string  `json:"stripe_account_id" db:"stripe_account_id"`
	SellerEmail           string  `json:"seller_email" db:"seller_email"`
	TotalListings         int64   `json:"total_listings" db:"total_listings"`
	SoldListings          int64   `json:"sold_listings" db:"sold_listings"`
	TotalListingValue     float64 `json:"total_listing_value" db:"total_listing_value"`
	CompletedTransactions int64   `json:"completed_transactions" db:"completed_transactions"`
	ActualRevenue         float64 `json:"actual_revenue" db:"actual_revenue"`
	PlatformFeesPaid      float64 `json:"platform_fees_paid" db:"platform_fees_paid"`
	ConversionRate        float64 `json:"conversion_rate" db:"conversion_rate"`
	PaymentSuccessRate    float64 `json:"payment_success_rate" db:"payment_success_rate"`
}

// CategoryPerformanceRow is one category of the category_performance view.
type CategoryPerformanceRow struct {
	Category              string  `json:"category" db:"category"`
	TotalListings         int64   `json:"total_listings" db:"total_listings"`
	SoldCount             int64   `json:"sold_count" db:"sold_count"`
	AvgListingPrice       float64 `json:"avg_listing_price" db:"avg_listing_price"`
	TotalListingValue     float64 `json:"total_listing_value" db:"total_listing_value"`
	CompletedTransactions int64   `json:"completed_transactions" db:"completed_transactions"`
	ActualRevenue         float64 `json:"actual_revenue" db:"actual_revenue"`
	PlatformFees          float64 `json:"platform_fees" db:"platform_fees"`
}
