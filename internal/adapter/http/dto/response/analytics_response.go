package response

import "unimarket/internal/domain/entities"

type SummaryResponse struct {
	Success bool                        `json:"success"`
	Summary entities.TransactionSummary `json:"summary"`
}

func FromSummary(s entities.TransactionSummary) SummaryResponse {
	return SummaryResponse{Success: true, Summary: s}
}

type MarketplaceAnalyticsResponse struct {
	Success   bool                               `json:"success"`
	Analytics []entities.MarketplaceAnalyticsRow `json:"analytics"`
	TotalDays int                                `json:"total_days"`
}

func FromMarketplaceAnalytics(rows []entities.MarketplaceAnalyticsRow) MarketplaceAnalyticsResponse {
	if rows == nil {
		rows = []entities.MarketplaceAnalyticsRow{}
	}
	return MarketplaceAnalyticsResponse{Success: true, Analytics: rows, TotalDays: len(rows)}
}

type SellerPerformanceResponse struct {
	Success      bool                            `json:"success"`
	Sellers      []entities.SellerPerformanceRow `json:"sellers"`
	TotalSellers int                             `json:"total_sellers"`
}

func FromSellerPerformance(rows []entities.SellerPerformanceRow) SellerPerformanceResponse {
	if rows == nil {
		rows = []entities.SellerPerformanceRow{}
	}
	return SellerPerformanceResponse{Success: true, Sellers: rows, TotalSellers: len(rows)}
}

type CategoryPerformanceResponse struct {
	Success         bool                              `json:"success"`
	Categories      []entities.CategoryPerformanceRow `json:"categories"`
	TotalCategories int                               `json:"total_categories"`
}

func FromCategoryPerformance(rows []entities.CategoryPerformanceRow) CategoryPerformanceResponse {
	if rows == nil {
		rows = []entities.CategoryPerformanceRow{}
	}
	return CategoryPerformanceResponse{Success: true, Categories: rows, TotalCategories: len(rows)}
}

// ActionResponse is the generic {success, message} envelope used by the
// sync, refresh and admin endpoints.
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewActionResponse(msg string) ActionResponse {
	return ActionResponse{Success: true, Message: msg}
}

// BackfillResponse reports how many listings were assigned a seller account.
type BackfillResponse struct {
	Success bool   `json:"success"`
	Updated int    `json:"updated"`
	Message string `json:"message"`
}
