package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"unimarket/internal/domain/entities"
	"unimarket/internal/usecase/interfaces"
)

var (
	ErrInvalidAnalyticsAction = errors.New("invalid analytics action")
	ErrTransactionNotFound    = errors.New("transaction not found")
)

const (
	summaryDaysBack    = 30
	analyticsDaysLimit = 30
)

// TestTransactionInput creates a synthetic charge row for exercising the
// analytics views without going through the provider.
type TestTransactionInput struct {
	AccountID   string
	Amount      int64
	Fee         int64
	Description string
	Status      string
	Metadata    map[string]string
}

// IAnalyticsUseCase exposes the read-only analytics surface plus the manual
// sync/refresh actions.

type IAnalyticsUseCase interface {
	GetTransactionSummary(ctx context.Context) (entities.TransactionSummary, error)
	GetMarketplaceAnalytics(ctx context.Context) ([]entities.MarketplaceAnalyticsRow, error)
	GetSellerPerformance(ctx context.Context) ([]entities.SellerPerformanceRow, error)
	GetCategoryPerformance(ctx context.Context) ([]entities.CategoryPerformanceRow, error)
	SyncCharges(ctx context.Context) error
	RefreshViews(ctx context.Context) error
	CreateTestTransaction(ctx context.Context, in TestTransactionInput) (entities.DirectCharge, error)
	LinkTransaction(ctx context.Context, transactionID, listingID string) (entities.DirectCharge, error)
}

type AnalyticsUseCase struct {
	repo       interfaces.IAnalyticsRepository
	chargeRepo interfaces.IDirectChargeRepository
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(repo interfaces.IAnalyticsRepository, chargeRepo interfaces.IDirectChargeRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo, chargeRepo: chargeRepo}
}

func (u *AnalyticsUseCase) GetTransactionSummary(ctx context.Context) (entities.TransactionSummary, error) {
	return u.repo.GetTransactionSummary(ctx, summaryDaysBack)
}

func (u *AnalyticsUseCase) GetMarketplaceAnalytics(ctx context.Context) ([]entities.MarketplaceAnalyticsRow, error) {
	return u.repo.GetMarketplaceAnalytics(ctx, analyticsDaysLimit)
}

func (u *AnalyticsUseCase) GetSellerPerformance(ctx context.Context) ([]entities.SellerPerformanceRow, error) {
	return u.repo.GetSellerPerformance(ctx)
}

func (u *AnalyticsUseCase) GetCategoryPerformance(ctx context.Context) ([]entities.CategoryPerformanceRow, error) {
	return u.repo.GetCategoryPerformance(ctx)
}

func (u *AnalyticsUseCase) SyncCharges(ctx context.Context) error {
	if err := u.chargeRepo.SyncCharges(ctx); err != nil {
		log.Printf("[analytics][usecase] sync failed err=%v", err)
		return err
	}
	return nil
}

func (u *AnalyticsUseCase) RefreshViews(ctx context.Context) error {
	if err := u.repo.RefreshViews(ctx); err != nil {
		log.Printf("[analytics][usecase] view refresh failed err=%v", err)
		return err
	}
	log.Printf("[analytics][usecase] analytics views refreshed")
	return nil
}

// CreateTestTransaction inserts a synthetic charge with demo defaults.
func (u *AnalyticsUseCase) CreateTestTransaction(ctx context.Context, in TestTransactionInput) (entities.DirectCharge, error) {
	if in.AccountID == "" {
		in.AccountID = "acct_test_demo"
	}
	if in.Amount <= 0 {
		in.Amount = 10000
	}
	if in.Fee <= 0 {
		in.Fee = 300
	}
	if in.Description == "" {
		in.Description = "Test transaction"
	}
	status := entities.ChargeStatus(in.Status)
	switch status {
	case entities.ChargeStatusPending, entities.ChargeStatusSucceeded, entities.ChargeStatusFailed:
	default:
		status = entities.ChargeStatusSucceeded
	}

	metadata := entities.Metadata{"test": "true", "created_via_api": "true"}
	for k, v := range in.Metadata {
		metadata[k] = v
	}

	now := time.Now().UTC().UnixNano()
	charge := entities.DirectCharge{
		ConnectedAccountID:   in.AccountID,
		Amount:               in.Amount,
		ApplicationFeeAmount: in.Fee,
		Currency:             "usd",
		Description:          in.Description,
		Status:               status,
		PaymentIntentID:      fmt.Sprintf("pi_test_%d", now),
		CheckoutSessionID:    fmt.Sprintf("cs_test_%d", now),
		Metadata:             metadata,
	}

	created, err := u.chargeRepo.Create(ctx, charge)
	if err != nil {
		log.Printf("[analytics][usecase] test transaction insert failed err=%v", err)
		return entities.DirectCharge{}, err
	}
	return created, nil
}

// LinkTransaction attaches a listing to an existing charge row so the views
// can attribute revenue to categories and sellers.
func (u *AnalyticsUseCase) LinkTransaction(ctx context.Context, transactionID, listingID string) (entities.DirectCharge, error) {
	if transactionID == "" || listingID == "" {
		return entities.DirectCharge{}, ErrInvalidAnalyticsAction
	}
	linked, err := u.chargeRepo.LinkListing(ctx, transactionID, listingID)
	if err != nil {
		log.Printf("[analytics][usecase] link transaction failed id=%s err=%v", transactionID, err)
		return entities.DirectCharge{}, err
	}
	if linked.ID == "" {
		return entities.DirectCharge{}, ErrTransactionNotFound
	}
	return linked, nil
}
