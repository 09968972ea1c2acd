package usecase

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"unimarket/internal/domain/entities"
	"unimarket/internal/usecase/interfaces"
)

var (
	ErrNotAuthenticated = errors.New("user not authenticated")
	ErrInvalidAccountID = errors.New("invalid account id")
	ErrDisconnectFailed = errors.New("failed to disconnect account from database")
)

// IConnectAccountUseCase exposes seller payment onboarding and status
// reconciliation against the payment provider.

type IConnectAccountUseCase interface {
	CreateConnectAccount(ctx context.Context, userID string) (entities.OnboardingResult, error)
	GetConnectStatus(ctx context.Context, accountID, userID string) (entities.ConnectStatus, error)
	DisconnectAccount(ctx context.Context, accountID string) error
	RefreshAccountLink(ctx context.Context, accountID string) (string, error)
	SyncTransactions(ctx context.Context) error
}

type ConnectAccountUseCase struct {
	repo       interfaces.IConnectedAccountRepository
	chargeRepo interfaces.IDirectChargeRepository
	gateway    interfaces.IPaymentGateway
}

var _ IConnectAccountUseCase = (*ConnectAccountUseCase)(nil)

func NewConnectAccountUseCase(repo interfaces.IConnectedAccountRepository, chargeRepo interfaces.IDirectChargeRepository, gateway interfaces.IPaymentGateway) *ConnectAccountUseCase {
	return &ConnectAccountUseCase{repo: repo, chargeRepo: chargeRepo, gateway: gateway}
}

// CreateConnectAccount registers an Express sub-account for the user, builds
// an onboarding link and records the account locally with all capability
// flags off.
//
// The local insert is non-fatal: the remote sub-account already exists at
// that point and a later status refresh upserts the row. Calling this twice
// for the same user creates two local records; lookups resolve to the newest.
func (u *ConnectAccountUseCase) CreateConnectAccount(ctx context.Context, userID string) (entities.OnboardingResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.OnboardingResult{}, ErrNotAuthenticated
	}
	log.Printf("[connect][usecase] creating connect account user_id=%s", userID)

	accountID, err := u.gateway.CreateExpressAccount(ctx)
	if err != nil {
		log.Printf("[connect][usecase] account create failed user_id=%s err=%v", userID, err)
		return entities.OnboardingResult{}, err
	}
	log.Printf("[connect][usecase] created provider account user_id=%s account_id=%s", userID, accountID)

	base := baseURL()
	url, err := u.gateway.CreateAccountLink(ctx, accountID, base+"/profile?refresh=true", base+"/profile?connected=true")
	if err != nil {
		log.Printf("[connect][usecase] account link failed account_id=%s err=%v", accountID, err)
		return entities.OnboardingResult{}, err
	}

	_, err = u.repo.Create(ctx, entities.ConnectedAccount{
		UserID:           userID,
		StripeAccountID:  accountID,
		AccountType:      "express",
		ChargesEnabled:   false,
		PayoutsEnabled:   false,
		DetailsSubmitted: false,
	})
	if err != nil {
		// The provider account exists either way; surface the link so
		// onboarding can proceed.
		log.Printf("[connect][usecase] local record insert failed account_id=%s err=%v", accountID, err)
	}

	return entities.OnboardingResult{URL: url, AccountID: accountID}, nil
}

// GetConnectStatus reconciles the local record with the provider's live view
// and derives the three-valued onboarding status.
//
// A missing user or missing local record is a valid empty state, returned as
// not_connected rather than an error.
func (u *ConnectAccountUseCase) GetConnectStatus(ctx context.Context, accountID, userID string) (entities.ConnectStatus, error) {
	accountID = strings.TrimSpace(accountID)
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return notConnectedStatus(), nil
	}

	if accountID == "" {
		record, err := u.repo.GetLatestByUserID(ctx, userID)
		if err != nil {
			log.Printf("[connect][usecase] local lookup failed user_id=%s err=%v", userID, err)
			return notConnectedStatus(), nil
		}
		if record.StripeAccountID == "" {
			log.Printf("[connect][usecase] no connected account for user_id=%s", userID)
			return notConnectedStatus(), nil
		}
		accountID = record.StripeAccountID
		log.Printf("[connect][usecase] resolved account user_id=%s account_id=%s", userID, accountID)
	}

	account, err := u.gateway.GetAccount(ctx, accountID)
	if err != nil {
		log.Printf("[connect][usecase] provider retrieve failed account_id=%s err=%v", accountID, err)
		return entities.ConnectStatus{}, err
	}

	// Refresh the local flags; a failure here only goes stale, it does not
	// block the status response.
	err = u.repo.Upsert(ctx, entities.ConnectedAccount{
		UserID:           userID,
		StripeAccountID:  accountID,
		AccountType:      "express",
		ChargesEnabled:   account.ChargesEnabled,
		PayoutsEnabled:   account.PayoutsEnabled,
		DetailsSubmitted: account.DetailsSubmitted,
	})
	if err != nil {
		log.Printf("[connect][usecase] local upsert failed account_id=%s err=%v", accountID, err)
	}

	return entities.ConnectStatus{
		Connected: account.DetailsSubmitted && account.ChargesEnabled,
		Status:    DeriveAccountStatus(account.DetailsSubmitted, account.ChargesEnabled),
		AccountID: account.ID,
		Capabilities: entities.AccountCapabilities{
			CardPayments: NormalizeCapability(account.Capabilities["card_payments"]),
			Transfers:    NormalizeCapability(account.Capabilities["transfers"]),
		},
	}, nil
}

// DisconnectAccount removes the local record only; the provider account is
// kept because it may hold historical transaction data.
func (u *ConnectAccountUseCase) DisconnectAccount(ctx context.Context, accountID string) error {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return ErrInvalidAccountID
	}
	if err := u.repo.DeleteByAccountID(ctx, accountID); err != nil {
		log.Printf("[connect][usecase] disconnect failed account_id=%s err=%v", accountID, err)
		return ErrDisconnectFailed
	}
	log.Printf("[connect][usecase] disconnected account_id=%s", accountID)
	return nil
}

// RefreshAccountLink issues a fresh onboarding link for an existing account.
func (u *ConnectAccountUseCase) RefreshAccountLink(ctx context.Context, accountID string) (string, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return "", ErrInvalidAccountID
	}

	base := baseURL()
	url, err := u.gateway.CreateAccountLink(ctx, accountID, base+"/profile?refresh=true", base+"/profile?connected=true")
	if err != nil {
		log.Printf("[connect][usecase] link refresh failed account_id=%s err=%v", accountID, err)
		return "", err
	}
	return url, nil
}

// SyncTransactions triggers the database-side charge reconciliation.
func (u *ConnectAccountUseCase) SyncTransactions(ctx context.Context) error {
	if err := u.chargeRepo.SyncCharges(ctx); err != nil {
		log.Printf("[connect][usecase] sync failed err=%v", err)
		return err
	}
	log.Printf("[connect][usecase] transactions synced")
	return nil
}

// DeriveAccountStatus collapses the provider's two booleans into the
// three-valued onboarding status:
//   - active:     details submitted and charges enabled
//   - restricted: details submitted, charges disabled
//   - pending:    details not yet submitted
func DeriveAccountStatus(detailsSubmitted, chargesEnabled bool) entities.AccountStatus {
	if !detailsSubmitted {
		return entities.AccountStatusPending
	}
	if chargesEnabled {
		return entities.AccountStatusActive
	}
	return entities.AccountStatusRestricted
}

// NormalizeCapability maps a provider capability value to active/inactive.
// Strings pass through unchanged (the provider already sends a status word);
// any other truthy value means active.
func NormalizeCapability(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "active"
		}
		return "inactive"
	case nil:
		return "inactive"
	default:
		return "active"
	}
}

func notConnectedStatus() entities.ConnectStatus {
	return entities.ConnectStatus{
		Connected: false,
		Status:    entities.AccountStatusNotConnected,
		AccountID: "",
		Capabilities: entities.AccountCapabilities{
			CardPayments: "inactive",
			Transfers:    "inactive",
		},
	}
}

func baseURL() string {
	if v := strings.TrimSpace(os.Getenv("BASE_URL")); v != "" {
		return strings.TrimRight(v, "/")
	}
	return "http://localhost:3000"
}
