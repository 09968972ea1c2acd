package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"unimarket/internal/domain/entities"
	"unimarket/internal/usecase/interfaces"
)

var (
	ErrMissingConnectedAccount = errors.New("missing connected account id")
	ErrAmountBelowMinimum      = errors.New("amount must be at least 50 cents")
	ErrInvalidConnectedAccount = errors.New("connected account not set up for payments")
	ErrInvalidSessionID        = errors.New("invalid session id")
	ErrSessionNotFound         = errors.New("session not found")
)

// MinChargeAmountCents is the provider's floor for a checkout session.
const MinChargeAmountCents = 50

// DefaultFeePercent is the platform's cut when no explicit fee is supplied.
const DefaultFeePercent = 3

// CheckoutInput describes a checkout session to create on behalf of a seller.
// Amount and ApplicationFee are minor units.
type CheckoutInput struct {
	AccountID          string
	Amount             int64
	ApplicationFee     int64
	ProductName        string
	ProductDescription string
	PostID             string
}

// ICheckoutUseCase exposes checkout session creation and completion.

type ICheckoutUseCase interface {
	CreateSession(ctx context.Context, in CheckoutInput) (entities.CheckoutSession, error)
	CompleteSession(ctx context.Context, sessionID string) (entities.CheckoutSession, error)
}

type CheckoutUseCase struct {
	chargeRepo  interfaces.IDirectChargeRepository
	listingRepo interfaces.IListingRepository
	gateway     interfaces.IPaymentGateway
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(chargeRepo interfaces.IDirectChargeRepository, listingRepo interfaces.IListingRepository, gateway interfaces.IPaymentGateway) *CheckoutUseCase {
	return &CheckoutUseCase{chargeRepo: chargeRepo, listingRepo: listingRepo, gateway: gateway}
}

// CreateSession creates a provider-hosted checkout session and records a
// pending direct charge keyed by the session id.
//
// Test accounts (acct_test_ prefix) get a session on the platform account
// with the fee kept in metadata only; real accounts get a session in
// connected-account context with the application fee deducted at settlement.
func (u *CheckoutUseCase) CreateSession(ctx context.Context, in CheckoutInput) (entities.CheckoutSession, error) {
	in.AccountID = strings.TrimSpace(in.AccountID)
	if in.AccountID == "" {
		return entities.CheckoutSession{}, ErrMissingConnectedAccount
	}
	if in.Amount < MinChargeAmountCents {
		log.Printf("[checkout][usecase] amount below minimum account_id=%s amount=%d", in.AccountID, in.Amount)
		return entities.CheckoutSession{}, ErrAmountBelowMinimum
	}

	fee := in.ApplicationFee
	if fee <= 0 {
		fee = in.Amount * DefaultFeePercent / 100
	}

	productName := in.ProductName
	if productName == "" {
		productName = "Marketplace Item"
	}
	productDescription := in.ProductDescription
	if productDescription == "" {
		productDescription = "Purchase from marketplace"
	}

	isTestAccount := strings.HasPrefix(in.AccountID, entities.TestAccountPrefix)
	log.Printf("[checkout][usecase] creating session account_id=%s amount=%d fee=%d test=%v", in.AccountID, in.Amount, fee, isTestAccount)

	base := baseURL()
	params := entities.CheckoutSessionParams{
		AmountCents:        in.Amount,
		Currency:           "usd",
		ProductName:        productName,
		ProductDescription: productDescription,
		SuccessURL:         base + "/purchase-success?session_id={CHECKOUT_SESSION_ID}&post_id=" + in.PostID,
		CancelURL:          base + "/?cancelled=true",
		Metadata: map[string]string{
			"postId":             in.PostID,
			"connectedAccountId": in.AccountID,
		},
	}
	if isTestAccount {
		// Platform-account session; the fee is recorded for bookkeeping only.
		params.Metadata["testMode"] = "true"
		params.Metadata["applicationFee"] = strconv.FormatInt(fee, 10)
	} else {
		params.ConnectedAccountID = in.AccountID
		params.ApplicationFeeAmount = fee
	}

	session, err := u.gateway.CreateCheckoutSession(ctx, params)
	if err != nil {
		log.Printf("[checkout][usecase] session create failed account_id=%s err=%v", in.AccountID, err)
		if isAccountInvalidError(err) {
			return entities.CheckoutSession{}, ErrInvalidConnectedAccount
		}
		return entities.CheckoutSession{}, err
	}

	_, err = u.chargeRepo.Create(ctx, entities.DirectCharge{
		ConnectedAccountID:   in.AccountID,
		Amount:               in.Amount,
		ApplicationFeeAmount: fee,
		Currency:             "usd",
		Description:          productDescription,
		Status:               entities.ChargeStatusPending,
		CheckoutSessionID:    session.ID,
		Metadata: entities.Metadata{
			"post_id":      in.PostID,
			"product_name": productName,
		},
	})
	if err != nil {
		// The provider session exists; tracking catches up via sync.
		log.Printf("[checkout][usecase] charge record insert failed session_id=%s err=%v", session.ID, err)
	}

	log.Printf("[checkout][usecase] session created session_id=%s account_id=%s", session.ID, in.AccountID)
	return session, nil
}

// CompleteSession re-fetches a session from the provider and, when it is paid
// and the local charge is still pending, flips the charge to succeeded and
// marks the referenced listing sold.
//
// The pending guard makes a repeat invocation a no-op; there is no lock
// against two invocations racing between read and write.
func (u *CheckoutUseCase) CompleteSession(ctx context.Context, sessionID string) (entities.CheckoutSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.CheckoutSession{}, ErrInvalidSessionID
	}

	charge, err := u.chargeRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		log.Printf("[checkout][usecase] charge lookup failed session_id=%s err=%v", sessionID, err)
	}
	if err != nil || charge.ID == "" {
		// No local record: retrieve without connected-account context.
		session, gerr := u.gateway.GetCheckoutSession(ctx, sessionID, "")
		if gerr != nil {
			log.Printf("[checkout][usecase] session not found session_id=%s err=%v", sessionID, gerr)
			return entities.CheckoutSession{}, ErrSessionNotFound
		}
		return session, nil
	}

	connectedAccountID := charge.ConnectedAccountID
	if strings.HasPrefix(connectedAccountID, entities.TestAccountPrefix) {
		connectedAccountID = ""
	}

	session, err := u.gateway.GetCheckoutSession(ctx, sessionID, connectedAccountID)
	if err != nil {
		log.Printf("[checkout][usecase] session retrieve failed session_id=%s err=%v", sessionID, err)
		return entities.CheckoutSession{}, err
	}

	if session.PaymentStatus == entities.PaymentStatusPaid && charge.Status == entities.ChargeStatusPending {
		if err := u.chargeRepo.MarkSucceeded(ctx, charge.ID, session.PaymentIntentID); err != nil {
			log.Printf("[checkout][usecase] charge update failed charge_id=%s err=%v", charge.ID, err)
		} else if postID := session.Metadata["postId"]; postID != "" {
			if err := u.listingRepo.MarkSold(ctx, postID); err != nil {
				log.Printf("[checkout][usecase] listing update failed listing_id=%s err=%v", postID, err)
			} else {
				log.Printf("[checkout][usecase] listing sold listing_id=%s session_id=%s", postID, sessionID)
			}
		}
	}

	return session, nil
}

// isAccountInvalidError matches the provider's account_invalid error code,
// raised when a session targets a deleted or never-onboarded sub-account.
func isAccountInvalidError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "account_invalid")
}
