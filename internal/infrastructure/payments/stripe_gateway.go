package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"unimarket/internal/domain/entities"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")
var ErrStripeGatewayNotConfigured = errors.New("stripe gateway not configured")

// StripeGateway talks to Stripe Connect: Express sub-accounts, onboarding
// account links and provider-hosted checkout sessions.
//
// Mock mode (STRIPE_MOCK / PAYMENT_GATEWAY_MOCK) fabricates provider objects
// locally so the rest of the stack can run without credentials.
type StripeGateway struct {
	sc       *client.API
	mockMode bool
}

func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &StripeGateway{mockMode: true}, nil
	}

	if secretKey == "" {
		log.Printf("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	sc := &client.API{}
	sc.Init(secretKey, nil)
	log.Printf("[payment][gateway] Stripe client initialized")

	return &StripeGateway{sc: sc}, nil
}

// CreateExpressAccount registers a new Express sub-account. The account is
// pre-filled with test individual data so onboarding can be completed quickly
// in sandbox mode.
func (g *StripeGateway) CreateExpressAccount(ctx context.Context) (string, error) {
	if g != nil && g.mockMode {
		id := entities.TestAccountPrefix + randomToken(10)
		log.Printf("[payment][gateway] mock account created account_id=%s", id)
		return id, nil
	}
	if g == nil || g.sc == nil {
		return "", ErrStripeGatewayNotConfigured
	}

	params := &stripe.AccountParams{
		Type:    stripe.String(string(stripe.AccountTypeExpress)),
		Country: stripe.String("US"),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{Requested: stripe.Bool(true)},
			Transfers:    &stripe.AccountCapabilitiesTransfersParams{Requested: stripe.Bool(true)},
		},
		BusinessType: stripe.String("individual"),
		Individual: &stripe.PersonParams{
			FirstName: stripe.String("Test"),
			LastName:  stripe.String("User"),
			Email:     stripe.String("testuser@example.com"),
		},
	}
	params.Context = ctx

	account, err := g.sc.Accounts.New(params)
	if err != nil {
		log.Printf("[payment][gateway] account create failed err=%v", err)
		return "", err
	}
	log.Printf("[payment][gateway] account created account_id=%s", account.ID)
	return account.ID, nil
}

// CreateAccountLink generates a fresh onboarding link scoped to the account.
func (g *StripeGateway) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	if g != nil && g.mockMode {
		url := fmt.Sprintf("https://connect.stripe.com/setup/mock/%s", accountID)
		log.Printf("[payment][gateway] mock account link account_id=%s", accountID)
		return url, nil
	}
	if g == nil || g.sc == nil {
		return "", ErrStripeGatewayNotConfigured
	}

	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
	}
	params.Context = ctx

	link, err := g.sc.AccountLinks.New(params)
	if err != nil {
		log.Printf("[payment][gateway] account link failed account_id=%s err=%v", accountID, err)
		return "", err
	}
	return link.URL, nil
}

// GetAccount retrieves the live account status. Capabilities are passed along
// raw; normalization to active/inactive happens in the use case.
func (g *StripeGateway) GetAccount(ctx context.Context, accountID string) (entities.GatewayAccount, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock account retrieve account_id=%s", accountID)
		return entities.GatewayAccount{
			ID:               accountID,
			DetailsSubmitted: true,
			ChargesEnabled:   true,
			PayoutsEnabled:   true,
			Capabilities: map[string]interface{}{
				"card_payments": "active",
				"transfers":     "active",
			},
		}, nil
	}
	if g == nil || g.sc == nil {
		return entities.GatewayAccount{}, ErrStripeGatewayNotConfigured
	}

	params := &stripe.AccountParams{}
	params.Context = ctx

	account, err := g.sc.Accounts.GetByID(accountID, params)
	if err != nil {
		log.Printf("[payment][gateway] account retrieve failed account_id=%s err=%v", accountID, err)
		return entities.GatewayAccount{}, err
	}

	capabilities := map[string]interface{}{}
	if account.Capabilities != nil {
		if account.Capabilities.CardPayments != "" {
			capabilities["card_payments"] = string(account.Capabilities.CardPayments)
		}
		if account.Capabilities.Transfers != "" {
			capabilities["transfers"] = string(account.Capabilities.Transfers)
		}
	}

	return entities.GatewayAccount{
		ID:               account.ID,
		DetailsSubmitted: account.DetailsSubmitted,
		ChargesEnabled:   account.ChargesEnabled,
		PayoutsEnabled:   account.PayoutsEnabled,
		Capabilities:     capabilities,
	}, nil
}

// CreateCheckoutSession creates a provider-hosted session. A non-empty
// ConnectedAccountID puts the session in that account's context with the
// application fee deducted at settlement.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, p entities.CheckoutSessionParams) (entities.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := fmt.Sprintf("cs_test_%d", time.Now().UTC().UnixNano())
		log.Printf("[payment][gateway] mock session created session_id=%s account_id=%s", id, p.ConnectedAccountID)
		return entities.CheckoutSession{
			ID:            id,
			URL:           fmt.Sprintf("https://checkout.stripe.com/c/pay/mock/%s", id),
			PaymentStatus: "unpaid",
			AmountTotal:   p.AmountCents,
			Currency:      p.Currency,
			Metadata:      p.Metadata,
		}, nil
	}
	if g == nil || g.sc == nil {
		return entities.CheckoutSession{}, ErrStripeGatewayNotConfigured
	}

	params := &stripe.CheckoutSessionParams{
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(p.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(p.ProductName),
						Description: stripe.String(p.ProductDescription),
					},
					UnitAmount: stripe.Int64(p.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
	}
	params.Context = ctx
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}
	if p.ConnectedAccountID != "" {
		params.PaymentIntentData = &stripe.CheckoutSessionPaymentIntentDataParams{
			ApplicationFeeAmount: stripe.Int64(p.ApplicationFeeAmount),
		}
		params.SetStripeAccount(p.ConnectedAccountID)
	}

	session, err := g.sc.CheckoutSessions.New(params)
	if err != nil {
		log.Printf("[payment][gateway] session create failed account_id=%s err=%v", p.ConnectedAccountID, err)
		return entities.CheckoutSession{}, err
	}
	log.Printf("[payment][gateway] session created session_id=%s account_id=%s", session.ID, p.ConnectedAccountID)
	return fromStripeSession(session), nil
}

// GetCheckoutSession re-fetches a session, in connected-account context when
// connectedAccountID is non-empty.
func (g *StripeGateway) GetCheckoutSession(ctx context.Context, sessionID, connectedAccountID string) (entities.CheckoutSession, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock session retrieve session_id=%s account_id=%s", sessionID, connectedAccountID)
		return entities.CheckoutSession{
			ID:              sessionID,
			PaymentStatus:   entities.PaymentStatusPaid,
			PaymentIntentID: fmt.Sprintf("pi_mock_%d", time.Now().UTC().UnixNano()),
			Currency:        "usd",
		}, nil
	}
	if g == nil || g.sc == nil {
		return entities.CheckoutSession{}, ErrStripeGatewayNotConfigured
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	if connectedAccountID != "" {
		params.SetStripeAccount(connectedAccountID)
	}

	session, err := g.sc.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		log.Printf("[payment][gateway] session retrieve failed session_id=%s err=%v", sessionID, err)
		return entities.CheckoutSession{}, err
	}
	return fromStripeSession(session), nil
}

func fromStripeSession(s *stripe.CheckoutSession) entities.CheckoutSession {
	out := entities.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		Metadata:      s.Metadata,
	}
	if s.PaymentIntent != nil {
		out.PaymentIntentID = s.PaymentIntent.ID
	}
	return out
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "STRIPE_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomToken(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = tokenAlphabet[rand.Intn(len(tokenAlphabet))]
	}
	return string(b)
}
