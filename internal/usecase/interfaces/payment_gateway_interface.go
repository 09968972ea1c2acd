package interfaces

import (
	"context"

	"unimarket/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Stripe Connect).
//
// The marketplace uses it to onboard seller sub-accounts, reconcile their live
// status and run provider-hosted checkout sessions. Session retrieval takes an
// optional connected-account id: empty means platform-account context.
type IPaymentGateway interface {
	CreateExpressAccount(ctx context.Context) (string, error)
	CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error)
	GetAccount(ctx context.Context, accountID string) (entities.GatewayAccount, error)
	CreateCheckoutSession(ctx context.Context, params entities.CheckoutSessionParams) (entities.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID, connectedAccountID string) (entities.CheckoutSession, error)
}
