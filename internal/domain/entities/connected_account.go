package entities

import "time"

// AccountStatus is the three-valued onboarding state derived from the payment
// provider's details_submitted and charges_enabled booleans.

type AccountStatus string

const (
	AccountStatusPending      AccountStatus = "pending"
	AccountStatusActive       AccountStatus = "active"
	AccountStatusRestricted   AccountStatus = "restricted"
	AccountStatusNotConnected AccountStatus = "not_connected"
)

// ConnectedAccount is the local record of a Stripe Connect sub-account created
// for a marketplace seller.
//
// Storage model (PostgreSQL, table connected_accounts):
//   - PK: id (uuid)
//   - unique: stripe_account_id
//   - index: user_id
//
// One row is created per onboarding attempt and upserted on every status
// refresh. Nothing enforces "at most one active account per user"; status
// lookups pick the newest row for the user.
type ConnectedAccount struct {
	ID               string    `json:"id" db:"id"`
	UserID           string    `json:"user_id" db:"user_id"`
	StripeAccountID  string    `json:"stripe_account_id" db:"stripe_account_id"`
	AccountType      string    `json:"account_type" db:"account_type"`
	ChargesEnabled   bool      `json:"charges_enabled" db:"charges_enabled"`
	PayoutsEnabled   bool      `json:"payouts_enabled" db:"payouts_enabled"`
	DetailsSubmitted bool      `json:"details_submitted" db:"details_submitted"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// AccountCapabilities reports per-capability states normalized to
// "active"/"inactive" (or the provider's own string when it sends one).
type AccountCapabilities struct {
	CardPayments string `json:"card_payments"`
	Transfers    string `json:"transfers"`
}

// ConnectStatus is the reconciled view returned to the UI.
type ConnectStatus struct {
	Connected    bool                `json:"connected"`
	Status       AccountStatus       `json:"status"`
	AccountID    string              `json:"account_id"`
	Capabilities AccountCapabilities `json:"capabilities"`
}

// OnboardingResult carries the redirect URL for a freshly created sub-account.
type OnboardingResult struct {
	URL       string `json:"url"`
	AccountID string `json:"account_id"`
}
