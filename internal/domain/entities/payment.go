package entities

// TestAccountPrefix marks synthetic connected-account identifiers assigned to
// listings created without a real seller onboarding. Sessions for these
// accounts are created on the platform account, never in connected-account
// context.
const TestAccountPrefix = "acct_test_"

// GatewayAccount is the provider-side view of a connected account.
//
// Capabilities carries the raw provider representation: depending on the API
// surface a capability arrives as a status string or as a boolean, so
// normalization happens in the use case, not here.
type GatewayAccount struct {
	ID               string
	DetailsSubmitted bool
	ChargesEnabled   bool
	PayoutsEnabled   bool
	Capabilities     map[string]interface{}
}

// CheckoutSessionParams describes a provider-hosted checkout session to create.
//
// ConnectedAccountID empty means the session is created on the platform
// account (test-account branch); otherwise it is created in the connected
// account's context with ApplicationFeeAmount deducted at settlement.
type CheckoutSessionParams struct {
	ConnectedAccountID   string
	AmountCents          int64
	Currency             string
	ProductName          string
	ProductDescription   string
	ApplicationFeeAmount int64
	SuccessURL           string
	CancelURL            string
	Metadata             map[string]string
}

// CheckoutSession is the provider's session as returned to callers.
type CheckoutSession struct {
	ID              string            `json:"id"`
	URL             string            `json:"url,omitempty"`
	PaymentStatus   string            `json:"payment_status"`
	PaymentIntentID string            `json:"payment_intent_id,omitempty"`
	AmountTotal     int64             `json:"amount_total"`
	Currency        string            `json:"currency"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// PaymentStatusPaid is the provider's terminal payment_status for a settled
// checkout session.
const PaymentStatusPaid = "paid"
