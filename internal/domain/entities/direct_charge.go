package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ChargeStatus represents the local lifecycle of a checkout transaction.

type ChargeStatus string

const (
	ChargeStatusPending   ChargeStatus = "pending"
	ChargeStatusSucceeded ChargeStatus = "succeeded"
	ChargeStatusFailed    ChargeStatus = "failed"
)

// Metadata is a string map persisted as jsonb.
type Metadata map[string]string

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *Metadata) Scan(src interface{}) error {
	if src == nil {
		*m = Metadata{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("metadata: unsupported scan type %T", src)
	}
	return json.Unmarshal(b, m)
}

// DirectCharge is the local record of a charge created against a connected
// account's context.
//
// Storage model (PostgreSQL, table direct_charges):
//   - PK: id (uuid)
//   - unique: checkout_session_id
//   - index: connected_account_id
//
// A row is inserted as "pending" when the checkout session is created and
// flipped to "succeeded" when the provider confirms payment. Amounts are in
// minor units (cents).
type DirectCharge struct {
	ID                   string       `json:"id" db:"id"`
	ConnectedAccountID   string       `json:"connected_account_id" db:"connected_account_id"`
	Amount               int64        `json:"amount" db:"amount"`
	ApplicationFeeAmount int64        `json:"application_fee_amount" db:"application_fee_amount"`
	Currency             string       `json:"currency" db:"currency"`
	Description          string       `json:"description" db:"description"`
	Status               ChargeStatus `json:"status" db:"status"`
	PaymentIntentID      string       `json:"payment_intent_id" db:"payment_intent_id"`
	CheckoutSessionID    string       `json:"checkout_session_id" db:"checkout_session_id"`
	ListingID            *string      `json:"listing_id,omitempty" db:"listing_id"`
	Metadata             Metadata     `json:"metadata" db:"metadata"`
	CreatedAt            time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at" db:"updated_at"`
}
