package entities

import "time"

// ListingStatus represents the sale lifecycle of a listing.
//
// Status transitions:
//   - available -> sold is performed by the checkout completion flow once the
//     payment provider reports the session as paid.
//   - pending is reserved for listings held mid-checkout by the UI.

type ListingStatus string

const (
	ListingStatusAvailable ListingStatus = "available"
	ListingStatusPending   ListingStatus = "pending"
	ListingStatusSold      ListingStatus = "sold"
)

// Listing is a marketplace listing row.
//
// Storage model (PostgreSQL, table listings):
//   - PK: id (uuid)
//   - indexes: category, seller_email, seller_stripe_account_id
//
// Monetary representation:
//   - Price is in whole currency units (dollars); checkout amounts are minor
//     units and converted by the caller.
type Listing struct {
	ID                    string        `json:"id" db:"id"`
	Title                 string        `json:"title" db:"title"`
	Description           string        `json:"description" db:"description"`
	Price                 float64       `json:"price" db:"price"`
	Category              string        `json:"category" db:"category"`
	SellerEmail           string        `json:"seller_email" db:"seller_email"`
	SellerStripeAccountID string        `json:"seller_stripe_account_id" db:"seller_stripe_account_id"`
	ImageURL              string        `json:"image_url" db:"image_url"`
	Location              string        `json:"location" db:"location"`
	Status                ListingStatus `json:"status" db:"status"`
	SoldAt                *time.Time    `json:"sold_at,omitempty" db:"sold_at"`
	CreatedAt             time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at" db:"updated_at"`
}

// ListingFilter narrows listing queries; zero values mean "no filter".
type ListingFilter struct {
	Category    string
	Search      string
	SellerEmail string
}
