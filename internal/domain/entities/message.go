package entities

import "time"

// Message is a buyer/seller conversation entry attached to a listing.
//
// Storage model (PostgreSQL, table messages):
//   - PK: id (uuid)
//   - indexes: buyer_email, seller_email
//
// Messages are append-only; there is no update path.
type Message struct {
	ID          string    `json:"id" db:"id"`
	ListingID   string    `json:"listing_id" db:"listing_id"`
	BuyerEmail  string    `json:"buyer_email" db:"buyer_email"`
	SellerEmail string    `json:"seller_email" db:"seller_email"`
	Message     string    `json:"message" db:"message"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
