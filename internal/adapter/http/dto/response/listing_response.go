package response

import (
	"time"

	"unimarket/internal/domain/entities"
)

type ListingResponse struct {
	ID                    string     `json:"id"`
	Title                 string     `json:"title"`
	Description           string     `json:"description"`
	Price                 float64    `json:"price"`
	Category              string     `json:"category"`
	SellerEmail           string     `json:"seller_email"`
	SellerStripeAccountID string     `json:"seller_stripe_account_id"`
	ImageURL              string     `json:"image_url"`
	Location              string     `json:"location"`
	Status                string     `json:"status"`
	SoldAt                *time.Time `json:"sold_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func FromListing(l entities.Listing) ListingResponse {
	return ListingResponse{
		ID:                    l.ID,
		Title:                 l.Title,
		Description:           l.Description,
		Price:                 l.Price,
		Category:              l.Category,
		SellerEmail:           l.SellerEmail,
		SellerStripeAccountID: l.SellerStripeAccountID,
		ImageURL:              l.ImageURL,
		Location:              l.Location,
		Status:                string(l.Status),
		SoldAt:                l.SoldAt,
		CreatedAt:             l.CreatedAt,
		UpdatedAt:             l.UpdatedAt,
	}
}

func FromListings(listings []entities.Listing) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, FromListing(l))
	}
	return out
}
