package response

import (
	"time"

	"unimarket/internal/domain/entities"
)

type MessageResponse struct {
	ID          string    `json:"id"`
	ListingID   string    `json:"listing_id"`
	BuyerEmail  string    `json:"buyer_email"`
	SellerEmail string    `json:"seller_email"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromMessage(m entities.Message) MessageResponse {
	return MessageResponse{
		ID:          m.ID,
		ListingID:   m.ListingID,
		BuyerEmail:  m.BuyerEmail,
		SellerEmail: m.SellerEmail,
		Message:     m.Message,
		CreatedAt:   m.CreatedAt,
	}
}

func FromMessages(messages []entities.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, FromMessage(m))
	}
	return out
}
