package request

import "unimarket/internal/domain/entities"

// SendMessageRequest is the payload for buyer/seller messages.
type SendMessageRequest struct {
	ListingID   string `json:"listing_id" binding:"required"`
	BuyerEmail  string `json:"buyer_email" binding:"required"`
	SellerEmail string `json:"seller_email" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

func (r SendMessageRequest) ToEntity() entities.Message {
	return entities.Message{
		ListingID:   r.ListingID,
		BuyerEmail:  r.BuyerEmail,
		SellerEmail: r.SellerEmail,
		Message:     r.Message,
	}
}
