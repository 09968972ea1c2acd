package request

import (
	"strings"

	"unimarket/internal/usecase"
)

// ProductInfo carries the item details shown on the provider-hosted page.
type ProductInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PostID      string `json:"post_id"`
}

// CreateCheckoutSessionRequest is the payload for checkout session creation.
// Amount and ApplicationFee are minor units; ApplicationFee zero means the
// default platform percentage applies.
type CreateCheckoutSessionRequest struct {
	AccountID      string      `json:"account_id"`
	Amount         int64       `json:"amount"`
	ApplicationFee int64       `json:"application_fee"`
	ProductInfo    ProductInfo `json:"product_info"`
}

func (r CreateCheckoutSessionRequest) ToInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		AccountID:          strings.TrimSpace(r.AccountID),
		Amount:             r.Amount,
		ApplicationFee:     r.ApplicationFee,
		ProductName:        strings.TrimSpace(r.ProductInfo.Name),
		ProductDescription: strings.TrimSpace(r.ProductInfo.Description),
		PostID:             strings.TrimSpace(r.ProductInfo.PostID),
	}
}
