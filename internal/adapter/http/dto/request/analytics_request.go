package request

import "unimarket/internal/usecase"

// TestTransactionData holds the optional fields of a synthetic transaction.
type TestTransactionData struct {
	AccountID   string            `json:"account_id"`
	Amount      int64             `json:"amount"`
	Fee         int64             `json:"fee"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	Metadata    map[string]string `json:"metadata"`
}

// AnalyticsActionRequest is the payload for analytics POST actions.
type AnalyticsActionRequest struct {
	Action string              `json:"action" binding:"required"`
	Data   TestTransactionData `json:"data"`
}

func (r AnalyticsActionRequest) ToTestTransactionInput() usecase.TestTransactionInput {
	return usecase.TestTransactionInput{
		AccountID:   r.Data.AccountID,
		Amount:      r.Data.Amount,
		Fee:         r.Data.Fee,
		Description: r.Data.Description,
		Status:      r.Data.Status,
		Metadata:    r.Data.Metadata,
	}
}

// LinkTransactionRequest attaches a listing to an existing charge row.
type LinkTransactionRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	ListingID     string `json:"listing_id" binding:"required"`
}
