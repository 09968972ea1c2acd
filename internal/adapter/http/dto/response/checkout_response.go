package response

import "unimarket/internal/domain/entities"

// CheckoutSessionCreatedResponse returns the redirect target for a fresh
// session.
type CheckoutSessionCreatedResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

func FromCheckoutSessionCreated(s entities.CheckoutSession) CheckoutSessionCreatedResponse {
	return CheckoutSessionCreatedResponse{SessionID: s.ID, URL: s.URL}
}

// CheckoutSessionDetailResponse wraps the provider session for the
// purchase-success page.
type CheckoutSessionDetailResponse struct {
	Session entities.CheckoutSession `json:"session"`
}

func FromCheckoutSessionDetail(s entities.CheckoutSession) CheckoutSessionDetailResponse {
	return CheckoutSessionDetailResponse{Session: s}
}
