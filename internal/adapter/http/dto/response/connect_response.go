package response

import "unimarket/internal/domain/entities"

// ConnectAccountCreatedResponse returns the onboarding redirect.
type ConnectAccountCreatedResponse struct {
	Success   bool   `json:"success"`
	URL       string `json:"url"`
	AccountID string `json:"account_id"`
}

func FromOnboardingResult(r entities.OnboardingResult) ConnectAccountCreatedResponse {
	return ConnectAccountCreatedResponse{Success: true, URL: r.URL, AccountID: r.AccountID}
}

// ConnectStatusResponse reports the reconciled account status.
type ConnectStatusResponse struct {
	Connected    bool                         `json:"connected"`
	Status       string                       `json:"status"`
	AccountID    string                       `json:"account_id"`
	Capabilities entities.AccountCapabilities `json:"capabilities"`
}

func FromConnectStatus(s entities.ConnectStatus) ConnectStatusResponse {
	return ConnectStatusResponse{
		Connected:    s.Connected,
		Status:       string(s.Status),
		AccountID:    s.AccountID,
		Capabilities: s.Capabilities,
	}
}

// AccountLinkResponse returns a refreshed onboarding link.
type AccountLinkResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}
