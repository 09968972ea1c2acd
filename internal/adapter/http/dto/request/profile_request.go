package request

import "unimarket/internal/usecase"

// UpdateProfileRequest is the payload for profile edits.
type UpdateProfileRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Gender      string `json:"gender"`
	Birthday    string `json:"birthday"`
}

func (r UpdateProfileRequest) ToInput() usecase.ProfileInput {
	return usecase.ProfileInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		Gender:      r.Gender,
		Birthday:    r.Birthday,
	}
}
