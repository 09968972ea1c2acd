package response

import "unimarket/internal/domain/entities"

type ProfileResponse struct {
	Success bool                 `json:"success"`
	Profile entities.UserProfile `json:"profile"`
}

func FromProfile(p entities.UserProfile) ProfileResponse {
	return ProfileResponse{Success: true, Profile: p}
}

// UploadResponse returns the public URL of a stored object.
type UploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Key     string `json:"key"`
}
