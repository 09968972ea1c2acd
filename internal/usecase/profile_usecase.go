package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"unimarket/internal/domain/entities"
	"unimarket/internal/usecase/interfaces"
)

var ErrInvalidProfilePayload = errors.New("invalid profile payload")

// ProfileInput carries the editable profile fields.
type ProfileInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Gender      string
	Birthday    string
}

// IProfileUseCase exposes user profile updates.

type IProfileUseCase interface {
	UpdateProfile(ctx context.Context, userID string, in ProfileInput) (entities.UserProfile, error)
}

type ProfileUseCase struct {
	repo interfaces.IProfileRepository
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(repo interfaces.IProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// UpdateProfile upserts the user's profile row; FullName is composed from the
// first and last names.
func (u *ProfileUseCase) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (entities.UserProfile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.UserProfile{}, ErrNotAuthenticated
	}
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if in.FirstName == "" && in.LastName == "" {
		return entities.UserProfile{}, ErrInvalidProfilePayload
	}

	profile := entities.UserProfile{
		UserID:      userID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		FullName:    strings.TrimSpace(in.FirstName + " " + in.LastName),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Gender:      strings.TrimSpace(in.Gender),
		Birthday:    strings.TrimSpace(in.Birthday),
	}

	updated, err := u.repo.Upsert(ctx, profile)
	if err != nil {
		log.Printf("[profile][usecase] upsert failed user_id=%s err=%v", userID, err)
		return entities.UserProfile{}, err
	}
	log.Printf("[profile][usecase] profile updated user_id=%s", userID)
	return updated, nil
}
