package usecase

import (
	"context"
	"errors"
	"testing"

	"unimarket/internal/domain/entities"
	mock_interfaces "unimarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProfileUseCase_UpdateProfile(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		uc := NewProfileUseCase(nil)
		_, err := uc.UpdateProfile(context.Background(), "  ", ProfileInput{FirstName: "Ana"})
		if !errors.Is(err, ErrNotAuthenticated) {
			t.Fatalf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("no names", func(t *testing.T) {
		uc := NewProfileUseCase(nil)
		_, err := uc.UpdateProfile(context.Background(), "user-1", ProfileInput{PhoneNumber: "555"})
		if !errors.Is(err, ErrInvalidProfilePayload) {
			t.Fatalf("expected ErrInvalidProfilePayload, got %v", err)
		}
	})

	t.Run("composes full name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		repo.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.UserProfile{})).DoAndReturn(
			func(_ context.Context, p entities.UserProfile) (entities.UserProfile, error) {
				if p.FullName != "Ana Souza" {
					t.Fatalf("expected composed full name, got %q", p.FullName)
				}
				return p, nil
			},
		)

		profile, err := uc.UpdateProfile(context.Background(), "user-1", ProfileInput{FirstName: " Ana ", LastName: "Souza"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profile.FirstName != "Ana" {
			t.Fatalf("expected trimmed first name, got %q", profile.FirstName)
		}
	})

	t.Run("first name only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.UserProfile) (entities.UserProfile, error) {
				if p.FullName != "Ana" {
					t.Fatalf("expected trimmed full name, got %q", p.FullName)
				}
				return p, nil
			},
		)

		if _, err := uc.UpdateProfile(context.Background(), "user-1", ProfileInput{FirstName: "Ana"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
