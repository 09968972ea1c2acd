package interfaces

import (
	"context"

	"unimarket/internal/domain/entities"
)

// IProfileRepository abstracts PostgreSQL persistence for UserProfile.

type IProfileRepository interface {
	Upsert(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error)
	GetByUserID(ctx context.Context, userID string) (entities.UserProfile, error)
}
