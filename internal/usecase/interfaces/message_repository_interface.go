package interfaces

import (
	"context"

	"unimarket/internal/domain/entities"
)

// IMessageRepository abstracts PostgreSQL persistence for Message.
//
// Messages are append-only: create and query, no update path.

type IMessageRepository interface {
	Create(ctx context.Context, m entities.Message) (entities.Message, error)
	ListByParticipant(ctx context.Context, email string) ([]entities.Message, error)
}
