package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"unimarket/internal/domain/entities"
	"unimarket/internal/usecase/interfaces"
)

// MessagePostgresRepository persists Message entities in PostgreSQL.

type MessagePostgresRepository struct {
	db *sqlx.DB
}

var _ interfaces.IMessageRepository = (*MessagePostgresRepository)(nil)

func NewMessagePostgresRepository(db *sqlx.DB) *MessagePostgresRepository {
	return &MessagePostgresRepository{db: db}
}

func (r *MessagePostgresRepository) Create(ctx context.Context, m entities.Message) (entities.Message, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (id, listing_id, buyer_email, seller_email, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.ListingID, m.BuyerEmail, m.SellerEmail, m.Message, m.CreatedAt)
	if err != nil {
		return entities.Message{}, err
	}
	return m, nil
}

// ListByParticipant returns the conversation history where the user is buyer
// or seller, oldest first.
func (r *MessagePostgresRepository) ListByParticipant(ctx context.Context, email string) ([]entities.Message, error) {
	messages := []entities.Message{}
	err := r.db.SelectContext(ctx, &messages,
		`SELECT id, listing_id, buyer_email, seller_email, message, created_at
		FROM messages
		WHERE buyer_email = $1 OR seller_email = $1
		ORDER BY created_at ASC`, email)
	if err != nil {
		return nil, err
	}
	return messages, nil
}
