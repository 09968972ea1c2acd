package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"unimarket/internal/domain/entities"
	"unimarket/internal/usecase/interfaces"
)

// ProfilePostgresRepository persists UserProfile entities in PostgreSQL.

type ProfilePostgresRepository struct {
	db *sqlx.DB
}

var _ interfaces.IProfileRepository = (*ProfilePostgresRepository)(nil)

func NewProfilePostgresRepository(db *sqlx.DB) *ProfilePostgresRepository {
	return &ProfilePostgresRepository{db: db}
}

func (r *ProfilePostgresRepository) Upsert(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error) {
	p.UpdatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_profiles (user_id, first_name, last_name, full_name,
			phone_number, gender, birthday, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			full_name = EXCLUDED.full_name,
			phone_number = EXCLUDED.phone_number,
			gender = EXCLUDED.gender,
			birthday = EXCLUDED.birthday,
			updated_at = EXCLUDED.updated_at`,
		p.UserID, p.FirstName, p.LastName, p.FullName,
		p.PhoneNumber, p.Gender, p.Birthday, p.UpdatedAt)
	if err != nil {
		return entities.UserProfile{}, err
	}
	return p, nil
}

func (r *ProfilePostgresRepository) GetByUserID(ctx context.Context, userID string) (entities.UserProfile, error) {
	var p entities.UserProfile
	err := r.db.GetContext(ctx, &p,
		`SELECT user_id, first_name, last_name, full_name, phone_number, gender,
			birthday, updated_at
		FROM user_profiles WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.UserProfile{}, nil
		}
		return entities.UserProfile{}, err
	}
	return p, nil
}
