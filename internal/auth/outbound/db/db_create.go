package db

import (
	"context"

	"github.com/seyia90/authstarter/internal/auth/entity"
)

func (s *DB) CreateUser(ctx context.Context, user entity.User) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO users (id, email, phone, first_name, last_name, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`

	_, err = s.conn.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Phone,
		user.FirstName,
		user.LastName,
		user.Password,
		string(user.Role),
	)

	return s.mapError(err)
}
