package db

import (
	"context"
	"strconv"

	"github.com/seyia90/authstarter/internal/auth/entity"
)

func (s *DB) GetUserByID(ctx context.Context, id int64) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted_at IS NULL`

	user, err := scanUser(s.conn.QueryRow(ctx, query, id))
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}

func (s *DB) GetUserByEmail(ctx context.Context, email string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted_at IS NULL`

	user, err := scanUser(s.conn.QueryRow(ctx, query, email))
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}

func (s *DB) GetUserByPhone(ctx context.Context, phone string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByPhone")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + userColumns + ` FROM users WHERE phone = $1 AND deleted_at IS NULL`

	user, err := scanUser(s.conn.QueryRow(ctx, query, phone))
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}

func (s *DB) GetUserByResetToken(ctx context.Context, token string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByResetToken")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + userColumns + ` FROM users WHERE reset_token = $1 AND deleted_at IS NULL`

	user, err := scanUser(s.conn.QueryRow(ctx, query, token))
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}

func (s *DB) GetUserList(ctx context.Context, filter entity.UserListFilter) (_ []entity.User, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetUserList")
	defer func() { s.endSpan(span, err) }()

	where := ` WHERE deleted_at IS NULL`
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where += ` AND (email ILIKE $1 OR first_name ILIKE $1 OR last_name ILIKE $1)`
	}

	if filter.Role != "" {
		args = append(args, string(filter.Role))
		where += ` AND role = $` + itoa(len(args))
	}

	var total int64
	if err = s.conn.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, 0, s.mapError(err)
	}

	args = append(args, filter.Size, (filter.Page-1)*filter.Size)
	query := `SELECT ` + userColumns + ` FROM users` + where +
		` ORDER BY created_at DESC LIMIT $` + itoa(len(args)-1) + ` OFFSET $` + itoa(len(args))

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, s.mapError(err)
	}
	defer rows.Close()

	users := make([]entity.User, 0, filter.Size)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			err = scanErr
			return nil, 0, s.mapError(err)
		}
		users = append(users, *user)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, s.mapError(err)
	}

	return users, total, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
