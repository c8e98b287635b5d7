package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/seyia90/authstarter/internal/notification/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

const preferenceColumns = `user_id, email, opted_in, opt_out_at, categories,
	last_email_at, created_at, updated_at`

func scanPreference(row rowScanner) (*entity.MarketingPreference, error) {
	var (
		p           entity.MarketingPreference
		optOutAt    pgtype.Timestamptz
		categories  []string
		lastEmailAt pgtype.Timestamptz
	)

	err := row.Scan(
		&p.UserID, &p.Email, &p.OptedIn, &optOutAt, &categories,
		&lastEmailAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.OptOutAt = timePtr(optOutAt)
	p.Categories = categoriesFromStrings(categories)
	p.LastEmailAt = timePtr(lastEmailAt)

	return &p, nil
}

// CreatePreference inserts a preference row; an existing row wins, which
// keeps seeding idempotent under message redelivery.
func (s *DB) CreatePreference(ctx context.Context, pref entity.MarketingPreference) (err error) {
	ctx, span := s.startSpan(ctx, "CreatePreference")
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO marketing_preferences (user_id, email, opted_in, categories, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		ON CONFLICT (user_id) DO NOTHING`

	_, err = s.conn.Exec(ctx, query,
		pref.UserID, pref.Email, pref.OptedIn, categoryStrings(pref.Categories))

	return s.mapError(err)
}

func (s *DB) GetPreferenceByUserID(ctx context.Context, userID int64) (_ *entity.MarketingPreference, err error) {
	ctx, span := s.startSpan(ctx, "GetPreferenceByUserID")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + preferenceColumns + ` FROM marketing_preferences WHERE user_id = $1`

	pref, err := scanPreference(s.conn.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, s.mapError(err)
	}

	return pref, nil
}

func (s *DB) ListOptedInPreferences(ctx context.Context, category entity.Category) (_ []entity.MarketingPreference, err error) {
	ctx, span := s.startSpan(ctx, "ListOptedInPreferences")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + preferenceColumns + `
		FROM marketing_preferences
		WHERE opted_in = TRUE AND $1 = ANY(categories)
		ORDER BY user_id`

	rows, err := s.conn.Query(ctx, query, category.String())
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	prefs := []entity.MarketingPreference{}
	for rows.Next() {
		pref, scanErr := scanPreference(rows)
		if scanErr != nil {
			err = scanErr
			return nil, s.mapError(err)
		}
		prefs = append(prefs, *pref)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return prefs, nil
}

func (s *DB) UpdatePreference(ctx context.Context, in entity.UpdatePreference) (err error) {
	ctx, span := s.startSpan(ctx, "UpdatePreference")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE marketing_preferences
		SET opted_in = $2,
			opt_out_at = $3,
			categories = $4,
			updated_at = now()
		WHERE user_id = $1`

	tag, err := s.conn.Exec(ctx, query,
		in.UserID, in.OptedIn, in.OptOutAt, categoryStrings(in.Categories))
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) TouchPreferenceEmailAt(ctx context.Context, userID int64, at time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "TouchPreferenceEmailAt")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE marketing_preferences
		SET last_email_at = $2,
			updated_at = now()
		WHERE user_id = $1`

	_, err = s.conn.Exec(ctx, query, userID, at)

	return s.mapError(err)
}
