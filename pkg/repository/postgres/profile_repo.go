package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hiremind/backend/pkg/locale"
	"github.com/hiremind/backend/pkg/profile"
)

// ProfileRepository stores one structured profile document per (user, locale).
// Writes replace the document wholesale; merge semantics live upstream.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) (*ProfileRepository, error) {
	r := &ProfileRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ProfileRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS profiles (
	user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	locale TEXT NOT NULL,
	doc JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (user_id, locale)
);
`)
	return err
}

func (r *ProfileRepository) Upsert(ctx context.Context, rec profile.Record) error {
	doc, err := json.Marshal(rec.Profile)
	if err != nil {
		return err
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC()
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO profiles (user_id, locale, doc, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, locale) DO UPDATE SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at
`, rec.UserID, rec.Locale.String(), doc, rec.UpdatedAt)
	return err
}

func (r *ProfileRepository) Get(ctx context.Context, userID uuid.UUID, loc locale.Locale) (profile.Record, error) {
	row := r.pool.QueryRow(ctx, `
SELECT doc, updated_at FROM profiles WHERE user_id = $1 AND locale = $2
`, userID, loc.String())
	var docBytes []byte
	var updated time.Time
	if err := row.Scan(&docBytes, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Record{}, profile.ErrNotFound
		}
		return profile.Record{}, err
	}
	rec := profile.Record{UserID: userID, Locale: loc, UpdatedAt: updated.UTC()}
	// Stored documents may predate the canonical schema; fold either key
	// spelling at the read boundary.
	var doc map[string]any
	if err := json.Unmarshal(docBytes, &doc); err != nil {
		return profile.Record{}, err
	}
	rec.Profile = profile.Normalize(doc)
	return rec, nil
}
