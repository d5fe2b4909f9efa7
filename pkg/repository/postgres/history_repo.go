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
	"github.com/hiremind/backend/pkg/match"
	"github.com/hiremind/backend/pkg/profile"
)

// HistoryRepository is the append-only log of compatibility checks.
// Entries are never updated; replay reads them back verbatim.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

func NewHistoryRepository(pool *pgxpool.Pool) (*HistoryRepository, error) {
	r := &HistoryRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *HistoryRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS search_history (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	locale TEXT NOT NULL,
	offer_title TEXT NOT NULL,
	offer_text TEXT NOT NULL,
	score REAL NOT NULL,
	compatible BOOLEAN NOT NULL,
	model TEXT NOT NULL,
	doc JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS search_history_user_created_idx
	ON search_history (user_id, created_at DESC);
`)
	return err
}

// historyDoc is the JSONB payload of one entry. The scalar columns
// (offer_title, score, compatible) are denormalized out of Analysis so
// history listings never have to parse the document.
type historyDoc struct {
	Analysis        match.Analysis         `json:"analysis"`
	CV              profile.Profile        `json:"cv"`
	Recommendations *match.Recommendations `json:"recommendations,omitempty"`
}

func (r *HistoryRepository) Append(ctx context.Context, entry match.Entry) (match.Entry, error) {
	doc, err := json.Marshal(historyDoc{
		Analysis:        entry.Analysis,
		CV:              entry.CV,
		Recommendations: entry.Recommendations,
	})
	if err != nil {
		return match.Entry{}, err
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO search_history (id, user_id, locale, offer_title, offer_text, score, compatible, model, doc, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`, entry.ID, entry.UserID, entry.Locale.String(), entry.Analysis.OfferTitle, entry.OfferText,
		entry.Analysis.Percentage, entry.Analysis.Compatible, entry.Model, doc, entry.CreatedAt)
	if err != nil {
		return match.Entry{}, err
	}
	return entry, nil
}

func (r *HistoryRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]match.Entry, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, locale, offer_text, model, doc, created_at
FROM search_history
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2
`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []match.Entry
	for rows.Next() {
		entry, err := scanEntry(rows, userID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *HistoryRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (match.Entry, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, locale, offer_text, model, doc, created_at
FROM search_history
WHERE user_id = $1 AND id = $2
`, userID, id)
	entry, err := scanEntry(row, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return match.Entry{}, match.ErrNotFound
		}
		return match.Entry{}, err
	}
	return entry, nil
}

func scanEntry(row pgx.Row, userID uuid.UUID) (match.Entry, error) {
	var entry match.Entry
	var loc string
	var docBytes []byte
	var createdAt time.Time
	if err := row.Scan(&entry.ID, &loc, &entry.OfferText, &entry.Model, &docBytes, &createdAt); err != nil {
		return match.Entry{}, err
	}
	var doc historyDoc
	if err := json.Unmarshal(docBytes, &doc); err != nil {
		return match.Entry{}, err
	}
	entry.UserID = userID
	entry.Locale = locale.Locale(loc)
	entry.Analysis = doc.Analysis
	entry.CV = doc.CV
	entry.Recommendations = doc.Recommendations
	entry.CreatedAt = createdAt.UTC()
	return entry, nil
}
