package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hiremind/backend/pkg/locale"
)

// Profile is the canonical structured work-history document. Stored documents
// and model output may arrive under English or Spanish key spellings; both are
// folded into this schema at the read boundary (see normalize.go) and always
// serialized back with these canonical keys.
type Profile struct {
	Name       string       `json:"name"`
	Contact    Contact      `json:"contact"`
	Summary    string       `json:"summary"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Skills     Skills       `json:"skills"`
}

type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Experience holds one position. Highlights is an explicit ordered list; the
// newline/asterisk split of model-produced description strings happens once,
// at the gateway boundary, never at render time.
type Experience struct {
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Location   string   `json:"location,omitempty"`
	Dates      string   `json:"dates"`
	Highlights []string `json:"highlights"`
}

type Education struct {
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Dates       string `json:"dates"`
	Thesis      string `json:"thesis,omitempty"`
}

type Skills struct {
	Technical      []string          `json:"technical"`
	Certifications []string          `json:"certifications"`
	Achievements   []string          `json:"achievements"`
	Languages      map[string]string `json:"languages"`
}

// Record is what the store keeps: one document per (user, locale), replaced
// wholesale on every update.
type Record struct {
	UserID    uuid.UUID     `json:"userId"`
	Locale    locale.Locale `json:"locale"`
	Profile   Profile       `json:"profile"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

var ErrNotFound = errors.New("profile not found")

// Repository is the persistence port for profile documents.
type Repository interface {
	Upsert(ctx context.Context, rec Record) error
	Get(ctx context.Context, userID uuid.UUID, loc locale.Locale) (Record, error)
}
