package match

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hiremind/backend/pkg/locale"
	"github.com/hiremind/backend/pkg/profile"
)

// Analysis is the model's verdict on a profile/offer pair. Never persisted on
// its own; always embedded in an Entry.
type Analysis struct {
	OfferTitle           string   `json:"offerTitle"`
	FitLevel             string   `json:"fitLevel"`
	ExperienceHighlight  string   `json:"experienceHighlight"`
	KeySkills            string   `json:"keySkills"`
	RelevantAchievements string   `json:"relevantAchievements"`
	Percentage           float64  `json:"percentage"`
	Compatible           bool     `json:"compatible"`
	MissingSkills        []string `json:"missingSkills"`
	MissingExperience    string   `json:"missingExperience"`
	InterviewTips        string   `json:"interviewTips"`
	Strengths            []string `json:"strengths"`
}

// Recommendations is the improvement plan returned when the verdict lands
// below the compatibility threshold.
type Recommendations struct {
	KeySkills          []string           `json:"keySkills"`
	Certifications     []string           `json:"certifications"`
	Courses            []Course           `json:"courses"`
	EstimatedTime      string             `json:"estimatedTime"`
	FreeResources      []Resource         `json:"freeResources"`
	Projects           []string           `json:"projects"`
	SuggestedVacancies []SuggestedVacancy `json:"suggestedVacancies"`
}

type Course struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
	URL      string `json:"url"`
}

type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

type SuggestedVacancy struct {
	Role        string   `json:"role"`
	Description string   `json:"description"`
	Portals     []string `json:"portals"`
}

// Entry records one compatibility check. Immutable once created; the history
// is append-only and read back most-recent-first.
type Entry struct {
	ID              uuid.UUID        `json:"id"`
	UserID          uuid.UUID        `json:"userId,omitempty"`
	Locale          locale.Locale    `json:"locale"`
	OfferText       string           `json:"offerText"`
	Model           string           `json:"model"`
	Analysis        Analysis         `json:"analysis"`
	CV              profile.Profile  `json:"cv"`
	Recommendations *Recommendations `json:"recommendations,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

var ErrNotFound = errors.New("analysis not found")

// Repository is the persistence port for the search history.
type Repository interface {
	Append(ctx context.Context, e Entry) (Entry, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]Entry, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (Entry, error)
}
