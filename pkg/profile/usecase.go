package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hiremind/backend/pkg/llm"
	"github.com/hiremind/backend/pkg/locale"
	"github.com/hiremind/backend/pkg/resume"
)

var (
	ErrEmptyResume = errors.New("empty resume content")
	ErrNoProfile   = errors.New("no profile loaded for this language")
)

// ImportResult is returned after a résumé upload: the stored profile plus a
// model-written one-paragraph summary.
type ImportResult struct {
	Profile Profile `json:"profile"`
	Summary string  `json:"summary"`
}

// JobRecommendation is one suggested role for the current profile.
type JobRecommendation struct {
	Role    string   `json:"role"`
	Portals []string `json:"portals"`
}

// UseCase covers the profile lifecycle: import from a résumé file, reads,
// wholesale replacement (raw save and model-merged updates), live watching,
// and role recommendations.
type UseCase interface {
	ImportResume(ctx context.Context, userID uuid.UUID, loc locale.Locale, filename string, data []byte) (ImportResult, error)
	Get(ctx context.Context, userID uuid.UUID, loc locale.Locale) (*Profile, error)
	Save(ctx context.Context, userID uuid.UUID, loc locale.Locale, rawDoc []byte) (Profile, error)
	MergeUpdate(ctx context.Context, userID uuid.UUID, loc locale.Locale, updateText string) (Profile, error)
	JobRecommendations(ctx context.Context, userID uuid.UUID, loc locale.Locale) ([]JobRecommendation, error)
	// Subscribe returns the current document (nil for a new user) and a live
	// subscription pushing every subsequent save under (user, locale).
	Subscribe(ctx context.Context, userID uuid.UUID, loc locale.Locale) (*Profile, *Subscription, error)
}

type service struct {
	repo     Repository
	gw       llm.Gateway
	hub      *Hub
	maxChars int
}

func NewService(repo Repository, gw llm.Gateway, hub *Hub) UseCase {
	return &service{
		repo:     repo,
		gw:       gw,
		hub:      hub,
		maxChars: 12_000,
	}
}

func (s *service) ImportResume(ctx context.Context, userID uuid.UUID, loc locale.Locale, filename string, data []byte) (ImportResult, error) {
	text, err := resume.ParseText(filename, data)
	if err != nil {
		return ImportResult{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ImportResult{}, ErrEmptyResume
	}
	if len(text) > s.maxChars {
		text = text[:s.maxChars]
	}

	var doc map[string]any
	if err := s.gw.GenerateJSON(ctx, StructurePrompt(text, loc), &doc); err != nil {
		return ImportResult{}, err
	}
	p := Normalize(doc)
	if err := Validate(p); err != nil {
		return ImportResult{}, err
	}
	if err := s.store(ctx, userID, loc, p); err != nil {
		return ImportResult{}, err
	}

	summary, err := s.gw.Generate(ctx, SummaryPrompt(p, loc), false)
	if err != nil {
		// The document is already saved; the summary is presentation only.
		return ImportResult{Profile: p}, nil
	}
	return ImportResult{Profile: p, Summary: strings.TrimSpace(summary)}, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID, loc locale.Locale) (*Profile, error) {
	rec, err := s.repo.Get(ctx, userID, loc)
	if errors.Is(err, ErrNotFound) {
		// A missing document is a valid state, not an error (new user, or a
		// locale the user never imported under).
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p := rec.Profile
	return &p, nil
}

func (s *service) Save(ctx context.Context, userID uuid.UUID, loc locale.Locale, rawDoc []byte) (Profile, error) {
	var doc map[string]any
	if err := json.Unmarshal(rawDoc, &doc); err != nil {
		return Profile{}, fmt.Errorf("invalid profile JSON: %w", err)
	}
	p := Normalize(doc)
	if err := Validate(p); err != nil {
		return Profile{}, err
	}
	if err := s.store(ctx, userID, loc, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *service) MergeUpdate(ctx context.Context, userID uuid.UUID, loc locale.Locale, updateText string) (Profile, error) {
	updateText = strings.TrimSpace(updateText)
	if updateText == "" {
		return Profile{}, errors.New("update text is required")
	}
	rec, err := s.repo.Get(ctx, userID, loc)
	if errors.Is(err, ErrNotFound) {
		return Profile{}, ErrNoProfile
	}
	if err != nil {
		return Profile{}, err
	}

	var doc map[string]any
	if err := s.gw.GenerateJSON(ctx, MergePrompt(rec.Profile, updateText, loc), &doc); err != nil {
		return Profile{}, err
	}
	p := Normalize(doc)
	if err := Validate(p); err != nil {
		return Profile{}, err
	}
	if err := s.store(ctx, userID, loc, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *service) JobRecommendations(ctx context.Context, userID uuid.UUID, loc locale.Locale) ([]JobRecommendation, error) {
	rec, err := s.repo.Get(ctx, userID, loc)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := s.gw.GenerateJSON(ctx, JobRecommendationPrompt(rec.Profile, loc), &doc); err != nil {
		return nil, err
	}
	var out []JobRecommendation
	for _, item := range pickSlice(doc, "job_recommendations", "recomendaciones_empleo") {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, JobRecommendation{
			Role:    pickString(m, "role", "rol"),
			Portals: toStrings(pickSlice(m, "portals", "portales")),
		})
	}
	return out, nil
}

func (s *service) Subscribe(ctx context.Context, userID uuid.UUID, loc locale.Locale) (*Profile, *Subscription, error) {
	sub := s.hub.Subscribe(userID, loc)
	current, err := s.Get(ctx, userID, loc)
	if err != nil {
		sub.Close()
		return nil, nil, err
	}
	return current, sub, nil
}

// store replaces the document wholesale and notifies watchers. There is no
// field-level merge at this layer.
func (s *service) store(ctx context.Context, userID uuid.UUID, loc locale.Locale, p Profile) error {
	rec := Record{
		UserID:    userID,
		Locale:    loc,
		Profile:   p,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Upsert(ctx, rec); err != nil {
		return err
	}
	s.hub.Publish(userID, loc, p)
	return nil
}
