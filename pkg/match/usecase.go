package match

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hiremind/backend/pkg/llm"
	"github.com/hiremind/backend/pkg/locale"
	"github.com/hiremind/backend/pkg/profile"
)

// CompatibilityThreshold is the score at which the verdict flips to
// compatible. The prompt instructs the model to apply it, but the gate is
// re-applied here so the branch never depends on the model honoring its own
// arithmetic.
const CompatibilityThreshold = 70.0

const (
	defaultHistoryLimit = 5
	maxHistoryLimit     = 50
)

var (
	// ErrNoOfferInput: neither offer text nor an image was supplied. Raised
	// before any gateway call.
	ErrNoOfferInput = errors.New("paste the offer text or upload an image")
	// ErrNoProfile: the user has no profile under this locale yet.
	ErrNoProfile = errors.New("no profile loaded for this language")
)

// Input is the user-supplied side of a compatibility check.
type Input struct {
	OfferText string
	Image     []byte
	ImageMIME string
}

// UseCase runs compatibility checks and serves their history.
type UseCase interface {
	// Verify resolves the offer (typed text, or OCR when an image is
	// attached), scores it against the stored profile and appends a history
	// entry. Any gateway failure aborts without persisting anything.
	Verify(ctx context.Context, userID uuid.UUID, loc locale.Locale, in Input) (Entry, error)
	// Replay returns a stored entry verbatim; no gateway call, no new entry.
	Replay(ctx context.Context, userID, id uuid.UUID) (Entry, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]Entry, error)
}

type service struct {
	repo      Repository
	profiles  profile.Repository
	gw        llm.Gateway
	modelName string
}

func NewService(repo Repository, profiles profile.Repository, gw llm.Gateway, modelName string) UseCase {
	return &service{
		repo:      repo,
		profiles:  profiles,
		gw:        gw,
		modelName: modelName,
	}
}

func (s *service) Verify(ctx context.Context, userID uuid.UUID, loc locale.Locale, in Input) (Entry, error) {
	offerText, err := s.resolveOffer(ctx, loc, in)
	if err != nil {
		return Entry{}, err
	}

	// Snapshot the profile once; a concurrent save does not affect a check
	// already in flight.
	rec, err := s.profiles.Get(ctx, userID, loc)
	if errors.Is(err, profile.ErrNotFound) {
		return Entry{}, ErrNoProfile
	}
	if err != nil {
		return Entry{}, err
	}

	var doc map[string]any
	if err := s.gw.GenerateJSON(ctx, CompatibilityPrompt(rec.Profile, offerText, loc), &doc); err != nil {
		return Entry{}, err
	}
	out := normalizeOutcome(doc)

	// The decision is recomputed from the reported percentage; the model's
	// own boolean is overridden when the two disagree.
	out.Analysis.Compatible = out.Analysis.Percentage >= CompatibilityThreshold

	e := Entry{
		ID:              uuid.New(),
		UserID:          userID,
		Locale:          loc,
		OfferText:       offerText,
		Model:           s.modelName,
		Analysis:        out.Analysis,
		CV:              out.CV,
		Recommendations: out.Recommendations,
		CreatedAt:       time.Now().UTC(),
	}
	return s.repo.Append(ctx, e)
}

func (s *service) Replay(ctx context.Context, userID, id uuid.UUID) (Entry, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *service) History(ctx context.Context, userID uuid.UUID, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return s.repo.ListRecent(ctx, userID, limit)
}

func (s *service) resolveOffer(ctx context.Context, loc locale.Locale, in Input) (string, error) {
	if len(in.Image) > 0 {
		text, err := s.gw.ExtractText(ctx, in.Image, in.ImageMIME, loc)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(text) == "" {
			return "", ErrNoOfferInput
		}
		return strings.TrimSpace(text), nil
	}
	if t := strings.TrimSpace(in.OfferText); t != "" {
		return t, nil
	}
	return "", ErrNoOfferInput
}
