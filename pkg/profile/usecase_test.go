package profile

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiremind/backend/pkg/locale"
)

type fakeGateway struct {
	jsonReply string
	jsonErr   error
	textReply string
	textErr   error
	jsonCalls int
	textCalls int
}

func (f *fakeGateway) Generate(_ context.Context, _ string, _ bool) (string, error) {
	f.textCalls++
	return f.textReply, f.textErr
}

func (f *fakeGateway) GenerateJSON(_ context.Context, _ string, out any) error {
	f.jsonCalls++
	if f.jsonErr != nil {
		return f.jsonErr
	}
	return json.Unmarshal([]byte(f.jsonReply), out)
}

func (f *fakeGateway) ExtractText(_ context.Context, _ []byte, _ string, _ locale.Locale) (string, error) {
	return "", nil
}

type memRepo struct {
	recs map[string]Record
}

func newMemRepo() *memRepo { return &memRepo{recs: map[string]Record{}} }

func (r *memRepo) key(userID uuid.UUID, loc locale.Locale) string {
	return userID.String() + "/" + loc.String()
}

func (r *memRepo) Upsert(_ context.Context, rec Record) error {
	r.recs[r.key(rec.UserID, rec.Locale)] = rec
	return nil
}

func (r *memRepo) Get(_ context.Context, userID uuid.UUID, loc locale.Locale) (Record, error) {
	rec, ok := r.recs[r.key(userID, loc)]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

const structuredReply = `{
	"nombre": "Ana García",
	"contacto": {"correo": "ana@example.com"},
	"experiencia": [{"titulo": "Dev", "empresa": "Acme", "descripcion": "* built APIs\\n* ran migrations"}],
	"habilidades": {"tecnicas": ["Go"]}
}`

func TestImportResumeStructuresAndStores(t *testing.T) {
	userID := uuid.New()
	repo := newMemRepo()
	gw := &fakeGateway{jsonReply: structuredReply, textReply: "A short summary."}
	svc := NewService(repo, gw, NewHub())

	result, err := svc.ImportResume(context.Background(), userID, locale.ES, "cv.txt", []byte("Ana García\nDev at Acme"))
	require.NoError(t, err)

	assert.Equal(t, "Ana García", result.Profile.Name)
	assert.Equal(t, []string{"built APIs", "ran migrations"}, result.Profile.Experience[0].Highlights)
	assert.Equal(t, "A short summary.", result.Summary)

	rec, err := repo.Get(context.Background(), userID, locale.ES)
	require.NoError(t, err)
	assert.Equal(t, "Ana García", rec.Profile.Name)
}

func TestImportResumeEmptyFile(t *testing.T) {
	svc := NewService(newMemRepo(), &fakeGateway{}, NewHub())

	_, err := svc.ImportResume(context.Background(), uuid.New(), locale.EN, "cv.txt", []byte("   \n  "))
	assert.ErrorIs(t, err, ErrEmptyResume)
}

func TestImportResumeSummaryFailureIsNotFatal(t *testing.T) {
	userID := uuid.New()
	repo := newMemRepo()
	gw := &fakeGateway{jsonReply: structuredReply, textErr: errors.New("relay hiccup")}
	svc := NewService(repo, gw, NewHub())

	result, err := svc.ImportResume(context.Background(), userID, locale.EN, "cv.txt", []byte("Ana García"))
	require.NoError(t, err, "the document is saved; the summary is presentation only")
	assert.Empty(t, result.Summary)

	_, err = repo.Get(context.Background(), userID, locale.EN)
	assert.NoError(t, err)
}

func TestImportResumeRejectsUnnamedDocument(t *testing.T) {
	gw := &fakeGateway{jsonReply: `{"habilidades": {"tecnicas": ["Go"]}}`}
	svc := NewService(newMemRepo(), gw, NewHub())

	_, err := svc.ImportResume(context.Background(), uuid.New(), locale.EN, "cv.txt", []byte("anonymous resume"))
	assert.Error(t, err)
}

func TestGetMissingProfileIsNil(t *testing.T) {
	svc := NewService(newMemRepo(), &fakeGateway{}, NewHub())

	p, err := svc.Get(context.Background(), uuid.New(), locale.EN)
	require.NoError(t, err)
	assert.Nil(t, p, "a missing document is a valid state, not an error")
}

func TestSaveRejectsInvalidJSON(t *testing.T) {
	svc := NewService(newMemRepo(), &fakeGateway{}, NewHub())

	_, err := svc.Save(context.Background(), uuid.New(), locale.EN, []byte("{not json"))
	assert.Error(t, err)
}

func TestSaveNormalizesEitherSpelling(t *testing.T) {
	userID := uuid.New()
	svc := NewService(newMemRepo(), &fakeGateway{}, NewHub())

	p, err := svc.Save(context.Background(), userID, locale.ES, []byte(`{"nombre": "Ana", "habilidades": {"tecnicas": ["Go"]}}`))
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, []string{"Go"}, p.Skills.Technical)
}

func TestMergeUpdateRequiresExistingProfile(t *testing.T) {
	svc := NewService(newMemRepo(), &fakeGateway{jsonReply: structuredReply}, NewHub())

	_, err := svc.MergeUpdate(context.Background(), uuid.New(), locale.EN, "I got promoted")
	assert.ErrorIs(t, err, ErrNoProfile)
}

func TestMergeUpdateReplacesDocument(t *testing.T) {
	userID := uuid.New()
	repo := newMemRepo()
	require.NoError(t, repo.Upsert(context.Background(), Record{
		UserID: userID, Locale: locale.EN, Profile: Profile{Name: "Ana García"},
	}))
	gw := &fakeGateway{jsonReply: `{"name": "Ana García", "summary": "Now a lead."}`}
	svc := NewService(repo, gw, NewHub())

	p, err := svc.MergeUpdate(context.Background(), userID, locale.EN, "I got promoted to lead")
	require.NoError(t, err)
	assert.Equal(t, "Now a lead.", p.Summary)
}

func TestJobRecommendations(t *testing.T) {
	userID := uuid.New()
	repo := newMemRepo()
	require.NoError(t, repo.Upsert(context.Background(), Record{
		UserID: userID, Locale: locale.ES, Profile: Profile{Name: "Ana"},
	}))
	gw := &fakeGateway{jsonReply: `{"recomendaciones_empleo": [{"rol": "Data Engineer", "portales": ["LinkedIn", "InfoJobs"]}]}`}
	svc := NewService(repo, gw, NewHub())

	recs, err := svc.JobRecommendations(context.Background(), userID, locale.ES)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Data Engineer", recs[0].Role)
	assert.Equal(t, []string{"LinkedIn", "InfoJobs"}, recs[0].Portals)
}

func TestSubscribeSeesSaves(t *testing.T) {
	userID := uuid.New()
	repo := newMemRepo()
	svc := NewService(repo, &fakeGateway{}, NewHub())

	current, sub, err := svc.Subscribe(context.Background(), userID, locale.EN)
	require.NoError(t, err)
	defer sub.Close()
	assert.Nil(t, current, "new user starts with no document")

	_, err = svc.Save(context.Background(), userID, locale.EN, []byte(`{"name": "Ana"}`))
	require.NoError(t, err)

	select {
	case p := <-sub.C:
		assert.Equal(t, "Ana", p.Name)
	default:
		t.Fatal("expected the save to reach the watcher")
	}
}
