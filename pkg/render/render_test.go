package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiremind/backend/pkg/locale"
	"github.com/hiremind/backend/pkg/match"
	"github.com/hiremind/backend/pkg/profile"
)

func sampleProfile() profile.Profile {
	return profile.Profile{
		Name:    "Ana García",
		Summary: "Backend engineer.",
		Contact: profile.Contact{Email: "ana@example.com", Phone: "+34 600 000 000"},
		Experience: []profile.Experience{
			{Title: "Senior Developer", Company: "Acme", Dates: "2021 - 2024", Highlights: []string{"Led the payments team", "Cut latency in half"}},
			{Title: "Developer", Company: "Initech", Dates: "2018 - 2021", Highlights: []string{"Built the billing service"}},
		},
		Education: []profile.Education{{Title: "BSc Computer Science", Institution: "UPM", Dates: "2014 - 2018"}},
		Skills:    profile.Skills{Technical: []string{"Go", "PostgreSQL"}},
	}
}

func TestProfileRendersEveryExperienceInOrder(t *testing.T) {
	p := sampleProfile()
	html := Profile(&p, locale.EN)

	assert.Contains(t, html, "Ana García")
	assert.Contains(t, html, "Work Experience")
	assert.Contains(t, html, "Led the payments team")
	assert.Contains(t, html, "Built the billing service")
	// Entries keep their stored order.
	assert.Less(t, strings.Index(html, "Acme"), strings.Index(html, "Initech"))
}

func TestProfileNilRendersNotFoundState(t *testing.T) {
	html := Profile(nil, locale.ES)
	assert.Contains(t, html, "No se encontró un perfil para este idioma")

	html = Profile(nil, locale.EN)
	assert.Contains(t, html, "No profile found for this language")
}

func TestProfileEscapesUserContent(t *testing.T) {
	p := profile.Profile{Name: `<script>alert("x")</script>`}
	html := Profile(&p, locale.EN)
	assert.NotContains(t, html, "<script>")
}

func TestCVCapsCertifications(t *testing.T) {
	p := sampleProfile()
	for i := 0; i < 12; i++ {
		p.Skills.Certifications = append(p.Skills.Certifications, "Cert-"+string(rune('A'+i)))
	}
	html := CV(p, locale.EN)

	assert.Contains(t, html, "Cert-H")
	assert.NotContains(t, html, "Cert-I", "only the first 8 certifications render")
}

func TestCVSpanishHeadings(t *testing.T) {
	html := CV(sampleProfile(), locale.ES)
	assert.Contains(t, html, "Resumen Profesional")
	assert.Contains(t, html, "Experiencia Laboral")
}

func TestResultCompatibleBranch(t *testing.T) {
	e := match.Entry{
		Locale: locale.EN,
		Analysis: match.Analysis{
			Compatible:    true,
			Percentage:    85,
			Strengths:     []string{"APIs"},
			InterviewTips: "Bring system design examples.",
		},
		Recommendations: &match.Recommendations{KeySkills: []string{"should not render"}},
	}
	html := Result(e)

	assert.Contains(t, html, "Congratulations! You are a strong candidate")
	assert.Contains(t, html, "Compatibility: 85%")
	assert.Contains(t, html, "Bring system design examples.")
	assert.NotContains(t, html, "should not render")
}

func TestResultGapBranch(t *testing.T) {
	e := match.Entry{
		Locale: locale.ES,
		Analysis: match.Analysis{
			Compatible: false,
			Percentage: 55,
			Strengths:  []string{"not shown on this branch"},
		},
		Recommendations: &match.Recommendations{
			KeySkills:     []string{"Kubernetes"},
			EstimatedTime: "3 meses",
		},
	}
	html := Result(e)

	assert.Contains(t, html, "Áreas de oportunidad detectadas")
	assert.Contains(t, html, "Compatibilidad: 55%")
	assert.Contains(t, html, "Kubernetes")
	assert.Contains(t, html, "3 meses")
	assert.NotContains(t, html, "not shown on this branch")
}

func TestResultReplayIsDeterministic(t *testing.T) {
	e := match.Entry{
		Locale:          locale.EN,
		Analysis:        match.Analysis{Compatible: false, Percentage: 40},
		Recommendations: &match.Recommendations{KeySkills: []string{"Terraform"}},
	}
	assert.Equal(t, Result(e), Result(e))
}

func TestWordDocumentEnvelope(t *testing.T) {
	doc := WordDocument("<p>body</p>")
	assert.True(t, strings.HasPrefix(doc, "<html xmlns:o="))
	assert.Contains(t, doc, "urn:schemas-microsoft-com:office:word")
	assert.Contains(t, doc, "<p>body</p>")
	assert.True(t, strings.HasSuffix(doc, "</body></html>"))
}

func TestDocFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Backend Developer", "CV_Backend_Developer.doc"},
		{"Ingeniería de Datos", "CV_Ingeniería_de_Datos.doc"},
		{`DevOps / SRE <lead>`, "CV_DevOps__SRE_lead.doc"},
		{"", "CV_Offer.doc"},
		{"///", "CV_Offer.doc"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DocFilename(tc.in))
	}
}

func TestRecommendationsNilIsEmpty(t *testing.T) {
	require.Empty(t, Recommendations(nil, locale.EN))
}
