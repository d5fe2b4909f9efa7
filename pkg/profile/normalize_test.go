package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestNormalizeSpanishKeys(t *testing.T) {
	doc := decode(t, `{
		"nombre": "Ana García",
		"resumen": "Ingeniera de datos.",
		"contacto": {"correo": "ana@example.com", "telefono": "+34 600 000 000", "linkedin": "https://linkedin.com/in/ana"},
		"experiencia": [
			{
				"titulo": "Data Engineer",
				"empresa": "Acme",
				"fechas": "2020 - 2023",
				"descripcion": "* Construyó pipelines ETL\\n* Redujo costes un 30%"
			}
		],
		"educacion": [{"titulo": "Grado en Informática", "institucion": "UPM", "fechas": "2016 - 2020"}],
		"habilidades": {
			"tecnicas": ["Python", "SQL"],
			"certificaciones": ["GCP Data Engineer"],
			"logros": ["Premio interno 2022"],
			"idiomas": {"es": "nativo", "en": "C1"}
		}
	}`)

	p := Normalize(doc)

	assert.Equal(t, "Ana García", p.Name)
	assert.Equal(t, "Ingeniera de datos.", p.Summary)
	assert.Equal(t, "ana@example.com", p.Contact.Email)
	assert.Equal(t, "+34 600 000 000", p.Contact.Phone)

	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Data Engineer", p.Experience[0].Title)
	assert.Equal(t, "Acme", p.Experience[0].Company)
	assert.Equal(t, []string{"Construyó pipelines ETL", "Redujo costes un 30%"}, p.Experience[0].Highlights)

	require.Len(t, p.Education, 1)
	assert.Equal(t, "UPM", p.Education[0].Institution)

	assert.Equal(t, []string{"Python", "SQL"}, p.Skills.Technical)
	assert.Equal(t, []string{"GCP Data Engineer"}, p.Skills.Certifications)
	assert.Equal(t, "C1", p.Skills.Languages["en"])
}

func TestNormalizeEnglishKeys(t *testing.T) {
	doc := decode(t, `{
		"name": "John Smith",
		"summary": "Backend developer.",
		"contact": {"email": "john@example.com"},
		"experience": [
			{"title": "Developer", "company": "Initech", "dates": "2019 - 2024", "highlights": ["Shipped the billing service", "Mentored two juniors"]}
		],
		"skills": {"technical": ["Go"]}
	}`)

	p := Normalize(doc)

	assert.Equal(t, "John Smith", p.Name)
	require.Len(t, p.Experience, 1)
	// Explicit highlights win over description splitting.
	assert.Equal(t, []string{"Shipped the billing service", "Mentored two juniors"}, p.Experience[0].Highlights)
	assert.Equal(t, []string{"Go"}, p.Skills.Technical)
}

func TestNormalizeEnglishKeysWinOverSpanish(t *testing.T) {
	p := Normalize(map[string]any{"name": "canonical", "nombre": "legacy"})
	assert.Equal(t, "canonical", p.Name)
}

func TestNormalizeEmptyDocument(t *testing.T) {
	p := Normalize(map[string]any{})
	assert.Empty(t, p.Name)
	assert.Nil(t, p.Experience)
	assert.Nil(t, p.Skills.Technical)
	assert.Nil(t, p.Skills.Languages)
}

func TestNormalizeSkipsNonStringEntries(t *testing.T) {
	p := Normalize(map[string]any{
		"name":   "X",
		"skills": map[string]any{"technical": []any{"Go", 42.0, "", "SQL"}},
	})
	assert.Equal(t, []string{"Go", "SQL"}, p.Skills.Technical)
}

func TestSplitHighlights(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "   ", nil},
		{"escaped newlines", `* first\n* second`, []string{"first", "second"}},
		{"real newlines", "- first\n- second", []string{"first", "second"}},
		{"inline asterisks", "first * second * third", []string{"first", "second", "third"}},
		{"bullet dot marker", "• only one", []string{"only one"}},
		{"single plain line", "did the thing", []string{"did the thing"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitHighlights(tc.in))
		})
	}
}

func TestValidateRequiresName(t *testing.T) {
	err := Validate(Profile{})
	require.Error(t, err)

	assert.NoError(t, Validate(Profile{Name: "Ana García"}))
}
