package match

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

func TestNormalizeOutcomeHistoricalKeys(t *testing.T) {
	doc := decode(t, `{
		"analisis": {
			"nombreVACANTE": "Backend Developer",
			"nivelAjuste": "Alto",
			"experiencia_Dest": "5 años construyendo APIs",
			"HabilidadesClave": "Go, PostgreSQL",
			"Logros_rele": "Migró el monolito",
			"porcentaje_compatibilidad": "85%",
			"es_compatible": true,
			"habilidades_faltantes": ["Kubernetes"],
			"experiencia_faltante": "Liderazgo de equipo",
			"consejos": "Prepara ejemplos de diseño de sistemas",
			"puntos_fuertes": ["APIs", "SQL"]
		},
		"output": {
			"cv_final": {"nombre": "Ana García", "resumen": "Backend."},
			"recomendaciones": {
				"habilidades_clave": ["Kubernetes"],
				"certificaciones": ["CKA"],
				"cursos_recomendados": [{"nombre": "K8s básico", "entidad": "Coursera", "url": "https://example.com"}],
				"tiempo_estimado": "3 meses",
				"recursos_gratuitos": [{"nombre": "Docs", "url": "https://kubernetes.io", "tipo": "documentación"}],
				"proyectos_recomendados": ["Despliega un cluster"],
				"vacantes_sugeridas_perfil_actual": [{"rol": "API Developer", "descripcion_breve": "Puro backend", "portales": ["LinkedIn"]}]
			}
		}
	}`)

	out := normalizeOutcome(doc)

	assert.Equal(t, "Backend Developer", out.Analysis.OfferTitle)
	assert.Equal(t, "Alto", out.Analysis.FitLevel)
	assert.InDelta(t, 85.0, out.Analysis.Percentage, 0.001)
	assert.True(t, out.Analysis.Compatible)
	assert.Equal(t, []string{"Kubernetes"}, out.Analysis.MissingSkills)
	assert.Equal(t, []string{"APIs", "SQL"}, out.Analysis.Strengths)

	assert.Equal(t, "Ana García", out.CV.Name)

	require.NotNil(t, out.Recommendations)
	assert.Equal(t, []string{"Kubernetes"}, out.Recommendations.KeySkills)
	require.Len(t, out.Recommendations.Courses, 1)
	assert.Equal(t, "Coursera", out.Recommendations.Courses[0].Provider)
	require.Len(t, out.Recommendations.FreeResources, 1)
	assert.Equal(t, "documentación", out.Recommendations.FreeResources[0].Type)
	require.Len(t, out.Recommendations.SuggestedVacancies, 1)
	assert.Equal(t, "API Developer", out.Recommendations.SuggestedVacancies[0].Role)
	assert.Equal(t, "3 meses", out.Recommendations.EstimatedTime)
}

func TestNormalizeOutcomeEnglishAliases(t *testing.T) {
	doc := decode(t, `{
		"analysis": {
			"offerTitle": "Platform Engineer",
			"percentage": 62.5,
			"compatible": false,
			"missingSkills": ["Terraform"]
		},
		"cv_final": {"name": "John Smith"},
		"recommendations": {"keySkills": ["Terraform"], "estimatedTime": "2 months"}
	}`)

	out := normalizeOutcome(doc)

	assert.Equal(t, "Platform Engineer", out.Analysis.OfferTitle)
	assert.InDelta(t, 62.5, out.Analysis.Percentage, 0.001)
	assert.False(t, out.Analysis.Compatible)
	// cv_final at the top level still parses.
	assert.Equal(t, "John Smith", out.CV.Name)
	require.NotNil(t, out.Recommendations)
	assert.Equal(t, "2 months", out.Recommendations.EstimatedTime)
}

func TestNormalizeOutcomeNoRecommendations(t *testing.T) {
	out := normalizeOutcome(decode(t, `{"analisis": {"porcentaje_compatibilidad": 90}}`))
	assert.Nil(t, out.Recommendations)
	assert.InDelta(t, 90.0, out.Analysis.Percentage, 0.001)
}

func TestParsePercent(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{85.0, 85},
		{"85", 85},
		{"85%", 85},
		{" 85.5 % ", 85.5},
		{"85.5%", 85.5},
		{nil, 0},
		{"n/a", 0},
		{true, 0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, parsePercent(tc.in), 0.001, "input %v", tc.in)
	}
}
