package match

import (
	"strconv"
	"strings"

	"github.com/hiremind/backend/pkg/profile"
)

// The final output format predates the canonical schema: analysis fields come
// back under the historical mixed Spanish/English names, and some relays have
// returned the English aliases. Everything is folded into the canonical
// structs here, once, right after the gateway response parses.

type outcome struct {
	Analysis        Analysis
	CV              profile.Profile
	Recommendations *Recommendations
}

func normalizeOutcome(doc map[string]any) outcome {
	var out outcome

	an := pickMap(doc, "analisis", "analysis")
	out.Analysis = Analysis{
		OfferTitle:           pickString(an, "nombreVACANTE", "offerTitle", "vacancyName"),
		FitLevel:             pickString(an, "nivelAjuste", "fitLevel"),
		ExperienceHighlight:  pickString(an, "experiencia_Dest", "experienceHighlight"),
		KeySkills:            pickString(an, "HabilidadesClave", "keySkills"),
		RelevantAchievements: pickString(an, "Logros_rele", "relevantAchievements"),
		Percentage:           parsePercent(pickAny(an, "porcentaje_compatibilidad", "compatibilityPercentage", "percentage")),
		Compatible:           pickBool(an, "es_compatible", "is_compatible", "compatible"),
		MissingSkills:        toStrings(pickSlice(an, "habilidades_faltantes", "missingSkills")),
		MissingExperience:    pickString(an, "experiencia_faltante", "missingExperience"),
		InterviewTips:        pickString(an, "consejos", "interviewTips", "tips"),
		Strengths:            toStrings(pickSlice(an, "puntos_fuertes", "strengths")),
	}

	output := pickMap(doc, "output")
	cvDoc := pickMap(output, "cv_final", "cvFinal")
	if len(cvDoc) == 0 {
		// Some generations put cv_final at the top level.
		cvDoc = pickMap(doc, "cv_final", "cvFinal")
	}
	out.CV = profile.Normalize(cvDoc)

	recDoc := pickMap(output, "recomendaciones", "recommendations")
	if len(recDoc) == 0 {
		recDoc = pickMap(doc, "recomendaciones", "recommendations")
	}
	if len(recDoc) > 0 {
		out.Recommendations = normalizeRecommendations(recDoc)
	}
	return out
}

func normalizeRecommendations(m map[string]any) *Recommendations {
	r := &Recommendations{
		KeySkills:      toStrings(pickSlice(m, "habilidades_clave", "keySkills")),
		Certifications: toStrings(pickSlice(m, "certificaciones", "certifications")),
		EstimatedTime:  pickString(m, "tiempo_estimado", "estimatedTime"),
		Projects:       toStrings(pickSlice(m, "proyectos_recomendados", "projects")),
	}
	for _, item := range pickSlice(m, "cursos_recomendados", "courses") {
		c, ok := item.(map[string]any)
		if !ok {
			continue
		}
		r.Courses = append(r.Courses, Course{
			Name:     pickString(c, "nombre", "name"),
			Provider: pickString(c, "entidad", "provider"),
			URL:      pickString(c, "url"),
		})
	}
	for _, item := range pickSlice(m, "recursos_gratuitos", "freeResources") {
		c, ok := item.(map[string]any)
		if !ok {
			continue
		}
		r.FreeResources = append(r.FreeResources, Resource{
			Name: pickString(c, "nombre", "name"),
			URL:  pickString(c, "url", "link"),
			Type: pickString(c, "tipo", "type"),
		})
	}
	for _, item := range pickSlice(m, "vacantes_sugeridas_perfil_actual", "suggestedVacancies") {
		c, ok := item.(map[string]any)
		if !ok {
			continue
		}
		r.SuggestedVacancies = append(r.SuggestedVacancies, SuggestedVacancy{
			Role:        pickString(c, "rol", "role"),
			Description: pickString(c, "descripcion_breve", "description"),
			Portals:     toStrings(pickSlice(c, "portales", "portals")),
		})
	}
	return r
}

// parsePercent accepts a JSON number, "85", "85%" or "85.5" — whatever the
// model felt like returning that day.
func parsePercent(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(n), "%"))
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return 0
}

func pickAny(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return nil
}

func pickBool(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if b, ok := v.(bool); ok {
				return b
			}
		}
	}
	return false
}

func pickString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

func pickMap(m map[string]any, keys ...string) map[string]any {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if mm, ok := v.(map[string]any); ok {
				return mm
			}
		}
	}
	return map[string]any{}
}

func pickSlice(m map[string]any, keys ...string) []any {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := v.([]any); ok {
				return s
			}
		}
	}
	return nil
}

func toStrings(items []any) []string {
	var out []string
	for _, it := range items {
		if s, ok := it.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
