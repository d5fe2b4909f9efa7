package render

import "github.com/hiremind/backend/pkg/locale"

// Section headings and captions for the two locales.
type labels struct {
	Summary            string
	Experience         string
	Education          string
	TechnicalSkills    string
	Certifications     string
	Achievements       string
	Languages          string
	Compatibility      string
	Strengths          string
	InterviewTips      string
	KeySkills          string
	RecommendedCerts   string
	RecommendedCourses string
	EstimatedTime      string
	FreeResources      string
	SuggestedVacancies string
	ProfileNotFound    string
	Congratulations    string
	AreasOfOpportunity string
}

var labelsEN = labels{
	Summary:            "Professional Summary",
	Experience:         "Work Experience",
	Education:          "Education",
	TechnicalSkills:    "Technical Skills",
	Certifications:     "Certifications",
	Achievements:       "Key Achievements",
	Languages:          "Languages",
	Compatibility:      "Compatibility",
	Strengths:          "Strong Points",
	InterviewTips:      "Interview Tips",
	KeySkills:          "Key Skills to Develop",
	RecommendedCerts:   "Recommended Certifications",
	RecommendedCourses: "Recommended Courses",
	EstimatedTime:      "Estimated Improvement Time",
	FreeResources:      "Free Resources",
	SuggestedVacancies: "Suggested Vacancies for Your Current Profile",
	ProfileNotFound:    "No profile found for this language. Upload your resume to get started.",
	Congratulations:    "Congratulations! You are a strong candidate",
	AreasOfOpportunity: "Areas of opportunity detected",
}

var labelsES = labels{
	Summary:            "Resumen Profesional",
	Experience:         "Experiencia Laboral",
	Education:          "Educación",
	TechnicalSkills:    "Habilidades Técnicas",
	Certifications:     "Certificaciones",
	Achievements:       "Logros Clave",
	Languages:          "Idiomas",
	Compatibility:      "Compatibilidad",
	Strengths:          "Puntos Fuertes",
	InterviewTips:      "Consejos para la Entrevista",
	KeySkills:          "Habilidades Clave a Desarrollar",
	RecommendedCerts:   "Certificaciones Recomendadas",
	RecommendedCourses: "Cursos Recomendados",
	EstimatedTime:      "Tiempo Estimado de Mejora",
	FreeResources:      "Recursos Gratuitos",
	SuggestedVacancies: "Vacantes Sugeridas para tu Perfil Actual",
	ProfileNotFound:    "No se encontró un perfil para este idioma. Sube tu currículum para comenzar.",
	Congratulations:    "¡Felicidades! Eres un candidato fuerte",
	AreasOfOpportunity: "Áreas de oportunidad detectadas",
}

func labelsFor(loc locale.Locale) labels {
	if loc.Spanish() {
		return labelsES
	}
	return labelsEN
}
