package match

import (
	"encoding/json"
	"fmt"

	"github.com/hiremind/backend/pkg/locale"
	"github.com/hiremind/backend/pkg/profile"
)

// CompatibilityPrompt encodes the decision policy sent to the model: the
// score is a weighted sum (40% matching skills, 35% matching experience
// years, 25% matching certifications/education) and the response shape
// branches on score >= 70. The weighting is an instruction to the model; the
// returned percentage is additionally gated in code (see usecase.go).
func CompatibilityPrompt(p profile.Profile, offerText string, loc locale.Locale) string {
	doc, _ := json.Marshal(p)
	isEs := loc.Spanish()

	pick := func(es, en string) string {
		if isEs {
			return es
		}
		return en
	}

	return fmt.Sprintf(`%s between the candidate's profile and the job requirements. STRICTLY ADJUST these elements:
1. Professional profile (%s). Mandatory:
"[Relevant Title] with [X] years in [key area].
Specialized in [skill 1], [skill 2], and [skill 3] certified by [entity].
Achieved [Metric 1], [Metric 2].
With a focus on [Concrete value for the role]."
2. Responsibilities in each work experience (%s, MANDATORY)
3. Certifications (format: "Name - Year") - IMPORTANT: select a maximum of 8 most relevant certifications. Only include Name and Year. Prioritize relevance over quantity.
4. Technical skills (format: "Skill (level)")
5. Achievements (quantifiable and aligned)

%s:

### 1. Compatibility Analysis
- %s (e.g., "Advanced Python", "SAP MM", "Agile project management").
- %s.
- %s:
[(Matching skills / Total required) * 40] +
[(Relevant years of experience / Required years) * 35] +
[(Matching certifications/education / Total required) * 25]

Specific adjustments (MANDATORY):
- PROFESSIONAL PROFILE (4-5 lines) adjusted to the job offer. Forbidden: "I seek to apply", "provide solutions", "I wish to contribute".
- WORK RESPONSIBILITIES (for each experience) adjusted to the job offer. %s. Maximum 3 bullet points per position. Use percentages/values in achievements.
- CERTIFICATIONS: "Exact Name - Year" (e.g., 'Azure Data Engineer - 2023'). Maximum 8, most relevant first. ALWAYS PRIORITIZE ATS COMPATIBILITY.
- KEY ACHIEVEMENTS: adjust towards the job offer, include percentages.

Important: do not round default values. Calculate the percentage truly based on what you detect.
VERY IMPORTANT: DO NOT ADD MORE YEARS OF EXPERIENCE THAN THE USER ALREADY HAS IN THEIR PROFILE. ONLY ADJUST EXISTING INFORMATION TO THE JOB OFFER.

2. Decision making:
- If compatibility >= 70%%, generate a CV in JSON with this exact structure:
{
    "cv_final": {
        "name": "Full Name",
        "contact": { "email": "email@example.com", "phone": "+123456789", "linkedin": "profile-url" },
        "summary": "4-5 line professional summary focused on the job offer",
        "experience": [ { "title": "Job Title", "company": "Company Name", "location": "City, Country", "dates": "Month. YearStart - Month. YearEnd", "description": "* Responsibility 1\n* Responsibility 2\n* Quantifiable achievement. MANDATORY MAXIMUM 3 RESPONSIBILITIES" } ],
        "education": [ { "title": "Academic Degree", "institution": "Educational Institution", "dates": "YearStart - YearEnd", "thesis": "Thesis title (if applicable)" } ],
        "skills": { "technical": ["Skill 1 (level)"], "certifications": ["Certification 1 - Year"], "achievements": ["Professional achievement 1"], "languages": {"Spanish": "Native", "English": "Advanced"} }
    }
}

- If compatibility < 70%%, generate improvement recommendations and a modified CV:
{
    "recomendaciones": {
        "habilidades_clave": [ "skill" ],
        "certificaciones": [ "cert" ],
        "cursos_recomendados": [ { "nombre": "Name", "entidad": "entity", "url": "URL" } ],
        "tiempo_estimado": "X-Y months",
        "recursos_gratuitos": [ { "nombre": "name", "url": "link", "tipo": "type" } ],
        "proyectos_recomendados": [ "type" ],
        "vacantes_sugeridas_perfil_actual": [ { "rol": "role", "descripcion_breve": "desc", "portales": ["P1"] } ]
    },
    "cv_final": { ... }
}

3. FINAL output format (MANDATORY):
{
    "analisis": {
        "nivelAjuste": "0-100",
        "experiencia_Dest": "text",
        "HabilidadesClave": "text",
        "Logros_rele": "text",
        "nombreVACANTE": "title",
        "porcentaje_compatibilidad": "percentage",
        "es_compatible": boolean,
        "habilidades_faltantes": ["skill"],
        "experiencia_faltante": "text",
        "consejos": "interview tips",
        "puntos_fuertes": ["point"]
    },
    "output": { "recomendaciones": {}, "cv_final": {} }
}

%s:
%s

%s:
%s

%s`,
		pick("Analiza la compatibilidad", "Analyze the compatibility"),
		pick(`elimina frases como "busco aplicar mi experiencia"`, `eliminate phrases like "I seek to apply my experience"`),
		pick("enfocado en palabras clave de la vacante", "focused on job keywords"),
		pick("Sigue este proceso", "Follow this process"),
		pick("Extrae requisitos clave de la oferta", "Extract key requirements from the job offer"),
		pick("Compara punto por punto con el perfil del candidato", "Compare point by point with the candidate's profile"),
		pick("Calcula compatibilidad REAL", "Calculate REAL compatibility"),
		pick(`Usa verbos en primera persona del singular en pasado (ej: "Diseñé", "Desarrollé")`, `Use first-person singular past tense verbs (e.g., "I designed", "I developed")`),
		pick("Perfil del Candidato", "Candidate Profile"),
		doc,
		pick("Detalles de la Vacante", "Job Details"),
		offerText,
		pick("POR FAVOR RESPONDE EN ESPAÑOL.", "PLEASE RESPOND IN ENGLISH."),
	)
}
