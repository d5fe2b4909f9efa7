package profile

import (
	"encoding/json"
	"fmt"

	"github.com/hiremind/backend/pkg/locale"
)

// Prompt builders are pure string templates: raw data is interpolated
// verbatim, nothing is escaped, and they never fail. A malformed input simply
// produces a malformed prompt whose failure surfaces later as a gateway
// ParseError.

// StructurePrompt asks the model to turn raw résumé text into the structured
// document. Under the Spanish locale the historical Spanish key spellings are
// requested; Normalize folds either spelling back into the canonical schema.
func StructurePrompt(textContent string, loc locale.Locale) string {
	if loc.Spanish() {
		return fmt.Sprintf(`Transforma el siguiente texto de un currículum en un objeto JSON con esta estructura exacta:
{
  "nombre": "string",
  "contacto": { "correo": "string", "telefono": "string", "linkedin": "string" },
  "resumen": "string",
  "experiencia": [{ "titulo": "string", "empresa": "string", "fechas": "string", "descripcion": "string" }],
  "educacion": [{ "titulo": "string", "institucion": "string", "fechas": "string" }],
  "habilidades": {
    "tecnicas": ["string"],
    "certificaciones": ["string"],
    "logros": ["string"],
    "idiomas": { "idioma": "nivel" }
  }
}
Asegúrate de que todas las claves estén entre comillas dobles. Extrae la información del texto y ajústala a esta estructura. La descripción de la experiencia debe ser un solo string; puedes usar '\n' para saltos de línea.
La salida JSON DEBE estar en español.
Texto del CV:
---
%s`, textContent)
	}
	return fmt.Sprintf(`Transform the following resume text into a JSON object with this exact structure:
{
  "name": "string",
  "contact": { "email": "string", "phone": "string", "linkedin": "string" },
  "summary": "string",
  "experience": [{ "title": "string", "company": "string", "dates": "string", "description": "string" }],
  "education": [{ "title": "string", "institution": "string", "dates": "string" }],
  "skills": {
    "technical": ["string"],
    "certifications": ["string"],
    "achievements": ["string"],
    "languages": { "language": "level" }
  }
}
Ensure that all keys in the JSON are double-quoted. Extract the information from the text and adapt it to this structure. The experience description should be a single string; you can use '\n' for line breaks.
The JSON output MUST be in English.
CV Text:
---
%s`, textContent)
}

// SummaryPrompt asks for a one-paragraph professional summary of a profile.
func SummaryPrompt(p Profile, loc locale.Locale) string {
	doc, _ := json.Marshal(p)
	if loc.Spanish() {
		return fmt.Sprintf(`Resume brevemente el siguiente perfil profesional en un párrafo. Limítate a indicar profesión, años de experiencia, áreas clave, herramientas que domina y fortalezas generales. No repitas frases textuales del CV.
Perfil JSON:
---
%s`, doc)
	}
	return fmt.Sprintf(`Briefly summarize the following professional profile in one paragraph. Limit yourself to indicating profession, years of experience, key areas, mastered tools, and general strengths. Do not repeat verbatim phrases from the CV.
Profile JSON:
---
%s`, doc)
}

// MergePrompt asks the model to fold free-text updates into the existing
// document and return a full replacement. Merge semantics are delegated to
// the model; storage always replaces wholesale.
func MergePrompt(p Profile, updateText string, loc locale.Locale) string {
	doc, _ := json.Marshal(p)
	if loc.Spanish() {
		return fmt.Sprintf(`Actualiza el siguiente JSON de historia laboral con la nueva información proporcionada. Integra los nuevos datos de forma coherente en la estructura existente. No elimines información, solo añade o fusiona.
Tu respuesta DEBE ser únicamente el objeto JSON completo y actualizado.
---
HISTORIA LABORAL ACTUAL (JSON):
%s
---
NUEVA INFORMACIÓN (Texto):
%s`, doc, updateText)
	}
	return fmt.Sprintf(`Update the following work history JSON with the new information provided. Integrate the new data coherently into the existing structure. Do not remove information, only add or merge.
Your response MUST be only the complete and updated JSON object.
---
CURRENT WORK HISTORY (JSON):
%s
---
NEW INFORMATION (Text):
%s`, doc, updateText)
}

// JobRecommendationPrompt asks for role suggestions matching the profile.
func JobRecommendationPrompt(p Profile, loc locale.Locale) string {
	doc, _ := json.Marshal(p)
	if loc.Spanish() {
		return fmt.Sprintf(`Basado en el siguiente perfil, sugiere 5 roles y para cada uno, 2 portales de empleo.
Formato JSON: { "recomendaciones_empleo": [ { "rol": "Rol", "portales": ["Portal1", "Portal2"] } ] }
Perfil: %s`, doc)
	}
	return fmt.Sprintf(`Based on the following profile, suggest 5 roles and for each, 2 job portals.
JSON Format: { "job_recommendations": [ { "role": "Role", "portals": ["Portal1", "Portal2"] } ] }
Profile: %s`, doc)
}
