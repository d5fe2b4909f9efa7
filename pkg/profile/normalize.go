package profile

import (
	"regexp"
	"strings"
)

// Stored documents predate the canonical schema: the model was historically
// asked for Spanish field names under the Spanish locale and English ones
// otherwise, and old documents exist in both spellings. Normalize folds
// either spelling into the canonical Profile exactly once, at the read
// boundary. Renderers and use cases only ever see canonical fields.

// Normalize maps a decoded JSON document (either key spelling) into the
// canonical Profile. Missing fields default to empty; it never fails.
func Normalize(doc map[string]any) Profile {
	p := Profile{
		Name:    pickString(doc, "name", "nombre"),
		Summary: pickString(doc, "summary", "resumen"),
	}

	contact := pickMap(doc, "contact", "contacto")
	p.Contact = Contact{
		Email:    pickString(contact, "email", "correo"),
		Phone:    pickString(contact, "phone", "telefono"),
		LinkedIn: pickString(contact, "linkedin"),
	}

	for _, item := range pickSlice(doc, "experience", "experiencia") {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		exp := Experience{
			Title:    pickString(m, "title", "titulo"),
			Company:  pickString(m, "company", "empresa"),
			Location: pickString(m, "location", "lugar"),
			Dates:    pickString(m, "dates", "fechas"),
		}
		if hl := pickSlice(m, "highlights"); len(hl) > 0 {
			exp.Highlights = toStrings(hl)
		} else {
			exp.Highlights = SplitHighlights(pickString(m, "description", "descripcion"))
		}
		p.Experience = append(p.Experience, exp)
	}

	for _, item := range pickSlice(doc, "education", "educacion") {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		p.Education = append(p.Education, Education{
			Title:       pickString(m, "title", "titulo"),
			Institution: pickString(m, "institution", "institucion"),
			Dates:       pickString(m, "dates", "fechas"),
			Thesis:      pickString(m, "thesis", "tesis"),
		})
	}

	skills := pickMap(doc, "skills", "habilidades")
	p.Skills = Skills{
		Technical:      toStrings(pickSlice(skills, "technical", "tecnicas")),
		Certifications: toStrings(pickSlice(skills, "certifications", "certificaciones")),
		Achievements:   toStrings(pickSlice(skills, "achievements", "logros")),
		Languages:      toStringMap(pickMap(skills, "languages", "idiomas")),
	}
	return p
}

var (
	// Bullet runs inside a single string: literal "\n" escapes, real
	// newlines, or " * " separators between items.
	reBulletSep    = regexp.MustCompile(`\\n|\n|\s\*\s+`)
	reBulletPrefix = regexp.MustCompile(`^[\*\-•]\s*`)
)

// SplitHighlights turns a description string with embedded bullets into an
// ordered list, stripping leading bullet markers. Empty input yields nil.
func SplitHighlights(desc string) []string {
	if strings.TrimSpace(desc) == "" {
		return nil
	}
	var out []string
	for _, line := range reBulletSep.Split(desc, -1) {
		line = strings.TrimSpace(line)
		line = reBulletPrefix.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
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

func toStringMap(m map[string]any) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
