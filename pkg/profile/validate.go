package profile

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Model output is untrusted: a single malformed generation must be rejected
// before it replaces the stored document.
const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "summary": {"type": "string"},
    "contact": {
      "type": "object",
      "properties": {
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "linkedin": {"type": "string"}
      }
    },
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": "string"},
          "company": {"type": "string"},
          "location": {"type": "string"},
          "dates": {"type": "string"},
          "highlights": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": "string"},
          "institution": {"type": "string"},
          "dates": {"type": "string"},
          "thesis": {"type": "string"}
        }
      }
    },
    "skills": {
      "type": "object",
      "properties": {
        "technical": {"type": "array", "items": {"type": "string"}},
        "certifications": {"type": "array", "items": {"type": "string"}},
        "achievements": {"type": "array", "items": {"type": "string"}},
        "languages": {"type": "object", "additionalProperties": {"type": "string"}}
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// Validate checks a canonical profile against the document schema.
func Validate(p Profile) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(p))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("profile schema validation failed: %s", msgs)
}
