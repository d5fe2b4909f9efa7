package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hiremind/backend/pkg/locale"
	"github.com/hiremind/backend/pkg/profile"
)

func TestCompatibilityPromptCarriesPolicyAndData(t *testing.T) {
	p := profile.Profile{Name: "Ana Garcia", Skills: profile.Skills{Technical: []string{"Go"}}}
	prompt := CompatibilityPrompt(p, "Backend Developer at Initech", locale.EN)

	// Scoring policy and branch threshold travel inside the prompt.
	assert.Contains(t, prompt, "* 40]")
	assert.Contains(t, prompt, "* 35]")
	assert.Contains(t, prompt, "* 25]")
	assert.Contains(t, prompt, "compatibility >= 70%")
	assert.Contains(t, prompt, "compatibility < 70%")

	// The final output shape uses the historical field names.
	assert.Contains(t, prompt, `"porcentaje_compatibilidad"`)
	assert.Contains(t, prompt, `"es_compatible"`)
	assert.Contains(t, prompt, `"cv_final"`)

	assert.Contains(t, prompt, "Ana Garcia")
	assert.Contains(t, prompt, "Backend Developer at Initech")
	assert.Contains(t, prompt, "PLEASE RESPOND IN ENGLISH.")
}

func TestCompatibilityPromptSpanish(t *testing.T) {
	prompt := CompatibilityPrompt(profile.Profile{Name: "Ana"}, "oferta", locale.ES)

	assert.Contains(t, prompt, "Analiza la compatibilidad")
	assert.Contains(t, prompt, "Perfil del Candidato")
	assert.Contains(t, prompt, "POR FAVOR RESPONDE EN ESPA")
}
