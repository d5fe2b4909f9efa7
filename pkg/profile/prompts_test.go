package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hiremind/backend/pkg/locale"
)

func TestStructurePromptLocaleKeys(t *testing.T) {
	es := StructurePrompt("texto del cv", locale.ES)
	assert.Contains(t, es, `"nombre"`)
	assert.Contains(t, es, `"habilidades"`)
	assert.Contains(t, es, "texto del cv")

	en := StructurePrompt("cv text", locale.EN)
	assert.Contains(t, en, `"name"`)
	assert.Contains(t, en, `"skills"`)
	assert.Contains(t, en, "cv text")
	assert.NotContains(t, en, `"nombre"`)
}

func TestMergePromptEmbedsCurrentDocument(t *testing.T) {
	p := Profile{Name: "Ana Garcia"}
	prompt := MergePrompt(p, "I got promoted", locale.EN)
	assert.Contains(t, prompt, "Ana Garcia")
	assert.Contains(t, prompt, "I got promoted")
}

func TestJobRecommendationPromptShape(t *testing.T) {
	assert.Contains(t, JobRecommendationPrompt(Profile{}, locale.ES), "recomendaciones_empleo")
	assert.Contains(t, JobRecommendationPrompt(Profile{}, locale.EN), "job_recommendations")
}
