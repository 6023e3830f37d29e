package service

import (
	"testing"

	"github.com/solenne-labs/profilechat/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildContext_Empty(t *testing.T) {
	assert.Equal(t, NoContextSentinel, BuildContext(nil))
	assert.Equal(t, NoContextSentinel, BuildContext([]domain.RetrievalResult{}))
}

func TestBuildContext_NumbersBlocksInRankedOrder(t *testing.T) {
	results := []domain.RetrievalResult{
		{Text: "Go: expert level.", Score: 0.91, Section: domain.SectionSkills},
		{Text: "Q: Remote? A: Yes", Score: 0.72, Section: domain.SectionFAQs},
	}

	context := BuildContext(results)

	assert.Equal(t, "[Context 1]: Go: expert level.\n\n[Context 2]: Q: Remote? A: Yes", context)
}

func TestBuildSystemPrompt_InterpolatesPersonaAndContext(t *testing.T) {
	persona := domain.PersonaConfig{Name: "Ada Lovelace", Title: "Software Engineer"}

	prompt := BuildSystemPrompt("[Context 1]: Go: expert level.", persona)

	assert.Contains(t, prompt, "representing Ada Lovelace, a Software Engineer")
	assert.Contains(t, prompt, "first person as if you ARE Ada")
	assert.Contains(t, prompt, "[Context 1]: Go: expert level.")
	assert.Contains(t, prompt, "I'd be happy to discuss that in more detail during a call")
	assert.Contains(t, prompt, "2-4 sentences")
}

func TestBuildSystemPrompt_CarriesSentinelForEmptyContext(t *testing.T) {
	persona := domain.PersonaConfig{Name: "Ada Lovelace", Title: "Software Engineer"}

	prompt := BuildSystemPrompt(BuildContext(nil), persona)

	assert.Contains(t, prompt, NoContextSentinel)
}
