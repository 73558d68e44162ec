package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildKeywordExtractionPrompt(t *testing.T) {
	jd := "We need a Go engineer with Kafka experience."
	prompt := NewPromptBuilder().BuildKeywordExtractionPrompt(jd)

	assert.Contains(t, prompt, "JOB DESCRIPTION:\n"+jd)
	assert.Contains(t, prompt, `"keywords": ["...", "..."]`)
	assert.Contains(t, prompt, "DO NOT include soft skills.")
	assert.Contains(t, prompt, "DO NOT explain anything.")
}

func TestBuildSuggestionPrompt(t *testing.T) {
	prompt := NewPromptBuilder().BuildSuggestionPrompt(
		[]string{"Kafka", `say "hi"`},
		"short jd",
		"short resume",
	)

	assert.Contains(t, prompt, "MISSING KEYWORDS:\n[\"Kafka\", \"say \\\"hi\\\"\"]")
	assert.Contains(t, prompt, "JOB DESCRIPTION (shortened):\nshort jd\n")
	assert.Contains(t, prompt, "RESUME (shortened):\nshort resume\n")
	assert.Contains(t, prompt, `"suggestions": [`)
}

func TestBuildSuggestionPromptTruncatesContext(t *testing.T) {
	jd := strings.Repeat("j", suggestionContextLimit) + "JD-OVERFLOW"
	resume := strings.Repeat("é", suggestionContextLimit) + "RESUME-OVERFLOW"

	prompt := NewPromptBuilder().BuildSuggestionPrompt([]string{"Go"}, jd, resume)

	assert.Contains(t, prompt, strings.Repeat("j", suggestionContextLimit)+"\n")
	assert.NotContains(t, prompt, "JD-OVERFLOW")
	assert.Contains(t, prompt, strings.Repeat("é", suggestionContextLimit)+"\n")
	assert.NotContains(t, prompt, "RESUME-OVERFLOW")
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "", truncateRunes("abc", 0))
	assert.Equal(t, "abc", truncateRunes("abc", 3))
	assert.Equal(t, "ab", truncateRunes("abc", 2))
	assert.Equal(t, "日本", truncateRunes("日本語", 2))
}
