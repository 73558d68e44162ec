package services

import (
	"fmt"
	"strconv"
	"strings"
)

// suggestionContextLimit bounds how many characters of the job description
// and résumé are embedded in a suggestion prompt.
const suggestionContextLimit = 700

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildKeywordExtractionPrompt creates the prompt that asks for the technical
// keywords of a job description as {"keywords": [...]}.
func (pb *PromptBuilder) BuildKeywordExtractionPrompt(jobDescription string) string {
	return fmt.Sprintf(`You are a strict technical skill extractor.

JOB DESCRIPTION:
%s

TASK:
Extract ONLY the *technical* skills:
- programming languages
- frameworks
- libraries
- tools
- ML/AI terms
- cloud, DevOps, DBs
- technical certifications

RULES:
- DO NOT include soft skills.
- DO NOT include generic words ("software", "development").
- DO NOT explain anything.
- DO NOT wrap the output in prose or markdown.
- Output strictly this JSON format:

{
  "keywords": ["...", "..."]
}`, jobDescription)
}

// BuildSuggestionPrompt creates the prompt that asks for résumé improvements
// covering the missing keywords as {"suggestions": [...]}. Only the first
// 700 characters of the job description and résumé are included.
func (pb *PromptBuilder) BuildSuggestionPrompt(missingKeywords []string, jobDescription, resumeText string) string {
	return fmt.Sprintf(`You are a resume optimization expert.
Provide **specific and actionable** resume improvements.

MISSING KEYWORDS:
%s

JOB DESCRIPTION (shortened):
%s

RESUME (shortened):
%s

RULES:
- DO NOT explain anything outside the JSON.
- OUTPUT STRICTLY THIS JSON:
{
  "suggestions": [
    "....",
    "...."
  ]
}`,
		formatKeywordList(missingKeywords),
		truncateRunes(jobDescription, suggestionContextLimit),
		truncateRunes(resumeText, suggestionContextLimit))
}

func formatKeywordList(keywords []string) string {
	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		quoted[i] = strconv.Quote(kw)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
