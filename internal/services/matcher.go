package services

import (
	"math"
	"strings"

	"alfredoptarigan/resume-gap/internal/models"
)

// Match reports which keywords occur in resumeText. The test is a
// case-insensitive substring check with no word boundaries, so "java" matches
// inside "javascript". Keywords keep their original casing and order within
// each partition. Score is the percentage of matched keywords rounded half to
// even, or 0 for an empty keyword list.
func Match(resumeText string, keywords []string) models.MatchResult {
	text := strings.ToLower(resumeText)

	result := models.MatchResult{
		Matched: make([]string, 0, len(keywords)),
		Missing: make([]string, 0),
	}

	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			result.Matched = append(result.Matched, kw)
		} else {
			result.Missing = append(result.Missing, kw)
		}
	}

	if len(keywords) > 0 {
		ratio := float64(len(result.Matched)) / float64(len(keywords))
		result.Score = int(math.RoundToEven(ratio * 100))
	}

	return result
}
