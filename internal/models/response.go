package models

type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

// MatchResult partitions a keyword list into the keywords found in a résumé
// and those that are not. Score is the rounded percentage of matched keywords.
type MatchResult struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Score   int      `json:"score"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type ResumeTextResponse struct {
	ResumeText  string `json:"resume_text"`
	PageCount   int    `json:"page_count,omitempty"`
	ContentType string `json:"content_type"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    int      `json:"code"`
	Details []string `json:"details,omitempty"`
}
