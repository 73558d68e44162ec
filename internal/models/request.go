package models

// Text fields and list elements are pointers so that an absent field or a
// null element can be told apart from an empty string: both are validation
// errors, an empty string is accepted.

type ExtractKeywordsRequest struct {
	JDText *string `json:"jd_text" validate:"required"`
}

type AnalyzeRequest struct {
	ResumeText *string   `json:"resume_text" validate:"required"`
	JDKeywords []*string `json:"jd_keywords" validate:"required,dive,required"`
}

type SuggestRequest struct {
	MissingKeywords []*string `json:"missing_keywords" validate:"required,dive,required"`
	JDText          *string   `json:"jd_text" validate:"required"`
	ResumeText      *string   `json:"resume_text" validate:"required"`
}

// Strings dereferences a validated list. Nil elements are skipped.
func Strings(list []*string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}
