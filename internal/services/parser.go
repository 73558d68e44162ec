package services

import (
	"encoding/json"
	"strings"
)

// ParseAIJSON parses model output as a single JSON object after trimming
// surrounding whitespace. Anything else (prose, markdown fences, arrays,
// trailing text) yields nil. It never fails loudly.
func ParseAIJSON(text string) map[string]any {
	var data map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &data); err != nil {
		return nil
	}
	return data
}

// StringList returns data[field] when it is a JSON array of strings.
// ok is false when data is nil, the field is absent, or it has another shape.
func StringList(data map[string]any, field string) (list []string, ok bool) {
	raw, exists := data[field]
	if !exists {
		return nil, false
	}

	items, isArray := raw.([]any)
	if !isArray {
		return nil, false
	}

	list = make([]string, 0, len(items))
	for _, item := range items {
		s, isString := item.(string)
		if !isString {
			return nil, false
		}
		list = append(list, s)
	}

	return list, true
}
