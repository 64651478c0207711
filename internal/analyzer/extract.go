package analyzer

import (
	"encoding/json"
	"strings"
)

// stripFences removes markdown code fences from model output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// decodeFirst scans text for the first JSON value that starts with open
// ('[' or '{'), decodes into T and passes valid.
func decodeFirst[T any](text string, open byte, valid func(T) bool) (T, bool) {
	var zero T
	text = stripFences(text)
	for i := 0; i < len(text); i++ {
		if text[i] != open {
			continue
		}
		var raw json.RawMessage
		dec := json.NewDecoder(strings.NewReader(text[i:]))
		if err := dec.Decode(&raw); err != nil {
			continue
		}
		var out T
		if err := json.Unmarshal(raw, &out); err != nil {
			continue
		}
		if valid != nil && !valid(out) {
			continue
		}
		return out, true
	}
	return zero, false
}
