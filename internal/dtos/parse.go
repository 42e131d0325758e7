package dtos

import (
	"encoding/json"
	"strings"
	"time"
)

// ParseStringList normalizes the three shapes list-valued form fields arrive
// in: repeated form values, a JSON-encoded array string, or a comma-separated
// string. A plain string that is neither becomes a single-element list.
func ParseStringList(values []string) []string {
	if len(values) == 0 {
		return []string{}
	}
	if len(values) > 1 {
		return trimNonEmpty(values)
	}

	v := strings.TrimSpace(values[0])
	if v == "" {
		return []string{}
	}
	if strings.HasPrefix(v, "[") {
		var out []string
		if err := json.Unmarshal([]byte(v), &out); err == nil {
			return trimNonEmpty(out)
		}
		return []string{v}
	}
	if strings.Contains(v, ",") {
		return trimNonEmpty(strings.Split(v, ","))
	}
	return []string{v}
}

func trimNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ParseContactMap decodes the free-form contact-information JSON object.
// Anything unparsable yields an empty map rather than an error.
func ParseContactMap(raw string) map[string]any {
	out := map[string]any{}
	if raw == "" {
		return out
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return map[string]any{}
	}
	return out
}

// ParseDeadline accepts an RFC 3339 timestamp or a bare date. Unparsable or
// empty input yields nil, matching the optional deadline field.
func ParseDeadline(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
