package secondary

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/siftworks/botsift/internal/domain"
)

// ErrUnparseable is returned when no JSON payload can be recovered from a
// classifier response at all. Anything short of that is sanitized
// field-by-field instead of rejected.
var ErrUnparseable = errors.New("secondary classifier response is not parseable")

// OpinionEntry is one raw entry from the classifier response, before
// sanitization. Pointer fields distinguish absent from zero.
type OpinionEntry struct {
	Index  *int                `json:"index"`
	Score  *float64            `json:"score"`
	Label  domain.OpinionLabel `json:"label"`
	Reason string              `json:"reason"`
}

// responseEnvelope is the expected top-level response shape. A bare JSON
// array of entries is accepted too.
type responseEnvelope struct {
	Results []json.RawMessage `json:"results"`
}

// ParseOpinions recovers opinion entries from a classifier response that
// may wrap its JSON in prose or code fences. Individual entries that fail
// to decode are dropped; individual fields that fail to decode fall back to
// their zero value. Only a response with no recoverable JSON is an error.
func ParseOpinions(raw string) ([]OpinionEntry, error) {
	payload, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	var envelope responseEnvelope
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Results != nil {
		items = envelope.Results
	} else if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnparseable, firstLine(raw))
	}

	entries := make([]OpinionEntry, 0, len(items))
	for _, item := range items {
		entry, ok := decodeEntry(item)
		if ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// decodeEntry decodes one entry field-by-field so a single wrong-typed
// field does not discard the rest of the entry.
func decodeEntry(item json.RawMessage) (OpinionEntry, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil {
		return OpinionEntry{}, false
	}

	entry := OpinionEntry{Label: domain.LabelUncertain}
	if raw, ok := fields["index"]; ok {
		var idx int
		if err := json.Unmarshal(raw, &idx); err == nil {
			entry.Index = &idx
		}
	}
	if raw, ok := fields["score"]; ok {
		var score float64
		if err := json.Unmarshal(raw, &score); err == nil {
			entry.Score = &score
		}
	}
	if raw, ok := fields["label"]; ok {
		_ = json.Unmarshal(raw, &entry.Label) // never fails; falls back to uncertain
	}
	if raw, ok := fields["reason"]; ok {
		_ = json.Unmarshal(raw, &entry.Reason)
	}
	return entry, true
}

// extractJSON returns the JSON payload embedded in raw: the whole string if
// it is valid JSON, otherwise the string with code-fence markers stripped,
// otherwise the first balanced {...} span.
func extractJSON(raw string) ([]byte, error) {
	trimmed := strings.TrimSpace(raw)
	if json.Valid([]byte(trimmed)) {
		return []byte(trimmed), nil
	}

	unfenced := stripFences(trimmed)
	if json.Valid([]byte(unfenced)) {
		return []byte(unfenced), nil
	}

	if span := balancedSpan(unfenced); span != "" && json.Valid([]byte(span)) {
		return []byte(span), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnparseable, firstLine(raw))
}

// stripFences removes leading/trailing markdown code-fence lines.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return s
	}
	lines = lines[1:] // drop opening fence (possibly "```json")
	for len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "```") {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// balancedSpan locates the first balanced {...} span, tracking string
// literals so braces inside reasons do not break the depth count.
func balancedSpan(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

func firstLine(s string) string {
	const maxLen = 120
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	return s
}
