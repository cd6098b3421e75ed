package openai

import "strings"

// Analysis holds the structured fields extracted from the model's answer.
type Analysis struct {
	Sentiment   string
	Tone        string
	Explanation string
}

// ParseAnalysis extracts sentiment, tone and explanation from the model's
// line-oriented output. A line whose lowercased content starts with
// "sentiment", "tone" or "explanation" sets the corresponding field to the
// text after the first colon, trimmed. Unmatched lines are ignored and missing
// fields keep their defaults, so malformed output degrades instead of failing.
func ParseAnalysis(raw string) Analysis {
	result := Analysis{Sentiment: "Neutral", Tone: "Neutral", Explanation: ""}

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		var target *string
		switch {
		case strings.HasPrefix(lower, "sentiment"):
			target = &result.Sentiment
		case strings.HasPrefix(lower, "tone"):
			target = &result.Tone
		case strings.HasPrefix(lower, "explanation"):
			target = &result.Explanation
		default:
			continue
		}

		// Split on the first colon only; the value may contain more colons.
		_, value, found := strings.Cut(trimmed, ":")
		if !found {
			continue
		}
		*target = strings.TrimSpace(value)
	}

	return result
}
