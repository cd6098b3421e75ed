package openai

import "testing"

func TestParseAnalysis_WellFormed(t *testing.T) {
	raw := "Sentiment: Positive\nTone: Friendly\nExplanation: The customer is happy with the product."

	result := ParseAnalysis(raw)

	if result.Sentiment != "Positive" {
		t.Errorf("Expected sentiment 'Positive', got '%s'", result.Sentiment)
	}
	if result.Tone != "Friendly" {
		t.Errorf("Expected tone 'Friendly', got '%s'", result.Tone)
	}
	if result.Explanation != "The customer is happy with the product." {
		t.Errorf("Unexpected explanation: '%s'", result.Explanation)
	}
}

func TestParseAnalysis_Variations(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Analysis
	}{
		{
			name:     "Reordered lines",
			input:    "Explanation: Mild complaint\nSentiment: Negative\nTone: Upset",
			expected: Analysis{Sentiment: "Negative", Tone: "Upset", Explanation: "Mild complaint"},
		},
		{
			name:     "Lowercase labels",
			input:    "sentiment: Neutral\ntone: Polite\nexplanation: Just a question",
			expected: Analysis{Sentiment: "Neutral", Tone: "Polite", Explanation: "Just a question"},
		},
		{
			name:     "Colons inside the value",
			input:    "Sentiment: Positive\nTone: Friendly\nExplanation: Rated 10:10, would buy again",
			expected: Analysis{Sentiment: "Positive", Tone: "Friendly", Explanation: "Rated 10:10, would buy again"},
		},
		{
			name:     "Extra unlabeled lines ignored",
			input:    "Here is my analysis:\nSentiment: Negative\nTone: Angry\nExplanation: Delivery issue\nThanks!",
			expected: Analysis{Sentiment: "Negative", Tone: "Angry", Explanation: "Delivery issue"},
		},
		{
			name:     "Leading whitespace on lines",
			input:    "  Sentiment: Positive\n\tTone: Friendly\n Explanation: ok",
			expected: Analysis{Sentiment: "Positive", Tone: "Friendly", Explanation: "ok"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := ParseAnalysis(tc.input)

			if result != tc.expected {
				t.Errorf("Expected %+v, got %+v", tc.expected, result)
			}
		})
	}
}

func TestParseAnalysis_Malformed(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Analysis
	}{
		{
			name:     "Empty input",
			input:    "",
			expected: Analysis{Sentiment: "Neutral", Tone: "Neutral", Explanation: ""},
		},
		{
			name:     "Missing explanation",
			input:    "Sentiment: Positive\nTone: Friendly",
			expected: Analysis{Sentiment: "Positive", Tone: "Friendly", Explanation: ""},
		},
		{
			name:     "Labeled line without colon ignored",
			input:    "Sentiment Positive\nTone: Upset",
			expected: Analysis{Sentiment: "Neutral", Tone: "Upset", Explanation: ""},
		},
		{
			name:     "Free prose only",
			input:    "The customer seems fine overall.",
			expected: Analysis{Sentiment: "Neutral", Tone: "Neutral", Explanation: ""},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := ParseAnalysis(tc.input)

			if result != tc.expected {
				t.Errorf("Expected %+v, got %+v", tc.expected, result)
			}
		})
	}
}

func TestParseAnalysis_CannedNeutral(t *testing.T) {
	result := ParseAnalysis(neutralClassification)

	if result.Sentiment != "Neutral" || result.Tone != "Neutral" {
		t.Errorf("Canned classification should parse as neutral, got %+v", result)
	}
	if result.Explanation != "No text provided." {
		t.Errorf("Expected canned explanation, got '%s'", result.Explanation)
	}
}
