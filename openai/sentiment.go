package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

var errEmptyCompletion = errors.New("completion returned no choices")

// ClassifySentiment asks the model to classify text and returns the raw model
// answer for ParseAnalysis. Classification runs at temperature 0 so repeated
// calls on the same text agree. Empty input short-circuits to a canned neutral
// answer without spending an API call.
func (c *Client) ClassifySentiment(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return neutralClassification, nil
	}

	raw, err := c.complete(ctx, fmt.Sprintf(sentimentPrompt, text), 0)
	if err != nil {
		log.Error().Err(err).Msg("Sentiment classification request failed")
		return "", fmt.Errorf("sentiment classification failed: %w", err)
	}

	log.Debug().
		Str("model", c.chatModel).
		Str("raw_result", truncateText(raw, 200)).
		Msg("Sentiment classification completed")

	return strings.TrimSpace(raw), nil
}

// truncateText truncates text to a specified length for logging
func truncateText(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	return strings.TrimSpace(text[:maxLength]) + "..."
}
