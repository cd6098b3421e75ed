package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// GenerateResponse produces a free-form reply for the CRM-aware flow. The
// prompt already carries the customer context; temperature 0.7 keeps replies
// varied.
func (c *Client) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	reply, err := c.complete(ctx, prompt, 0.7)
	if err != nil {
		log.Error().Err(err).Msg("Response generation request failed")
		return "", fmt.Errorf("response generation failed: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

// GenerateSummary produces a fixed-template summary of a call transcript.
// An empty transcript returns a canned message without an API call.
func (c *Client) GenerateSummary(ctx context.Context, transcript string) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return noTranscriptSummary, nil
	}

	summary, err := c.complete(ctx, fmt.Sprintf(summaryPrompt, transcript), 0)
	if err != nil {
		log.Error().Err(err).Msg("Summary generation request failed")
		return "", fmt.Errorf("summary generation failed: %w", err)
	}
	return strings.TrimSpace(summary), nil
}
