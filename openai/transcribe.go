package openai

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openai/openai-go"
	"github.com/rs/zerolog/log"
)

// Transcribe converts uploaded audio to text. The bytes are spooled to a
// temporary file that is removed on every exit path. Returns the trimmed
// transcript; an empty string means no speech was detected.
func (c *Client) Transcribe(ctx context.Context, data []byte, filename string) (string, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".webm"
	}

	tmp, err := os.CreateTemp("", "upload-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp audio file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		return "", fmt.Errorf("failed to write temp audio file: %w", err)
	}
	if _, err := tmp.Seek(0, 0); err != nil {
		return "", fmt.Errorf("failed to rewind temp audio file: %w", err)
	}

	log.Info().
		Str("file_name", filename).
		Int("size_bytes", len(data)).
		Str("model", c.transcriptionModel).
		Msg("Transcribing audio file")

	var text string
	err = c.withRetry(ctx, func(ctx context.Context) error {
		if _, err := tmp.Seek(0, 0); err != nil {
			return err
		}
		transcription, err := c.client.Audio.Transcriptions.New(
			ctx,
			openai.AudioTranscriptionNewParams{
				Model:    openai.AudioModel(c.transcriptionModel),
				File:     tmp,
				Language: openai.String("en"),
			},
		)
		if err != nil {
			return err
		}
		text = transcription.Text
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("file_name", filename).Msg("Transcription request failed")
		return "", fmt.Errorf("transcription failed: %w", err)
	}

	text = strings.TrimSpace(text)

	log.Info().
		Str("file_name", filename).
		Str("text_preview", truncateText(text, 100)).
		Msg("Audio transcription completed")

	return text, nil
}
