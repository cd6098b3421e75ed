// Package openai wraps the OpenAI-compatible inference service used for
// sentiment classification, transcription and reply generation.
//
// The wrapper pins the models and sampling parameters used by the service and
// applies a per-call timeout plus bounded retry, so callers only deal with the
// resulting text and a classified error.
package openai

import (
	"context"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client wraps the OpenAI client with the fixed models and call policy used by
// the analysis pipeline.
type Client struct {
	client             *openai.Client
	chatModel          string
	transcriptionModel string
	timeout            time.Duration
	maxRetries         uint64
}

// NewClient creates a new inference client. baseURL may point at any
// OpenAI-compatible endpoint; the HTTP client allows for custom configuration
// such as timeouts and proxy settings.
func NewClient(apiKey, baseURL, chatModel, transcriptionModel string, httpClient http.Client, timeout time.Duration, maxRetries int) Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&httpClient),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(opts...)

	if maxRetries < 0 {
		maxRetries = 0
	}

	return Client{
		client:             &client,
		chatModel:          chatModel,
		transcriptionModel: transcriptionModel,
		timeout:            timeout,
		maxRetries:         uint64(maxRetries),
	}
}

// withRetry runs op under the client's timeout with exponential backoff.
// The deadline bounds the whole retry loop, not each attempt; op receives the
// derived context so the timeout cuts off the upstream call itself.
func (c *Client) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	return backoff.Retry(func() error { return op(ctx) }, b)
}

// complete requests a chat completion for a single user prompt at the given
// temperature and returns the trimmed message content.
func (c *Client) complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	var content string
	err := c.withRetry(ctx, func(ctx context.Context) error {
		completion, err := c.client.Chat.Completions.New(
			ctx,
			openai.ChatCompletionNewParams{
				Messages: []openai.ChatCompletionMessageParamUnion{
					openai.UserMessage(prompt),
				},
				Model:       openai.ChatModel(c.chatModel),
				Temperature: openai.Float(temperature),
			},
		)
		if err != nil {
			return err
		}
		if len(completion.Choices) == 0 {
			return errEmptyCompletion
		}
		content = completion.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return "", err
	}
	return content, nil
}
