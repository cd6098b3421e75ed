package processor

import (
	"context"

	"github.com/VoicePulse-AI/sentiment-go/crm"
)

// InferenceClient defines the inference gateway operations the pipeline needs.
type InferenceClient interface {
	ClassifySentiment(ctx context.Context, text string) (string, error)
	Transcribe(ctx context.Context, data []byte, filename string) (string, error)
	GenerateResponse(ctx context.Context, prompt string) (string, error)
	GenerateSummary(ctx context.Context, transcript string) (string, error)
}

// CustomerStore resolves customer records for the CRM-aware flow.
type CustomerStore interface {
	FindCustomer(email, phone string) (*crm.Customer, error)
}

// RowAppender mirrors one analyzed interaction to an external spreadsheet.
type RowAppender interface {
	AppendRow(ctx context.Context, row []interface{}) error
}

// AudioArchiver stores accepted audio uploads out of band.
type AudioArchiver interface {
	ArchiveAudio(data []byte, filename string) (string, error)
}
