// Package processor orchestrates the analysis pipeline: inference call,
// result parsing, history aggregation and the best-effort spreadsheet mirror.
package processor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/VoicePulse-AI/sentiment-go/apperr"
	"github.com/VoicePulse-AI/sentiment-go/conversation"
	"github.com/VoicePulse-AI/sentiment-go/crm"
	"github.com/VoicePulse-AI/sentiment-go/openai"
)

// timestampLayout matches the history display format used by the UI.
const timestampLayout = "02/01/2006, 03:04:05 PM"

const responsePromptTemplate = `You are a helpful customer-care assistant for a retail business.
Customer profile:
- Name: %s
- Latest product: %s
- Previous purchases: %s
- Call feedback: %s
- Detected sentiment: %s

Write a short, polite reply of two or three sentences to the customer's
message below, acknowledging their sentiment and referencing their purchase
where natural.

Message: "%s"`

// Processor wires the inference gateway, customer store, aggregator and sinks
// into the request flows exposed by the HTTP layer.
type Processor struct {
	inference InferenceClient
	customers CustomerStore
	store     *conversation.Store
	sink      RowAppender
	crmSink   RowAppender
	archive   AudioArchiver
	now       func() time.Time
}

func New(inference InferenceClient, customers CustomerStore, store *conversation.Store, sink, crmSink RowAppender, archive AudioArchiver) *Processor {
	return &Processor{
		inference: inference,
		customers: customers,
		store:     store,
		sink:      sink,
		crmSink:   crmSink,
		archive:   archive,
		now:       time.Now,
	}
}

// AnalyzeText classifies free text. Empty input returns the canned neutral
// payload without touching the inference service or the history.
func (p *Processor) AnalyzeText(ctx context.Context, text string) (*TextAnalysis, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return &TextAnalysis{Interaction: conversation.Interaction{
			Sentiment:   conversation.SentimentNeutral,
			Tone:        conversation.SentimentNeutral,
			Explanation: "No text provided.",
		}}, nil
	}
	return p.classifyAndRecord(ctx, text)
}

// AnalyzeAudio transcribes an upload and classifies the transcript. The
// request never fails outright: transcription errors degrade to a neutral
// payload carrying the error text, and silent audio returns a canned result
// without a classification call.
func (p *Processor) AnalyzeAudio(ctx context.Context, data []byte, filename string) *TextAnalysis {
	if p.archive != nil {
		if _, err := p.archive.ArchiveAudio(data, filename); err != nil {
			log.Warn().Err(err).Str("file_name", filename).Msg("Audio archive failed, continuing")
		}
	}

	transcript, err := p.inference.Transcribe(ctx, data, filename)
	if err != nil {
		log.Error().Err(err).Str("file_name", filename).Msg("Transcription failed, degrading to neutral result")
		return &TextAnalysis{
			Interaction: conversation.Interaction{
				Sentiment:   conversation.SentimentNeutral,
				Tone:        conversation.SentimentNeutral,
				Explanation: "Transcription failed.",
			},
			Error: err.Error(),
		}
	}

	if transcript == "" {
		return &TextAnalysis{Interaction: conversation.Interaction{
			Sentiment:   conversation.SentimentNeutral,
			Tone:        conversation.SentimentNeutral,
			Explanation: "No speech detected.",
		}}
	}

	result, err := p.classifyAndRecord(ctx, transcript)
	if err != nil {
		// The Error-tagged interaction is already recorded; the audio path
		// reports the failure in the payload instead of the status code.
		return &TextAnalysis{
			Interaction: conversation.Interaction{
				Text:        transcript,
				Sentiment:   conversation.SentimentNeutral,
				Tone:        conversation.SentimentNeutral,
				Explanation: "Sentiment classification failed.",
			},
			Error: err.Error(),
		}
	}
	return result
}

// classifyAndRecord runs the classify -> parse -> record -> mirror sequence
// shared by the text and audio paths.
func (p *Processor) classifyAndRecord(ctx context.Context, text string) (*TextAnalysis, error) {
	raw, err := p.inference.ClassifySentiment(ctx, text)
	if err != nil {
		p.store.Record(conversation.Interaction{
			Text:        text,
			Sentiment:   conversation.SentimentError,
			Tone:        conversation.SentimentError,
			Explanation: err.Error(),
			Timestamp:   p.timestamp(),
		})
		return nil, apperr.Upstream("sentiment classification failed", err)
	}

	analysis := openai.ParseAnalysis(raw)
	interaction := conversation.Interaction{
		Text:        text,
		Sentiment:   analysis.Sentiment,
		Tone:        analysis.Tone,
		Explanation: analysis.Explanation,
		Timestamp:   p.timestamp(),
	}
	p.store.Record(interaction)

	result := &TextAnalysis{Interaction: interaction}
	if p.sink != nil {
		row := []interface{}{interaction.Text, interaction.Sentiment, interaction.Tone, interaction.Timestamp}
		if err := p.sink.AppendRow(ctx, row); err != nil {
			result.SinkError = err.Error()
		}
	}
	return result, nil
}

// AnalyzeCustomer runs the CRM-aware flow: resolve the customer, classify the
// message (or the stored call feedback when no message is given), generate an
// AI reply and product recommendations, then record and mirror the result.
func (p *Processor) AnalyzeCustomer(ctx context.Context, email, phone, text string) (*CustomerAnalysis, error) {
	customer, err := p.customers.FindCustomer(email, phone)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		text = customer.CallFeedback
	}

	raw, err := p.inference.ClassifySentiment(ctx, text)
	if err != nil {
		p.store.Record(conversation.Interaction{
			Text:        text,
			Sentiment:   conversation.SentimentError,
			Tone:        conversation.SentimentError,
			Explanation: err.Error(),
			Timestamp:   p.timestamp(),
		})
		return nil, apperr.Upstream("sentiment classification failed", err)
	}

	analysis := openai.ParseAnalysis(raw)
	interaction := conversation.Interaction{
		Text:        text,
		Sentiment:   analysis.Sentiment,
		Tone:        analysis.Tone,
		Explanation: analysis.Explanation,
		Timestamp:   p.timestamp(),
	}
	p.store.Record(interaction)

	result := &CustomerAnalysis{
		Interaction:     interaction,
		Customer:        customer,
		Recommendations: recommendationsFor(customer),
	}

	prompt := fmt.Sprintf(responsePromptTemplate,
		customer.Name,
		customer.Product,
		strings.Join(customer.PreviousPurchases, ", "),
		customer.CallFeedback,
		interaction.Sentiment,
		text,
	)
	reply, err := p.inference.GenerateResponse(ctx, prompt)
	if err != nil {
		// The sentiment result stands on its own; report the reply failure
		// alongside it instead of discarding the analysis.
		log.Warn().Err(err).Msg("AI reply generation failed, returning analysis without it")
		result.Error = err.Error()
	} else {
		result.AIResponse = reply
	}

	if p.crmSink != nil {
		row := []interface{}{
			interaction.Timestamp, customer.Name, customer.Email, customer.Product,
			interaction.Text, interaction.Sentiment, interaction.Tone, result.AIResponse,
		}
		if err := p.crmSink.AppendRow(ctx, row); err != nil {
			result.SinkError = err.Error()
		}
	}

	return result, nil
}

// GetCustomer resolves a customer record for the /get_customer endpoint.
func (p *Processor) GetCustomer(email, phone string) (*crm.Customer, error) {
	return p.customers.FindCustomer(email, phone)
}

// Summarize produces a fixed-template summary of a call transcript.
func (p *Processor) Summarize(ctx context.Context, transcript string) (string, error) {
	summary, err := p.inference.GenerateSummary(ctx, transcript)
	if err != nil {
		return "", apperr.Upstream("summary generation failed", err)
	}
	return summary, nil
}

// History returns the recorded interactions, oldest first.
func (p *Processor) History() []conversation.Interaction {
	return p.store.History()
}

// Analytics returns the total count and sentiment distribution.
func (p *Processor) Analytics() conversation.Analytics {
	return p.store.Analytics()
}

func (p *Processor) timestamp() string {
	return p.now().Format(timestampLayout)
}

// recommendationsFor suggests a complement for the latest product and each
// distinct previous purchase, deduplicated by suggestion.
func recommendationsFor(customer *crm.Customer) []crm.Recommendation {
	seen := map[string]bool{}
	var out []crm.Recommendation
	for _, product := range append([]string{customer.Product}, customer.PreviousPurchases...) {
		if strings.TrimSpace(product) == "" {
			continue
		}
		rec := crm.Recommend(product)
		if seen[rec.Product] {
			continue
		}
		seen[rec.Product] = true
		out = append(out, rec)
	}
	return out
}
