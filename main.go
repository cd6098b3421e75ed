package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/VoicePulse-AI/sentiment-go/aws"
	"github.com/VoicePulse-AI/sentiment-go/config"
	"github.com/VoicePulse-AI/sentiment-go/conversation"
	"github.com/VoicePulse-AI/sentiment-go/crm"
	"github.com/VoicePulse-AI/sentiment-go/openai"
	"github.com/VoicePulse-AI/sentiment-go/processor"
	"github.com/VoicePulse-AI/sentiment-go/server"
	"github.com/VoicePulse-AI/sentiment-go/sink"
)

// mirrorHeader is written once when a local mirror workbook is created.
var mirrorHeader = []string{"Transcript", "Sentiment", "Tone", "Date"}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	httpClient := http.Client{}

	inferenceClient := openai.NewClient(
		cfg.OpenAIKey,
		cfg.OpenAIBaseURL,
		cfg.ChatModel,
		cfg.TranscriptionModel,
		httpClient,
		cfg.RequestTimeout,
		cfg.MaxRetries,
	)

	customerStore := crm.NewStore(cfg.CRMDataPath)
	log.Info().Str("path", cfg.CRMDataPath).Msg("CRM store configured")

	mainSink := buildSink(ctx, cfg, cfg.SheetID, cfg.MirrorWorkbookPath)
	crmSink := buildSink(ctx, cfg, cfg.CRMSheetID, cfg.CRMMirrorWorkbookPath)

	var archive processor.AudioArchiver
	if cfg.S3Bucket != "" {
		client, err := aws.NewClient(cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to configure audio archive")
		}
		archive = client
	}

	store := conversation.NewStore()

	proc := processor.New(&inferenceClient, customerStore, store, mainSink, crmSink, archive)

	srv := server.New(proc)
	srv.Start(cfg.Port)
}

// buildSink assembles the spreadsheet targets for one flow. Returns nil when
// nothing is configured so the pipeline skips mirroring entirely.
func buildSink(ctx context.Context, cfg *config.Config, spreadsheetID, mirrorPath string) processor.RowAppender {
	var targets []sink.RowAppender

	if spreadsheetID != "" && cfg.GoogleCredentialsFile != "" {
		gs, err := sink.NewGoogleSheetsSink(
			ctx,
			cfg.GoogleCredentialsFile,
			spreadsheetID,
			cfg.SheetRange,
			cfg.RequestTimeout,
			cfg.MaxRetries,
		)
		if err != nil {
			log.Fatal().Err(err).Str("spreadsheet_id", spreadsheetID).Msg("Failed to configure Google Sheets sink")
		}
		targets = append(targets, gs)
	}

	if mirrorPath != "" {
		targets = append(targets, sink.NewExcelSink(mirrorPath, mirrorHeader))
	}

	multi := sink.NewMulti(targets...)
	if !multi.Enabled() {
		return nil
	}
	return multi
}
