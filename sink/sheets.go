package sink

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleSheetsSink appends rows to one Google spreadsheet using a service
// account.
type GoogleSheetsSink struct {
	service       *sheets.Service
	spreadsheetID string
	writeRange    string
	timeout       time.Duration
	maxRetries    uint64
}

// NewGoogleSheetsSink authenticates with the service-account credentials file
// and returns a sink bound to one spreadsheet.
func NewGoogleSheetsSink(ctx context.Context, credentialsFile, spreadsheetID, writeRange string, timeout time.Duration, maxRetries int) (*GoogleSheetsSink, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	log.Info().
		Str("spreadsheet_id", spreadsheetID).
		Str("range", writeRange).
		Msg("Google Sheets sink configured")

	if maxRetries < 0 {
		maxRetries = 0
	}

	return &GoogleSheetsSink{
		service:       service,
		spreadsheetID: spreadsheetID,
		writeRange:    writeRange,
		timeout:       timeout,
		maxRetries:    uint64(maxRetries),
	}, nil
}

func (s *GoogleSheetsSink) AppendRow(ctx context.Context, row []interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	values := &sheets.ValueRange{Values: [][]interface{}{row}}

	op := func() error {
		_, err := s.service.Spreadsheets.Values.
			Append(s.spreadsheetID, s.writeRange, values).
			ValueInputOption("USER_ENTERED").
			Context(ctx).
			Do()
		return err
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.maxRetries), ctx)
	if err := backoff.Retry(op, b); err != nil {
		return fmt.Errorf("append to spreadsheet %s: %w", s.spreadsheetID, err)
	}

	log.Debug().
		Str("spreadsheet_id", s.spreadsheetID).
		Int("columns", len(row)).
		Msg("Row appended to Google Sheets")

	return nil
}
