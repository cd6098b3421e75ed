// Package sink mirrors analyzed interactions to external spreadsheets.
//
// Appends are best-effort: the pipeline logs sink failures and reports them
// separately, but never discards an otherwise valid analysis because a mirror
// was unreachable.
package sink

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/VoicePulse-AI/sentiment-go/apperr"
)

// RowAppender appends one row to a spreadsheet-like target.
type RowAppender interface {
	AppendRow(ctx context.Context, row []interface{}) error
}

// Multi fans an append out to every configured target and reports the
// combined failure, if any. A failing target does not stop the others.
type Multi struct {
	targets []RowAppender
}

func NewMulti(targets ...RowAppender) *Multi {
	return &Multi{targets: targets}
}

// Enabled reports whether any target is configured.
func (m *Multi) Enabled() bool { return len(m.targets) > 0 }

func (m *Multi) AppendRow(ctx context.Context, row []interface{}) error {
	var errs []error
	for _, target := range m.targets {
		if err := target.AppendRow(ctx, row); err != nil {
			log.Warn().Err(err).Msg("Log sink append failed")
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return apperr.LogSink("spreadsheet append failed", errors.Join(errs...))
	}
	return nil
}
