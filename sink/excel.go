package sink

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const mirrorSheet = "Sheet1"

// ExcelSink mirrors rows into a local xlsx workbook. It serves as the sink
// when no Google credentials are configured and as an offline second target.
type ExcelSink struct {
	mu     sync.Mutex
	path   string
	header []string
}

// NewExcelSink returns a sink writing to the workbook at path. The header row
// is written once when the workbook is created.
func NewExcelSink(path string, header []string) *ExcelSink {
	return &ExcelSink{path: path, header: header}
}

func (s *ExcelSink) AppendRow(ctx context.Context, row []interface{}) error {
	// The whole append is open-modify-save, so writers must not interleave.
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	f, created, err := s.open()
	if err != nil {
		return err
	}
	defer f.Close()

	nextRow := 1
	if created && len(s.header) > 0 {
		cell, _ := excelize.CoordinatesToCellName(1, 1)
		headerRow := make([]interface{}, len(s.header))
		for i, h := range s.header {
			headerRow[i] = h
		}
		if err := f.SetSheetRow(mirrorSheet, cell, &headerRow); err != nil {
			return fmt.Errorf("write header row: %w", err)
		}
		nextRow = 2
	} else if !created {
		rows, err := f.GetRows(mirrorSheet)
		if err != nil {
			return fmt.Errorf("read workbook rows: %w", err)
		}
		nextRow = len(rows) + 1
	}

	cell, err := excelize.CoordinatesToCellName(1, nextRow)
	if err != nil {
		return fmt.Errorf("compute cell name: %w", err)
	}
	if err := f.SetSheetRow(mirrorSheet, cell, &row); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	log.Debug().Str("path", s.path).Int("row", nextRow).Msg("Row appended to mirror workbook")
	return nil
}

func (s *ExcelSink) open() (*excelize.File, bool, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return excelize.NewFile(), true, nil
	}
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, false, fmt.Errorf("open mirror workbook: %w", err)
	}
	return f, false, nil
}
