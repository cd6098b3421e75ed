// Package crm resolves customer records from the flat xlsx store and maps
// purchased products to complementary recommendations.
package crm

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/VoicePulse-AI/sentiment-go/apperr"
)

// Customer is one row of the CRM workbook. The workbook is the source of
// truth; this service never writes it back.
type Customer struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Product           string   `json:"product"`
	InvoiceID         string   `json:"invoice_id"`
	PurchaseDate      string   `json:"purchase_date"`
	CallFeedback      string   `json:"call_feedback"`
	Sentiment         string   `json:"sentiment"`
	PreviousPurchases []string `json:"previous_purchases"`
}

// Store reads customer rows from an xlsx workbook. The file is re-opened on
// every lookup so edits to the workbook are picked up without a restart.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// NormalizeEmail lowercases and trims an email for comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone strips spaces and dashes so differently formatted numbers
// compare equal.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	return phone
}

// FindCustomer resolves a customer by normalized email first, falling back to
// normalized phone. At least one key must be non-empty. The first matching row
// wins; the workbook carries no uniqueness guarantee.
func (s *Store) FindCustomer(email, phone string) (*Customer, error) {
	email = NormalizeEmail(email)
	phone = NormalizePhone(phone)
	if email == "" && phone == "" {
		return nil, apperr.InvalidRequest("email or phone is required")
	}

	customers, err := s.load()
	if err != nil {
		return nil, apperr.Internal("customer store unavailable", err)
	}

	if email != "" {
		for i := range customers {
			if NormalizeEmail(customers[i].Email) == email {
				return &customers[i], nil
			}
		}
	}
	if phone != "" {
		for i := range customers {
			if NormalizePhone(customers[i].Phone) == phone {
				return &customers[i], nil
			}
		}
	}

	return nil, apperr.NotFound("customer not found")
}

// load reads every data row from the first sheet, resolving columns by header
// name.
func (s *Store) load() ([]Customer, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Str("path", s.path).Msg("Failed to close CRM workbook")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	cols := resolveColumns(rows[0])

	var out []Customer
	for _, row := range rows[1:] {
		customer := Customer{
			Name:         cols.get(row, "name"),
			Email:        cols.get(row, "email"),
			Phone:        cols.get(row, "phone"),
			Product:      cols.get(row, "product"),
			InvoiceID:    cols.get(row, "invoice"),
			PurchaseDate: cols.get(row, "date"),
			CallFeedback: cols.get(row, "feedback"),
			Sentiment:    cols.get(row, "sentiment"),
		}
		customer.PreviousPurchases = splitPurchases(cols.get(row, "previous"))
		if customer.Email == "" && customer.Phone == "" {
			continue
		}
		out = append(out, customer)
	}
	return out, nil
}

type columnMap map[string]int

func (c columnMap) get(row []string, key string) string {
	idx, ok := c[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// resolveColumns maps the logical fields onto header positions by name, so
// column order in the workbook does not matter.
func resolveColumns(header []string) columnMap {
	cols := columnMap{}
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(l, "previous"):
			cols["previous"] = i
		case strings.Contains(l, "name"):
			setOnce(cols, "name", i)
		case strings.Contains(l, "email"):
			setOnce(cols, "email", i)
		case strings.Contains(l, "phone"):
			setOnce(cols, "phone", i)
		case strings.Contains(l, "product"):
			setOnce(cols, "product", i)
		case strings.Contains(l, "invoice"):
			setOnce(cols, "invoice", i)
		case strings.Contains(l, "date"):
			setOnce(cols, "date", i)
		case strings.Contains(l, "feedback"):
			setOnce(cols, "feedback", i)
		case strings.Contains(l, "sentiment"):
			setOnce(cols, "sentiment", i)
		}
	}
	return cols
}

func setOnce(cols columnMap, key string, idx int) {
	if _, exists := cols[key]; !exists {
		cols[key] = idx
	}
}

func splitPurchases(raw string) []string {
	if raw == "" || strings.EqualFold(raw, "none") {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
