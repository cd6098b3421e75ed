package crm

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/VoicePulse-AI/sentiment-go/apperr"
)

func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Name", "Email", "Phone", "Product", "Invoice", "Date of Purchase", "Call Feedback", "Sentiment", "Previous Purchases"},
		{"Riya Sharma", "riyasharma0@email.com", "+916000000001", "Electronics", "INV1000", "2024-03-12", "Happy with product", "Positive", "Books, Toys"},
		{"Arjun Patel", "arjunpatel1@email.com", "+916000000002", "Groceries", "INV1001", "2024-05-20", "Price too high", "Negative", "None"},
		{"Riya Sharma", "riyasharma0@email.com", "+916000000001", "Clothing", "INV1002", "2024-07-01", "Requested callback", "Neutral", "Electronics"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("Failed to compute cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("Failed to write row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "crm_data.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
	return path
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Riya.Sharma@Email.COM "); got != "riya.sharma@email.com" {
		t.Errorf("Unexpected normalized email: '%s'", got)
	}
	// Normalization is idempotent.
	once := NormalizeEmail(" MIXED@Case.com ")
	if NormalizeEmail(once) != once {
		t.Error("NormalizeEmail should be idempotent")
	}
}

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"+91 600-000-0001", "+916000000001"},
		{" 600 000 0001 ", "6000000001"},
		{"+916000000001", "+916000000001"},
	}
	for _, tc := range testCases {
		if got := NormalizePhone(tc.input); got != tc.expected {
			t.Errorf("NormalizePhone(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}

	once := NormalizePhone("+91 600-000 0001")
	if NormalizePhone(once) != once {
		t.Error("NormalizePhone should be idempotent")
	}
}

func TestFindCustomer_ByEmailCaseInsensitive(t *testing.T) {
	store := NewStore(writeTestWorkbook(t))

	customer, err := store.FindCustomer("  RiyaSharma0@Email.com ", "")
	if err != nil {
		t.Fatalf("Expected a match, got error: %v", err)
	}
	if customer.Name != "Riya Sharma" {
		t.Errorf("Expected 'Riya Sharma', got '%s'", customer.Name)
	}
	// Duplicate rows resolve to the first in the file.
	if customer.InvoiceID != "INV1000" {
		t.Errorf("Expected first-in-file row INV1000, got '%s'", customer.InvoiceID)
	}
	if len(customer.PreviousPurchases) != 2 {
		t.Errorf("Expected 2 previous purchases, got %v", customer.PreviousPurchases)
	}
}

func TestFindCustomer_ByFormattedPhone(t *testing.T) {
	store := NewStore(writeTestWorkbook(t))

	byPhone, err := store.FindCustomer("", "+91 600-000-0002")
	if err != nil {
		t.Fatalf("Expected a match by phone, got error: %v", err)
	}
	byEmail, err := store.FindCustomer("arjunpatel1@email.com", "")
	if err != nil {
		t.Fatalf("Expected a match by email, got error: %v", err)
	}
	if byPhone.InvoiceID != byEmail.InvoiceID {
		t.Errorf("Phone and email lookup should resolve to the same row: %s vs %s",
			byPhone.InvoiceID, byEmail.InvoiceID)
	}
}

func TestFindCustomer_EmailPreferredOverPhone(t *testing.T) {
	store := NewStore(writeTestWorkbook(t))

	// Email points at Arjun, phone at Riya; the email match must win.
	customer, err := store.FindCustomer("arjunpatel1@email.com", "+916000000001")
	if err != nil {
		t.Fatalf("Expected a match, got error: %v", err)
	}
	if customer.Name != "Arjun Patel" {
		t.Errorf("Email match should take precedence, got '%s'", customer.Name)
	}
}

func TestFindCustomer_NoneProducesEmptyPurchases(t *testing.T) {
	store := NewStore(writeTestWorkbook(t))

	customer, err := store.FindCustomer("arjunpatel1@email.com", "")
	if err != nil {
		t.Fatalf("Expected a match, got error: %v", err)
	}
	if len(customer.PreviousPurchases) != 0 {
		t.Errorf("Expected no previous purchases for 'None', got %v", customer.PreviousPurchases)
	}
}

func TestFindCustomer_NotFound(t *testing.T) {
	store := NewStore(writeTestWorkbook(t))

	_, err := store.FindCustomer("nobody@email.com", "")
	if !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Errorf("Expected NOT_FOUND, got %v", err)
	}
}

func TestFindCustomer_MissingKeys(t *testing.T) {
	store := NewStore(writeTestWorkbook(t))

	_, err := store.FindCustomer("", "")
	if !apperr.IsCode(err, apperr.CodeInvalidRequest) {
		t.Errorf("Expected INVALID_REQUEST, got %v", err)
	}
}

func TestFindCustomer_MissingWorkbook(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.xlsx"))

	_, err := store.FindCustomer("riyasharma0@email.com", "")
	if !apperr.IsCode(err, apperr.CodeInternal) {
		t.Errorf("Expected INTERNAL_ERROR for unreadable store, got %v", err)
	}
}
