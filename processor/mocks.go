package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/VoicePulse-AI/sentiment-go/apperr"
	"github.com/VoicePulse-AI/sentiment-go/crm"
)

// MockInferenceClient implements InferenceClient for tests. Each operation
// counts its calls and can be forced to fail.
type MockInferenceClient struct {
	ClassifyResult   string
	ClassifyErr      error
	ClassifyCalls    int
	TranscribeResult string
	TranscribeErr    error
	TranscribeCalls  int
	ResponseResult   string
	ResponseErr      error
	ResponseCalls    int
	SummaryResult    string
	SummaryErr       error
	SummaryCalls     int
	LastPrompt       string
}

func (m *MockInferenceClient) ClassifySentiment(ctx context.Context, text string) (string, error) {
	m.ClassifyCalls++
	if m.ClassifyErr != nil {
		return "", m.ClassifyErr
	}
	return m.ClassifyResult, nil
}

func (m *MockInferenceClient) Transcribe(ctx context.Context, data []byte, filename string) (string, error) {
	m.TranscribeCalls++
	if m.TranscribeErr != nil {
		return "", m.TranscribeErr
	}
	return m.TranscribeResult, nil
}

func (m *MockInferenceClient) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	m.ResponseCalls++
	m.LastPrompt = prompt
	if m.ResponseErr != nil {
		return "", m.ResponseErr
	}
	return m.ResponseResult, nil
}

func (m *MockInferenceClient) GenerateSummary(ctx context.Context, transcript string) (string, error) {
	m.SummaryCalls++
	if m.SummaryErr != nil {
		return "", m.SummaryErr
	}
	return m.SummaryResult, nil
}

// MockCustomerStore implements CustomerStore over a fixed customer list.
type MockCustomerStore struct {
	Customers []crm.Customer
}

func (m *MockCustomerStore) FindCustomer(email, phone string) (*crm.Customer, error) {
	email = crm.NormalizeEmail(email)
	phone = crm.NormalizePhone(phone)
	if email == "" && phone == "" {
		return nil, apperr.InvalidRequest("email or phone is required")
	}
	for i := range m.Customers {
		if email != "" && crm.NormalizeEmail(m.Customers[i].Email) == email {
			return &m.Customers[i], nil
		}
	}
	for i := range m.Customers {
		if phone != "" && crm.NormalizePhone(m.Customers[i].Phone) == phone {
			return &m.Customers[i], nil
		}
	}
	return nil, apperr.NotFound("customer not found")
}

// MockSink records appended rows and can be forced to fail.
type MockSink struct {
	Rows [][]interface{}
	Err  error
}

func (m *MockSink) AppendRow(ctx context.Context, row []interface{}) error {
	if m.Err != nil {
		return m.Err
	}
	m.Rows = append(m.Rows, row)
	return nil
}

// MockArchiver records archived uploads.
type MockArchiver struct {
	Uploads int
	Err     error
}

func (m *MockArchiver) ArchiveAudio(data []byte, filename string) (string, error) {
	m.Uploads++
	if m.Err != nil {
		return "", m.Err
	}
	return fmt.Sprintf("https://bucket.s3.amazonaws.com/uploads/%s", filename), nil
}

// ErrUpstreamDown is a reusable upstream failure for tests.
var ErrUpstreamDown = errors.New("upstream service unavailable")
