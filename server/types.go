package server

// AnalyzeTextRequest is the body for POST /analyze-text. Supplying email or
// phone switches the request to the CRM-aware flow.
type AnalyzeTextRequest struct {
	Text  string `json:"text"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CustomerRequest is the body for POST /get_customer.
type CustomerRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SummaryRequest is the body for POST /generate-summary.
type SummaryRequest struct {
	Transcript string `json:"transcript"`
}

// SummaryResponse is the reply for POST /generate-summary.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
