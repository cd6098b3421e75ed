package processor

import (
	"github.com/VoicePulse-AI/sentiment-go/conversation"
	"github.com/VoicePulse-AI/sentiment-go/crm"
)

// TextAnalysis is the response payload for plain text and audio analysis.
// Error carries a degraded-path message (transcription failure, no speech);
// SinkError reports a failed mirror append without invalidating the result.
type TextAnalysis struct {
	conversation.Interaction
	Error     string `json:"error,omitempty"`
	SinkError string `json:"sink_error,omitempty"`
}

// CustomerAnalysis is the enriched response for the CRM-aware flow.
type CustomerAnalysis struct {
	conversation.Interaction
	Customer        *crm.Customer        `json:"customer"`
	AIResponse      string               `json:"ai_response,omitempty"`
	Recommendations []crm.Recommendation `json:"Recommendations,omitempty"`
	Error           string               `json:"error,omitempty"`
	SinkError       string               `json:"sink_error,omitempty"`
}
