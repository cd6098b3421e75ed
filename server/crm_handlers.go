package server

import (
	"github.com/gofiber/fiber/v3"

	"github.com/VoicePulse-AI/sentiment-go/apperr"
)

// getCustomerHandler handles POST /get_customer
func (s *Server) getCustomerHandler(c fiber.Ctx) error {
	var req CustomerRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorJSON(c, apperr.InvalidRequest("invalid request body"))
	}

	customer, err := s.processor.GetCustomer(req.Email, req.Phone)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(customer)
}

// generateSummaryHandler handles POST /generate-summary
func (s *Server) generateSummaryHandler(c fiber.Ctx) error {
	var req SummaryRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorJSON(c, apperr.InvalidRequest("invalid request body"))
	}

	summary, err := s.processor.Summarize(c.Context(), req.Transcript)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(SummaryResponse{Summary: summary})
}
