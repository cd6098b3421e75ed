package server

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/VoicePulse-AI/sentiment-go/apperr"
)

var allowedAudioExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".webm": true,
}

// analyzeTextHandler handles POST /analyze-text. A request carrying an email
// or phone runs the CRM-aware flow; otherwise the plain text flow.
func (s *Server) analyzeTextHandler(c fiber.Ctx) error {
	var req AnalyzeTextRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorJSON(c, apperr.InvalidRequest("invalid request body"))
	}

	if req.Email != "" || req.Phone != "" {
		result, err := s.processor.AnalyzeCustomer(c.Context(), req.Email, req.Phone, req.Text)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(result)
	}

	result, err := s.processor.AnalyzeText(c.Context(), req.Text)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(result)
}

// analyzeAudioHandler handles POST /analyze-audio. Internal failures degrade
// to a neutral payload inside the processor, so the handler only rejects
// malformed uploads.
func (s *Server) analyzeAudioHandler(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errorJSON(c, apperr.InvalidRequest("audio file is required"))
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedAudioExtensions[ext] {
		return errorJSON(c, apperr.InvalidRequest("unsupported audio format, expected wav, mp3 or webm"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errorJSON(c, apperr.Internal("failed to open upload", err))
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errorJSON(c, apperr.Internal("failed to read upload", err))
	}

	result := s.processor.AnalyzeAudio(c.Context(), data, fileHeader.Filename)
	return c.JSON(result)
}

// historyHandler handles GET /history
func (s *Server) historyHandler(c fiber.Ctx) error {
	return c.JSON(s.processor.History())
}

// analyticsHandler handles GET /analytics
func (s *Server) analyticsHandler(c fiber.Ctx) error {
	return c.JSON(s.processor.Analytics())
}

func (s *Server) healthHandler(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// errorJSON converts any error to the shared error response shape.
func errorJSON(c fiber.Ctx, err error) error {
	appErr := apperr.FromError(err)
	if appErr.Code == apperr.CodeInternal {
		log.Error().Err(appErr).Str("path", c.Path()).Msg("Request failed")
	}
	return c.Status(appErr.HTTPStatus()).JSON(ErrorResponse{
		Error: ErrorDetail{
			Code:    string(appErr.Code),
			Message: appErr.Message,
		},
	})
}
