// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/VoicePulse-AI/sentiment-go/processor"
)

type Server struct {
	app       *fiber.App
	processor *processor.Processor
}

func New(p *processor.Processor) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024, // audio uploads
	})

	server := &Server{
		app:       app,
		processor: p,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) Start(port string) {
	log.Info().Str("port", port).Msg("Starting sentiment insights server")

	err := s.app.Listen(":"+port, fiber.ListenConfig{
		DisableStartupMessage: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
