package server

func (s *Server) setupRoutes() {
	s.app.Post("/analyze-text", s.analyzeTextHandler)
	s.app.Post("/analyze-audio", s.analyzeAudioHandler)
	s.app.Get("/history", s.historyHandler)
	s.app.Get("/analytics", s.analyticsHandler)

	// CRM API endpoints
	s.app.Post("/get_customer", s.getCustomerHandler)
	s.app.Post("/generate-summary", s.generateSummaryHandler)

	s.app.Get("/healthz", s.healthHandler)
}
