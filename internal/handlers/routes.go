package handlers

import "github.com/gofiber/fiber/v2"

type Handlers struct {
	Keywords    *KeywordHandler
	Analysis    *AnalysisHandler
	Suggestions *SuggestionHandler
	Documents   *DocumentHandler
}

// Endpoints lists the public routes, in registration order.
var Endpoints = []string{
	"POST /extract_keywords",
	"POST /analyze",
	"POST /suggest",
	"POST /extract_resume_text",
	"GET /health",
}

// Register mounts the API routes on r.
func Register(r fiber.Router, h Handlers) {
	r.Post("/extract_keywords", h.Keywords.HandleExtractKeywords)
	r.Post("/analyze", h.Analysis.HandleAnalyze)
	r.Post("/suggest", h.Suggestions.HandleSuggest)
	r.Post("/extract_resume_text", h.Documents.HandleExtractResumeText)
}
