package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-gap/internal/models"
	"alfredoptarigan/resume-gap/internal/services"
)

type KeywordHandler struct {
	advisor services.AdvisorService
}

func NewKeywordHandler(advisor services.AdvisorService) *KeywordHandler {
	return &KeywordHandler{
		advisor: advisor,
	}
}

// HandleExtractKeywords handles POST /extract_keywords
func (h *KeywordHandler) HandleExtractKeywords(c *fiber.Ctx) error {
	var req models.ExtractKeywordsRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	keywords, err := h.advisor.ExtractKeywords(c.UserContext(), *req.JDText)
	if err != nil {
		return err
	}

	return c.JSON(models.KeywordsResponse{Keywords: keywords})
}
