package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-gap/internal/models"
	"alfredoptarigan/resume-gap/internal/services"
)

type SuggestionHandler struct {
	advisor services.AdvisorService
}

func NewSuggestionHandler(advisor services.AdvisorService) *SuggestionHandler {
	return &SuggestionHandler{
		advisor: advisor,
	}
}

// HandleSuggest handles POST /suggest
func (h *SuggestionHandler) HandleSuggest(c *fiber.Ctx) error {
	var req models.SuggestRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	suggestions, err := h.advisor.Suggest(c.UserContext(), models.Strings(req.MissingKeywords), *req.JDText, *req.ResumeText)
	if err != nil {
		return err
	}

	return c.JSON(models.SuggestionsResponse{Suggestions: suggestions})
}
