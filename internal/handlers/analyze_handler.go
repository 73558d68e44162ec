package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-gap/internal/models"
	"alfredoptarigan/resume-gap/internal/services"
)

type AnalysisHandler struct{}

func NewAnalysisHandler() *AnalysisHandler {
	return &AnalysisHandler{}
}

// HandleAnalyze handles POST /analyze. It never calls the model.
func (h *AnalysisHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	return c.JSON(services.Match(*req.ResumeText, models.Strings(req.JDKeywords)))
}
