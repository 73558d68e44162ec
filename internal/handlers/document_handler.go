package handlers

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-gap/internal/models"
	"alfredoptarigan/resume-gap/internal/services"
)

// resumeFormField is the multipart field carrying the résumé file.
const resumeFormField = "resume"

type DocumentHandler struct {
	parser      services.DocumentParser
	maxFileSize int64
}

func NewDocumentHandler(parser services.DocumentParser, maxFileSize int64) *DocumentHandler {
	return &DocumentHandler{
		parser:      parser,
		maxFileSize: maxFileSize,
	}
}

// HandleExtractResumeText handles POST /extract_resume_text
func (h *DocumentHandler) HandleExtractResumeText(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile(resumeFormField)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("multipart field %q is required", resumeFormField))
	}

	if fileHeader.Size > h.maxFileSize {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("resume file too large. Max size: %d bytes", h.maxFileSize))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, h.maxFileSize+1))
	if err != nil {
		return fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > h.maxFileSize {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("resume file too large. Max size: %d bytes", h.maxFileSize))
	}

	content, err := h.parser.ExtractText(data)
	switch {
	case errors.Is(err, services.ErrUnsupportedDocument):
		return fiber.NewError(fiber.StatusUnsupportedMediaType, err.Error())
	case err != nil:
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(models.ResumeTextResponse{
		ResumeText:  content.Text,
		PageCount:   content.PageCount,
		ContentType: content.ContentType,
	})
}
