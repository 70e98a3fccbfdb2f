package server

import (
	"errors"
	"time"

	"mastermind/internal/intake"
	"mastermind/internal/models"

	"github.com/gofiber/fiber/v2"
)

type intakeDraftRequest struct {
	Config *models.CalendarConfig `json:"config"`
	intake.DraftRequest
}

// IntakeDraft handles POST /api/intake/draft. Gated by the intake feature
// flag; drafts a reply comment for a live post using a configured persona.
func (s *Server) IntakeDraft(c *fiber.Ctx) error {
	var req intakeDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	draft, err := intake.BuildDraftComment(req.Config, req.DraftRequest)
	if err != nil {
		status := fiber.StatusInternalServerError
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			switch appErr.Code {
			case "CONFIG_INVALID", "VALIDATION_ERROR":
				status = fiber.StatusBadRequest
			case "NOT_FOUND":
				status = fiber.StatusNotFound
			}
		}
		return models.RespondWithError(c, status, err)
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"draft":     draft,
		"persona":   req.PersonaUsername,
		"subreddit": req.Subreddit,
		"draftedAt": time.Now().UTC(),
	})
}
