package server

import (
	"errors"
	"time"

	"mastermind/internal/calendar"
	"mastermind/internal/models"
	"mastermind/internal/observability"
	"mastermind/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type generateRequest struct {
	Config     *models.CalendarConfig `json:"config"`
	WeekNumber int                    `json:"weekNumber"`
}

type generateResponse struct {
	Success     bool                 `json:"success"`
	RunID       string               `json:"run_id"`
	Calendar    *models.WeekCalendar `json:"calendar"`
	WeekNumber  int                  `json:"weekNumber"`
	GeneratedAt time.Time            `json:"generatedAt"`
}

// GenerateCalendar handles POST /api/calendar/generate.
// weekNumber 0 (or absent) means the current week.
func (s *Server) GenerateCalendar(c *fiber.Ctx) error {
	return s.generate(c, "api", 0)
}

// generate runs one scheduling request. defaultWeek is used when the body
// does not name a week; the cron wrapper defaults to next week while the
// API defaults to the current one.
func (s *Server) generate(c *fiber.Ctx, trigger string, defaultWeek int) error {
	var req generateRequest
	req.WeekNumber = -1
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Config == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewConfigError("Config is required"))
	}
	if req.WeekNumber < 0 {
		req.WeekNumber = defaultWeek
	}

	if err := validation.ValidateConfig(req.Config); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	runID := uuid.NewString()
	span, ctx := observability.TraceGenerationRun(c.UserContext(), runID, req.WeekNumber)
	defer span.End()

	s.runLog.LogRunStart(ctx, runID, req.WeekNumber, req.Config.PostsPerWeek)

	cal, err := s.generator.SubsequentWeek(req.Config, req.WeekNumber)
	if err != nil {
		span.SetError(err)
		s.runLog.LogRunError(ctx, runID, err)

		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "CONFIG_INVALID" {
			return models.RespondWithError(c, fiber.StatusBadRequest, err)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	dropped := req.Config.PostsPerWeek - len(cal.Posts)
	s.runLog.LogRunEnd(ctx, runID, len(cal.Posts), len(cal.Comments), dropped)

	observability.CalendarsGenerated.WithLabelValues(trigger).Inc()
	observability.PostsScheduled.Add(float64(len(cal.Posts)))
	observability.CommentsScheduled.Add(float64(len(cal.Comments)))
	if dropped > 0 {
		observability.SlotsDropped.Add(float64(dropped))
	}
	observability.QualityScore.Observe(float64(calendar.Evaluate(cal, req.Config)))

	return c.JSON(generateResponse{
		Success:     true,
		RunID:       runID,
		Calendar:    cal,
		WeekNumber:  req.WeekNumber,
		GeneratedAt: time.Now().UTC(),
	})
}

type evaluateRequest struct {
	Config   *models.CalendarConfig `json:"config"`
	Calendar *models.WeekCalendar   `json:"calendar"`
}

// EvaluateCalendar handles POST /api/calendar/evaluate.
func (s *Server) EvaluateCalendar(c *fiber.Ctx) error {
	var req evaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Config == nil || req.Calendar == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Config and calendar are required"))
	}

	span, _ := observability.TraceEvaluation(c.UserContext())
	defer span.End()

	score := calendar.Evaluate(req.Calendar, req.Config)
	return c.JSON(fiber.Map{"score": score})
}
