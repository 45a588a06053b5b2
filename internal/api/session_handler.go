package api

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/raghuvanshmani-code/MentorLink/internal/service"
)

type SessionHandler struct {
	sessionService service.SessionService
	validate       *validator.Validate
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		validate:       validator.New(),
	}
}

type CreateSessionRequest struct {
	MentorID string `json:"mentor_id" validate:"required"`
}

func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)

	if err != nil {
		slog.ErrorContext(c.UserContext(), "Error getting user ID from claims", slog.String("error", err.Error()))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	userName, err := GetUserNameFromClaims(c)

	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	var request CreateSessionRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	result, err := h.sessionService.CreateSession(c.Context(), request.MentorID, userID, userName)

	if err != nil {
		if errors.Is(err, service.ErrMentorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		slog.ErrorContext(c.UserContext(), "Error creating session", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create session"})
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *SessionHandler) ListMySessions(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)

	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	sessions, err := h.sessionService.ListUserSessions(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch sessions"})
	}

	return c.Status(fiber.StatusOK).JSON(sessions)
}

// GetSession answers 404 with one generic body whether the id is unknown or
// owned by someone else; the response does not say which.
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")

	userID, err := GetUserIDFromClaims(c)

	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	session, err := h.sessionService.GetSession(c.Context(), sessionID, userID)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Error getting session", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch session"})
	}
	if session == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	return c.Status(fiber.StatusOK).JSON(session)
}
