package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/raghuvanshmani-code/MentorLink/internal/service"
)

type MentorHandler struct {
	mentorService service.MentorService
}

func NewMentorHandler(mentorService service.MentorService) *MentorHandler {
	return &MentorHandler{mentorService: mentorService}
}

func (h *MentorHandler) ListMentors(c *fiber.Ctx) error {
	mentors, err := h.mentorService.ListMentors(c.Context())

	if err != nil {
		slog.ErrorContext(c.UserContext(), "Error listing mentors", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch mentors"})
	}

	return c.Status(fiber.StatusOK).JSON(mentors)
}
