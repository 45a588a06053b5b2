package api

import (
	"github.com/gofiber/fiber/v2"
	jwtv5 "github.com/golang-jwt/jwt/v5"

	"github.com/raghuvanshmani-code/MentorLink/internal/jwt"
	"github.com/raghuvanshmani-code/MentorLink/internal/model"
)

// AuthHandler is a login stub. A real identity provider sits behind this
// surface eventually; for now every login signs a token for the demo
// account.
type AuthHandler struct {
	demoUser *model.User
}

func NewAuthHandler(demoUser *model.User) *AuthHandler {
	return &AuthHandler{demoUser: demoUser}
}

type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	User        model.User `json:"user"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	token, err := jwt.GenerateToken(h.demoUser)

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not issue token"})
	}

	return c.Status(fiber.StatusOK).JSON(LoginResponse{
		AccessToken: token,
		User:        *h.demoUser,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := c.Locals("userClaims").(jwtv5.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	user := model.User{}
	if sub, ok := claims["sub"].(string); ok {
		user.ID = sub
	}
	if name, ok := claims["name"].(string); ok {
		user.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}

	return c.Status(fiber.StatusOK).JSON(user)
}
