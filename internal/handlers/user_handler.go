package handlers

import (
	"strings"

	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/models"
	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles GET /users?role=<role>.
func (h *UserHandler) List(c *fiber.Ctx) error {
	actor, ok := caller(c)
	if !ok {
		return nil
	}

	role := models.Role(strings.TrimSpace(c.Query("role")))
	resp, err := h.userService.ListByRole(actor, role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
