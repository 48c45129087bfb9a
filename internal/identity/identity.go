package identity

import (
	"errors"

	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the caller resolved from a verified bearer token. The
// fields are trusted verbatim; nothing here consults the store.
type Identity struct {
	ID    uint
	Role  models.Role
	Email string
	Name  string
}

var ErrNoIdentity = errors.New("no authenticated identity in context")

// FromContext extracts the Identity from the JWT the auth middleware
// already verified and stashed in context locals.
func FromContext(c *fiber.Ctx) (Identity, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Identity{}, ErrNoIdentity
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrNoIdentity
	}

	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return Identity{}, ErrNoIdentity
	}
	role, _ := claims["role"].(string)
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	return Identity{
		ID:    uint(sub),
		Role:  models.Role(role),
		Email: email,
		Name:  name,
	}, nil
}
