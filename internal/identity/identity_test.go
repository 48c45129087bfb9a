package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, locals any) (Identity, error) {
	t.Helper()
	var (
		got    Identity
		gotErr error
	)
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if locals != nil {
			c.Locals("user", locals)
		}
		got, gotErr = FromContext(c)
		return nil
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return got, gotErr
}

func TestFromContext(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   float64(7),
		"role":  "doctor",
		"email": "doe@clinic.local",
		"name":  "Dr. Doe",
	})

	id, err := resolve(t, token)
	require.NoError(t, err)
	require.Equal(t, Identity{ID: 7, Role: models.RoleDoctor, Email: "doe@clinic.local", Name: "Dr. Doe"}, id)
}

func TestFromContextRejectsMissingToken(t *testing.T) {
	_, err := resolve(t, nil)
	require.ErrorIs(t, err, ErrNoIdentity)
}

func TestFromContextRejectsMalformedClaims(t *testing.T) {
	// A token whose claims carry no usable subject.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "doctor"})
	_, err := resolve(t, token)
	require.ErrorIs(t, err, ErrNoIdentity)
}
