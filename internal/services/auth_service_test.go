package services

import (
	"testing"
	"time"

	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/config"
	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/dto"
	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/identity"
	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
}

func newAuthFixture(t *testing.T) (*AuthService, *memoryUserStore, identity.Identity) {
	t.Helper()
	users := newMemoryUserStore()
	svc := NewAuthService(users, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := models.User{Email: "admin@clinic.local", Name: "Admin", Password: string(hash), Role: models.RoleAdmin}
	require.NoError(t, users.Create(&admin))

	return svc, users, identity.Identity{ID: admin.ID, Role: admin.Role, Email: admin.Email, Name: admin.Name}
}

func TestLogin(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	resp, err := svc.Login(&dto.LoginRequest{Email: "admin@clinic.local", Password: "admin12345"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, models.RoleAdmin, resp.User.Role)
	require.Equal(t, "admin@clinic.local", resp.User.Email)
}

func TestLoginFailures(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Login(&dto.LoginRequest{Email: "admin@clinic.local", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@clinic.local", Password: "whatever"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "admin@clinic.local"})
	require.ErrorIs(t, err, ErrInvalidPayload)
}

func TestTokenCarriesIdentityClaims(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	resp, err := svc.Login(&dto.LoginRequest{Email: "admin@clinic.local", Password: "admin12345"})
	require.NoError(t, err)

	parsed, err := jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	require.Equal(t, float64(resp.User.ID), claims["sub"])
	require.Equal(t, "admin", claims["role"])
	require.Equal(t, "admin@clinic.local", claims["email"])
	require.Equal(t, "Admin", claims["name"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, time.Minute)
}

func TestRegisterAdminOnly(t *testing.T) {
	svc, _, admin := newAuthFixture(t)

	req := &dto.RegisterRequest{Email: "doc@clinic.local", Name: "Dr. New", Password: "secret123", Role: models.RoleDoctor}

	for _, role := range []models.Role{models.RoleDoctor, models.RolePatient, models.RoleReceptionist} {
		_, err := svc.Register(identity.Identity{ID: 42, Role: role}, req)
		require.ErrorIs(t, err, ErrForbidden, "role %s", role)
	}

	created, err := svc.Register(admin, req)
	require.NoError(t, err)
	require.Equal(t, models.RoleDoctor, created.Role)
	require.NotZero(t, created.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, admin := newAuthFixture(t)

	req := &dto.RegisterRequest{Email: "dup@clinic.local", Name: "Dup", Password: "secret123", Role: models.RolePatient}
	_, err := svc.Register(admin, req)
	require.NoError(t, err)

	_, err = svc.Register(admin, req)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, admin := newAuthFixture(t)

	cases := []dto.RegisterRequest{
		{Name: "No Email", Password: "x", Role: models.RolePatient},
		{Email: "a@b.c", Password: "x", Role: models.RolePatient},
		{Email: "a@b.c", Name: "No Password", Role: models.RolePatient},
		{Email: "a@b.c", Name: "No Role", Password: "x"},
		{Email: "a@b.c", Name: "Bad Role", Password: "x", Role: "superuser"},
	}
	for _, req := range cases {
		_, err := svc.Register(admin, &req)
		require.ErrorIs(t, err, ErrInvalidPayload)
	}
}

func TestRegisteredUserCanLogin(t *testing.T) {
	svc, _, admin := newAuthFixture(t)

	_, err := svc.Register(admin, &dto.RegisterRequest{
		Email: "pat@clinic.local", Name: "Pat", Password: "patient12345", Role: models.RolePatient,
	})
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: "pat@clinic.local", Password: "patient12345"})
	require.NoError(t, err)
	require.Equal(t, models.RolePatient, resp.User.Role)
}
