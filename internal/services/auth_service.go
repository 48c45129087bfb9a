package services

import (
	"fmt"
	"time"

	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/config"
	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/dto"
	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/identity"
	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users UserStore
	cfg   *config.Config
}

func NewAuthService(users UserStore, cfg *config.Config) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password required", ErrInvalidPayload)
	}

	user, err := s.users.ByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("login lookup: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.SignToken(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	}, nil
}

// Register creates a new account. Only admins may call it.
func (s *AuthService) Register(actor identity.Identity, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if actor.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}
	if req.Email == "" || req.Name == "" || req.Password == "" || req.Role == "" {
		return nil, fmt.Errorf("%w: missing fields", ErrInvalidPayload)
	}
	if !req.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidPayload, req.Role)
	}

	existing, err := s.users.ByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("register lookup: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hash),
		Role:     req.Role,
	}
	if err := s.users.Create(&user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &dto.UserResponse{ID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role}, nil
}

// SignToken issues the bearer credential encoding {sub, role, email,
// name} with the configured fixed expiry.
func (s *AuthService) SignToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"role":  string(user.Role),
		"email": user.Email,
		"name":  user.Name,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
