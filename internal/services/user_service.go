package services

import (
	"fmt"

	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/dto"
	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/identity"
	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/models"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// ListByRole returns the directory entries for one role, ordered by
// name. Admins and receptionists may list any role; doctors only
// patients; patients nothing.
func (s *UserService) ListByRole(actor identity.Identity, role models.Role) ([]dto.UserResponse, error) {
	if role == "" {
		return nil, fmt.Errorf("%w: role query required", ErrInvalidPayload)
	}

	switch actor.Role {
	case models.RoleAdmin, models.RoleReceptionist:
	case models.RoleDoctor:
		if role != models.RolePatient {
			return nil, ErrForbidden
		}
	default:
		return nil, ErrForbidden
	}

	users, err := s.users.ListByRole(role)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role})
	}
	return out, nil
}
