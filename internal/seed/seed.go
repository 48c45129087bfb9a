package seed

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type account struct {
	email    string
	name     string
	password string
	role     models.Role
}

var demoAccounts = []account{
	{"admin@clinic.local", "Admin", "admin12345", models.RoleAdmin},
	{"doctor@clinic.local", "Dr. John Doe", "doctor12345", models.RoleDoctor},
	{"receptionist@clinic.local", "Reception", "receptionist123", models.RoleReceptionist},
	{"patient@clinic.local", "Jane Patient", "patient12345", models.RolePatient},
}

// DemoAccounts provisions one account per role if it does not already
// exist. Safe to run on every startup.
func DemoAccounts(db *gorm.DB) error {
	for _, a := range demoAccounts {
		var existing models.User
		err := db.First(&existing, "email = ?", a.email).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("seed lookup %s: %w", a.email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed hash %s: %w", a.email, err)
		}

		user := models.User{
			Email:    a.email,
			Name:     a.name,
			Password: string(hash),
			Role:     a.role,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("seed create %s: %w", a.email, err)
		}
		slog.Info("seeded account", "role", a.role, "email", a.email)
	}
	return nil
}
