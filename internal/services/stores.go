package services

import "github.com/Dwekulo/Afya-Dental-Care-Web/internal/models"

// UserStore is the persistence surface the services need for accounts.
// Lookups return (nil, nil) when no row matches.
type UserStore interface {
	Create(u *models.User) error
	ByID(id uint) (*models.User, error)
	ByEmail(email string) (*models.User, error)
	ListByRole(role models.Role) ([]models.User, error)
}

// InvoiceStore is the persistence surface for invoices. ByID returns
// (nil, nil) when no row matches; Delete reports whether a row was
// actually removed.
type InvoiceStore interface {
	Create(inv *models.Invoice) error
	ByID(id uint) (*models.Invoice, error)
	List() ([]models.Invoice, error)
	ListByDoctor(doctorID uint) ([]models.Invoice, error)
	ListByPatient(patientID uint) ([]models.Invoice, error)
	Update(inv *models.Invoice) error
	Delete(id uint) (bool, error)
}
