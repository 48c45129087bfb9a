package services

import (
	"sort"
	"sync"
	"time"

	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/models"
)

// In-memory stores standing in for the GORM repositories. They mirror
// the store contracts exactly: lookups return (nil, nil) on miss, lists
// come back ordered the same way the SQL implementations order them.

type memoryUserStore struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	nextID uint
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: make(map[uint]*models.User), nextID: 1}
}

func (s *memoryUserStore) Create(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextID
	s.nextID++
	u.CreatedAt = time.Now()
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *memoryUserStore) ByID(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *memoryUserStore) ByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memoryUserStore) ListByRole(role models.Role) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.User
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memoryUserStore) delete(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

type memoryInvoiceStore struct {
	mu       sync.Mutex
	invoices map[uint]*models.Invoice
	nextID   uint
}

func newMemoryInvoiceStore() *memoryInvoiceStore {
	return &memoryInvoiceStore{invoices: make(map[uint]*models.Invoice), nextID: 1}
}

func (s *memoryInvoiceStore) Create(inv *models.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv.ID = s.nextID
	s.nextID++
	inv.CreatedAt = time.Now()
	cp := *inv
	s.invoices[inv.ID] = &cp
	return nil
}

func (s *memoryInvoiceStore) ByID(id uint) (*models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (s *memoryInvoiceStore) List() ([]models.Invoice, error) {
	return s.listWhere(func(*models.Invoice) bool { return true })
}

func (s *memoryInvoiceStore) ListByDoctor(doctorID uint) ([]models.Invoice, error) {
	return s.listWhere(func(inv *models.Invoice) bool { return inv.DoctorID == doctorID })
}

func (s *memoryInvoiceStore) ListByPatient(patientID uint) ([]models.Invoice, error) {
	return s.listWhere(func(inv *models.Invoice) bool { return inv.PatientID == patientID })
}

func (s *memoryInvoiceStore) listWhere(match func(*models.Invoice) bool) ([]models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Invoice
	for _, inv := range s.invoices {
		if match(inv) {
			out = append(out, *inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *memoryInvoiceStore) Update(inv *models.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.invoices[inv.ID]
	if !ok {
		return nil
	}
	stored.Items = inv.Items
	stored.Total = inv.Total
	stored.Status = inv.Status
	return nil
}

func (s *memoryInvoiceStore) Delete(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.invoices[id]
	delete(s.invoices, id)
	return ok, nil
}
