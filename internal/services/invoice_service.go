package services

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/dto"
	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/identity"
	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/models"
	"gorm.io/datatypes"
)

// InvoiceService is the permission engine: every operation is checked
// against the role/operation/ownership matrix before the store is
// touched, and the invoice total is always recomputed server-side.
type InvoiceService struct {
	invoices InvoiceStore
	users    UserStore
}

func NewInvoiceService(invoices InvoiceStore, users UserStore) *InvoiceService {
	return &InvoiceService{invoices: invoices, users: users}
}

// List returns the invoices the caller may see: staff see everything,
// doctors and patients only their own.
func (s *InvoiceService) List(actor identity.Identity) ([]dto.InvoiceResponse, error) {
	var (
		rows []models.Invoice
		err  error
	)
	switch actor.Role {
	case models.RoleAdmin, models.RoleReceptionist:
		rows, err = s.invoices.List()
	case models.RoleDoctor:
		rows, err = s.invoices.ListByDoctor(actor.ID)
	case models.RolePatient:
		rows, err = s.invoices.ListByPatient(actor.ID)
	default:
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	out := make([]dto.InvoiceResponse, 0, len(rows))
	for i := range rows {
		resp, err := s.hydrate(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Get fetches one invoice. Existence is checked before ownership, so a
// missing id is a 404 for every role.
func (s *InvoiceService) Get(actor identity.Identity, id uint) (*dto.InvoiceResponse, error) {
	inv, err := s.invoices.ByID(id)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if inv == nil {
		return nil, ErrNotFound
	}
	if !canRead(actor, inv) {
		return nil, ErrForbidden
	}
	return s.hydrate(inv)
}

// Create issues a new invoice with status "unpaid". Doctors always
// create under their own id, overriding any client-supplied doctor_id.
func (s *InvoiceService) Create(actor identity.Identity, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	switch actor.Role {
	case models.RoleAdmin, models.RoleReceptionist, models.RoleDoctor:
	default:
		return nil, ErrForbidden
	}

	doctorID := req.DoctorID
	if actor.Role == models.RoleDoctor {
		doctorID = actor.ID
	}
	if req.PatientID == 0 || doctorID == 0 || len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: patient_id, doctor_id and items required", ErrInvalidPayload)
	}

	items, total := canonicalize(req.Items)
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}

	inv := models.Invoice{
		PatientID: req.PatientID,
		DoctorID:  doctorID,
		Items:     datatypes.JSON(raw),
		Total:     total,
		Status:    "unpaid",
	}
	if err := s.invoices.Create(&inv); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return s.hydrate(&inv)
}

// Update replaces the full item list and status of an existing invoice.
// patient_id and doctor_id never change; ownership for doctors is
// evaluated against the stored doctor_id.
func (s *InvoiceService) Update(actor identity.Identity, id uint, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := s.invoices.ByID(id)
	if err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	if inv == nil {
		return nil, ErrNotFound
	}
	if !canMutate(actor, inv) {
		return nil, ErrForbidden
	}
	if len(req.Items) == 0 || req.Status == "" {
		return nil, fmt.Errorf("%w: items and status required", ErrInvalidPayload)
	}

	items, total := canonicalize(req.Items)
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}

	inv.Items = datatypes.JSON(raw)
	inv.Total = total
	inv.Status = req.Status
	if err := s.invoices.Update(inv); err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return s.hydrate(inv)
}

// Delete removes an invoice. Admin only; deleting an absent id reports
// deleted=false rather than an error.
func (s *InvoiceService) Delete(actor identity.Identity, id uint) (bool, error) {
	if actor.Role != models.RoleAdmin {
		return false, ErrForbidden
	}
	deleted, err := s.invoices.Delete(id)
	if err != nil {
		return false, fmt.Errorf("delete invoice: %w", err)
	}
	return deleted, nil
}

func canRead(actor identity.Identity, inv *models.Invoice) bool {
	switch actor.Role {
	case models.RoleAdmin, models.RoleReceptionist:
		return true
	case models.RoleDoctor:
		return inv.DoctorID == actor.ID
	case models.RolePatient:
		return inv.PatientID == actor.ID
	}
	return false
}

func canMutate(actor identity.Identity, inv *models.Invoice) bool {
	switch actor.Role {
	case models.RoleAdmin, models.RoleReceptionist:
		return true
	case models.RoleDoctor:
		return inv.DoctorID == actor.ID
	}
	return false
}

// canonicalize coerces the submitted items into their stored form and
// returns them together with the authoritative total.
func canonicalize(reqItems []dto.ItemRequest) ([]models.InvoiceItem, float64) {
	items := make([]models.InvoiceItem, 0, len(reqItems))
	var total float64
	for _, it := range reqItems {
		amount := coerceAmount(it.Amount)
		items = append(items, models.InvoiceItem{Description: it.Description, Amount: amount})
		total += amount
	}
	return items, total
}

// coerceAmount applies the lenient numeric policy: JSON numbers and
// numeric strings are accepted, anything else contributes 0.
func coerceAmount(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// hydrate joins the patient's and doctor's display fields onto the row.
// A missing user leaves its fields unset instead of failing the read.
func (s *InvoiceService) hydrate(inv *models.Invoice) (*dto.InvoiceResponse, error) {
	resp := dto.InvoiceResponse{
		ID:        inv.ID,
		PatientID: inv.PatientID,
		DoctorID:  inv.DoctorID,
		Items:     decodeItems(inv.Items),
		Total:     inv.Total,
		Status:    inv.Status,
		CreatedAt: inv.CreatedAt,
	}

	patient, err := s.users.ByID(inv.PatientID)
	if err != nil {
		return nil, fmt.Errorf("hydrate patient: %w", err)
	}
	if patient != nil {
		resp.PatientName = &patient.Name
		resp.PatientEmail = &patient.Email
	}

	doctor, err := s.users.ByID(inv.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("hydrate doctor: %w", err)
	}
	if doctor != nil {
		resp.DoctorName = &doctor.Name
		resp.DoctorEmail = &doctor.Email
	}

	return &resp, nil
}

func decodeItems(raw datatypes.JSON) []models.InvoiceItem {
	var items []models.InvoiceItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return []models.InvoiceItem{}
	}
	return items
}
