package dto

import (
	"time"

	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/models"
)

// ItemRequest carries one billed line as submitted by the client. Amount
// is deliberately untyped: numbers and numeric strings are coerced, any
// other value counts as zero.
type ItemRequest struct {
	Description string `json:"description"`
	Amount      any    `json:"amount"`
}

type CreateInvoiceRequest struct {
	PatientID uint          `json:"patient_id"`
	DoctorID  uint          `json:"doctor_id"`
	Items     []ItemRequest `json:"items"`
}

// UpdateInvoiceRequest replaces the full item list and the status; it is
// not a partial patch.
type UpdateInvoiceRequest struct {
	Items  []ItemRequest `json:"items"`
	Status string        `json:"status"`
}

// InvoiceResponse is a hydrated invoice: the stored row plus the
// referenced patient's and doctor's display fields resolved at read time.
// The display fields are omitted when the referenced user is missing.
type InvoiceResponse struct {
	ID           uint                 `json:"id"`
	PatientID    uint                 `json:"patient_id"`
	PatientName  *string              `json:"patient_name,omitempty"`
	PatientEmail *string              `json:"patient_email,omitempty"`
	DoctorID     uint                 `json:"doctor_id"`
	DoctorName   *string              `json:"doctor_name,omitempty"`
	DoctorEmail  *string              `json:"doctor_email,omitempty"`
	Items        []models.InvoiceItem `json:"items"`
	Total        float64              `json:"total"`
	Status       string               `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
