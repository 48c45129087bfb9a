package models

import (
	"time"

	"gorm.io/datatypes"
)

// InvoiceItem is a single billed line. Items are stored canonicalized
// (amounts already coerced to numbers) inside the invoice's JSONB column.
type InvoiceItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Invoice is the authoritative billing record. Total is always the
// server-computed sum of the item amounts; PatientID and DoctorID are set
// once at creation and never change.
type Invoice struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	PatientID uint           `gorm:"not null;index" json:"patient_id"`
	DoctorID  uint           `gorm:"not null;index" json:"doctor_id"`
	Items     datatypes.JSON `gorm:"type:jsonb;not null" json:"items"`
	Total     float64        `gorm:"not null" json:"total"`
	Status    string         `gorm:"size:50;not null;default:'unpaid'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}
