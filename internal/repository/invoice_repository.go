package repository

import (
	"errors"

	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/models"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(inv *models.Invoice) error {
	return r.db.Create(inv).Error
}

func (r *InvoiceRepository) ByID(id uint) (*models.Invoice, error) {
	var inv models.Invoice
	if err := r.db.First(&inv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) List() ([]models.Invoice, error) {
	var rows []models.Invoice
	if err := r.db.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *InvoiceRepository) ListByDoctor(doctorID uint) ([]models.Invoice, error) {
	var rows []models.Invoice
	if err := r.db.Where("doctor_id = ?", doctorID).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *InvoiceRepository) ListByPatient(patientID uint) ([]models.Invoice, error) {
	var rows []models.Invoice
	if err := r.db.Where("patient_id = ?", patientID).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update persists items, total and status only; the parties on the
// invoice are immutable.
func (r *InvoiceRepository) Update(inv *models.Invoice) error {
	return r.db.Model(inv).Updates(map[string]interface{}{
		"items":  inv.Items,
		"total":  inv.Total,
		"status": inv.Status,
	}).Error
}

func (r *InvoiceRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Invoice{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
