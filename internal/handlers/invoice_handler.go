package handlers

import (
	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/dto"
	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/services"
	"github.com/gofiber/fiber/v2"
)

type InvoiceHandler struct {
	invoiceService *services.InvoiceService
}

func NewInvoiceHandler(invoiceService *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	actor, ok := caller(c)
	if !ok {
		return nil
	}

	resp, err := h.invoiceService.List(actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	actor, ok := caller(c)
	if !ok {
		return nil
	}

	id := invoiceID(c)
	if id == 0 {
		return respondError(c, services.ErrNotFound)
	}

	resp, err := h.invoiceService.Get(actor, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	actor, ok := caller(c)
	if !ok {
		return nil
	}

	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
	}

	resp, err := h.invoiceService.Create(actor, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	actor, ok := caller(c)
	if !ok {
		return nil
	}

	id := invoiceID(c)
	if id == 0 {
		return respondError(c, services.ErrNotFound)
	}

	var req dto.UpdateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
	}

	resp, err := h.invoiceService.Update(actor, id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	actor, ok := caller(c)
	if !ok {
		return nil
	}

	deleted, err := h.invoiceService.Delete(actor, invoiceID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeleteResponse{Deleted: deleted})
}

// invoiceID parses the :id path param. A malformed id behaves like an
// id that matches no row.
func invoiceID(c *fiber.Ctx) uint {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0
	}
	return uint(id)
}
