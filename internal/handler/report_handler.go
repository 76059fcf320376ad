package handler

import (
	"stockemdia-backend/internal/model"
	"stockemdia-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetInventoryReport renders the caller's inventory and movement log as PDF
// GET /api/v1/reports/inventory
func (h *ReportHandler) GetInventoryReport(c *fiber.Ctx) error {
	account := model.AccountResponse{
		Name:         c.Locals("account_name").(string),
		BusinessName: c.Locals("business_name").(string),
	}

	pdf, err := h.service.InventoryReport(accountID(c), &account)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build report"})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="stockemdia-relatorio.pdf"`)
	return c.Send(pdf)
}
