package handler

import (
	"strconv"

	"stockemdia-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service  service.DashboardService
	ledger   service.LedgerService
	advisory service.AdvisoryService
}

func NewDashboardHandler(s service.DashboardService, ledger service.LedgerService, advisory service.AdvisoryService) *DashboardHandler {
	return &DashboardHandler{service: s, ledger: ledger, advisory: advisory}
}

// GetStats returns overview statistics (inventory value, low stock, today's sales)
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(accountID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}

	return c.JSON(stats)
}

// GetStockMovement returns per-day inbound/outbound data for charts
// Query params: days (default 7)
func (h *DashboardHandler) GetStockMovement(c *fiber.Ctx) error {
	daysStr := c.Query("days", "7")
	days, err := strconv.Atoi(daysStr)
	if err != nil || days <= 0 {
		days = 7
	}

	data, err := h.service.GetStockMovement(accountID(c), days)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stock movement"})
	}

	return c.JSON(fiber.Map{
		"period": days,
		"data":   data,
	})
}

// GetInsights returns the advisory blurb for the caller's inventory.
// Always answers 200: advisory failures degrade to a fallback message.
// GET /api/v1/dashboard/insights
func (h *DashboardHandler) GetInsights(c *fiber.Ctx) error {
	products, err := h.ledger.ListProducts(accountID(c), "")
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"insight": h.advisory.StockInsights(products)})
}
