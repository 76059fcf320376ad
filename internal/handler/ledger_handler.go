package handler

import (
	"errors"

	"stockemdia-backend/internal/apperrors"
	"stockemdia-backend/internal/model"
	"stockemdia-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LedgerHandler struct {
	service service.LedgerService
}

func NewLedgerHandler(s service.LedgerService) *LedgerHandler {
	return &LedgerHandler{service: s}
}

// accountID reads the account UUID set by the auth middleware.
func accountID(c *fiber.Ctx) uuid.UUID {
	id := c.Locals("account_id")
	if id == nil {
		return uuid.Nil
	}
	parsed, err := uuid.Parse(id.(string))
	if err != nil {
		return uuid.Nil
	}
	return parsed
}

// movementStatus maps ledger errors onto HTTP statuses.
func movementStatus(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrProductNotFound):
		return 404
	case errors.Is(err, apperrors.ErrInvalidQuantity), errors.Is(err, apperrors.ErrValidation):
		return 400
	case errors.Is(err, apperrors.ErrInsufficientStock):
		return 409
	default:
		return 500
	}
}

// CreateProduct adds a product to the caller's catalogue
// POST /api/v1/products
func (h *LedgerHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateProduct(accountID(c), &product); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create product"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

// GetProducts lists the caller's catalogue, optionally filtered by name
// GET /api/v1/products?search=
func (h *LedgerHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(accountID(c), c.Query("search"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

// GetProduct fetches one product by ID
// GET /api/v1/products/:id
func (h *LedgerHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.GetProduct(accountID(c), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProductNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(product)
}

// MovementRequest represents one stock movement request body
type MovementRequest struct {
	ProductID uuid.UUID          `json:"product_id"`
	Quantity  int                `json:"quantity"`
	Type      model.MovementType `json:"type"`
}

// CreateMovement applies one stock movement (restock or sale)
// POST /api/v1/movements
func (h *LedgerHandler) CreateMovement(c *fiber.Ctx) error {
	var req MovementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	record, err := h.service.ApplyMovement(accountID(c), req.ProductID, req.Quantity, req.Type)
	if err != nil {
		return c.Status(movementStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Movement recorded", "data": record})
}

// GetTransactions lists the caller's movement log, most recent first
// GET /api/v1/transactions
func (h *LedgerHandler) GetTransactions(c *fiber.Ctx) error {
	transactions, err := h.service.ListTransactions(accountID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(transactions)
}

// GetTransaction fetches one movement record by ID
// GET /api/v1/transactions/:id
func (h *LedgerHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	tx, err := h.service.GetTransaction(accountID(c), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(tx)
}
