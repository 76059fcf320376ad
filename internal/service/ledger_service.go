package service

import (
	"fmt"

	"stockemdia-backend/internal/apperrors"
	"stockemdia-backend/internal/model"
	"stockemdia-backend/internal/repository"
	"stockemdia-backend/internal/ws"
	"stockemdia-backend/pkg/validator"

	"github.com/google/uuid"
)

type LedgerService interface {
	CreateProduct(accountID uuid.UUID, req *model.Product) error
	ListProducts(accountID uuid.UUID, search string) ([]model.Product, error)
	GetProduct(accountID, id uuid.UUID) (*model.Product, error)
	ApplyMovement(accountID, productID uuid.UUID, quantity int, movementType model.MovementType) (*model.Transaction, error)
	ListTransactions(accountID uuid.UUID) ([]model.Transaction, error)
	GetTransaction(accountID, id uuid.UUID) (*model.Transaction, error)
}

type ledgerService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	wsHub           *ws.Hub
}

func NewLedgerService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository, hub *ws.Hub) LedgerService {
	return &ledgerService{
		productRepo:     pRepo,
		transactionRepo: tRepo,
		wsHub:           hub,
	}
}

func (s *ledgerService) CreateProduct(accountID uuid.UUID, req *model.Product) error {
	req.AccountID = accountID
	// Note: no cross-field check between Stock and MinStock. A product created
	// already below its minimum is the intended way to seed a restock alert.
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", apperrors.ErrValidation, firstErr.FailedField, firstErr.Tag)
	}

	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	s.wsHub.Notify("product_created", map[string]interface{}{
		"id":        req.ID,
		"name":      req.Name,
		"category":  req.Category,
		"stock":     req.Stock,
		"min_stock": req.MinStock,
		"price":     req.Price,
		"low":       req.IsLow(),
	})

	return nil
}

func (s *ledgerService) ListProducts(accountID uuid.UUID, search string) ([]model.Product, error) {
	if search != "" {
		return s.productRepo.Search(accountID, search)
	}
	return s.productRepo.FindAll(accountID)
}

func (s *ledgerService) GetProduct(accountID, id uuid.UUID) (*model.Product, error) {
	return s.productRepo.FindByID(accountID, id)
}

// ApplyMovement validates and applies exactly one stock movement. Check order:
// product resolution, then quantity, then the stock rule for sales. No state
// changes before all checks pass; the stock update and movement record are
// committed atomically by the repository.
func (s *ledgerService) ApplyMovement(accountID, productID uuid.UUID, quantity int, movementType model.MovementType) (*model.Transaction, error) {
	product, err := s.productRepo.FindByID(accountID, productID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		return nil, apperrors.ErrInvalidQuantity
	}

	if movementType != model.MovementIn && movementType != model.MovementOut {
		return nil, fmt.Errorf("%w: unknown movement type %q", apperrors.ErrValidation, movementType)
	}

	// Fast-path stock check. The repository re-checks under a row lock before
	// committing, this one just avoids opening a transaction doomed to fail.
	if _, ok := model.NextStock(product.Stock, quantity, movementType); !ok {
		return nil, apperrors.ErrInsufficientStock
	}

	record, err := s.transactionRepo.RecordMovement(accountID, productID, quantity, movementType)
	if err != nil {
		return nil, err
	}

	s.wsHub.Notify("movement_applied", map[string]interface{}{
		"transaction_id": record.ID,
		"product_id":     record.ProductID,
		"product_name":   record.ProductName,
		"movement":       record.Type,
		"quantity":       record.Quantity,
		"total_value":    record.TotalValue,
	})

	return record, nil
}

func (s *ledgerService) ListTransactions(accountID uuid.UUID) ([]model.Transaction, error) {
	return s.transactionRepo.FindAll(accountID)
}

func (s *ledgerService) GetTransaction(accountID, id uuid.UUID) (*model.Transaction, error) {
	return s.transactionRepo.FindByID(accountID, id)
}
