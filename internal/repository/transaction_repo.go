package repository

import (
	"errors"
	"time"

	"stockemdia-backend/internal/apperrors"
	"stockemdia-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	RecordMovement(accountID, productID uuid.UUID, quantity int, movementType model.MovementType) (*model.Transaction, error)
	FindAll(accountID uuid.UUID) ([]model.Transaction, error)
	FindByID(accountID, id uuid.UUID) (*model.Transaction, error)
	GetStockMovement(accountID uuid.UUID, startDate, endDate time.Time) ([]StockMovementData, error)
}

// StockMovementData untuk chart data
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

// RecordMovement applies one stock movement as a single database transaction:
// the product row is locked, the stock rule re-checked under the lock, and the
// stock update plus the movement record commit together or not at all.
func (r *transactionRepo) RecordMovement(accountID, productID uuid.UUID, quantity int, movementType model.MovementType) (*model.Transaction, error) {
	var record *model.Transaction

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		// Cari & Lock Product (Pessimistic Locking)
		if err := tx.Set("gorm:query_option", "FOR UPDATE").
			First(&product, "id = ? AND account_id = ?", productID, accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProductNotFound
			}
			return err
		}

		newStock, ok := model.NextStock(product.Stock, quantity, movementType)
		if !ok {
			return apperrors.ErrInsufficientStock
		}

		// Update Stok Product (UpdatedAt is bumped by GORM)
		if err := tx.Model(&model.Product{}).
			Where("id = ?", product.ID).
			Update("stock", newStock).Error; err != nil {
			return err
		}

		// Simpan Log Transaksi (snapshot of name and pre-movement price)
		record = model.NewMovementRecord(&product, quantity, movementType)
		return tx.Create(record).Error
	})

	if err != nil {
		return nil, err
	}
	return record, nil
}

// FindAll returns the account's movement log, most recent first.
func (r *transactionRepo) FindAll(accountID uuid.UUID) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Where("account_id = ?", accountID).Order("created_at DESC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(accountID, id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.First(&transaction, "id = ? AND account_id = ?", id, accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

// GetStockMovement aggregates inbound/outbound quantities per day for charts.
func (r *transactionRepo) GetStockMovement(accountID uuid.UUID, startDate, endDate time.Time) ([]StockMovementData, error) {
	var results []StockMovementData

	rows, err := r.db.Model(&model.Transaction{}).
		Select(`
			DATE(created_at) as date,
			COALESCE(SUM(CASE WHEN type = 'IN' THEN quantity ELSE 0 END), 0) as inbound,
			COALESCE(SUM(CASE WHEN type = 'OUT' THEN quantity ELSE 0 END), 0) as outbound
		`).
		Where("account_id = ? AND created_at BETWEEN ? AND ?", accountID, startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		if err := rows.Scan(&data.Date, &data.Inbound, &data.Outbound); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}
