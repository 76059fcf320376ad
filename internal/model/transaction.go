package model

import "github.com/google/uuid"

type MovementType string

const (
	MovementIn  MovementType = "IN"  // restock
	MovementOut MovementType = "OUT" // sale
)

// Transaction is one immutable stock movement. The log is append-only:
// records are never updated or deleted, they are the audit trail.
type Transaction struct {
	BaseModel
	AccountID   uuid.UUID    `gorm:"type:uuid;not null;index" json:"account_id"`
	ProductID   uuid.UUID    `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	ProductName string       `gorm:"type:varchar(255);not null" json:"product_name"` // Snapshot, not a live reference
	Type        MovementType `gorm:"type:varchar(10);not null" json:"type" validate:"required,oneof=IN OUT"`
	Quantity    int          `gorm:"not null" json:"quantity" validate:"required,gt=0"` // Qty harus > 0
	TotalValue  int64        `gorm:"not null" json:"total_value"`                       // Snapshot price * quantity
}

// NextStock computes the stock level after applying a movement of qty units
// to a product holding stock units. A sale may never take stock below zero.
func NextStock(stock, qty int, t MovementType) (int, bool) {
	if t == MovementOut {
		if stock < qty {
			return stock, false
		}
		return stock - qty, true
	}
	// Restock has no upper bound.
	return stock + qty, true
}

// NewMovementRecord builds the transaction row for a movement against p,
// capturing the product name and pre-movement price.
func NewMovementRecord(p *Product, qty int, t MovementType) *Transaction {
	return &Transaction{
		AccountID:   p.AccountID,
		ProductID:   p.ID,
		ProductName: p.Name,
		Type:        t,
		Quantity:    qty,
		TotalValue:  p.Price * int64(qty),
	}
}
