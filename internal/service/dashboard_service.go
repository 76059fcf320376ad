package service

import (
	"time"

	"stockemdia-backend/internal/model"
	"stockemdia-backend/internal/repository"

	"github.com/google/uuid"
)

// DashboardStats is the overview block shown on the dashboard. Values are
// recomputed from the full current collections on every read, nothing is
// cached.
type DashboardStats struct {
	TotalProducts       int   `json:"total_products"`
	TotalInventoryValue int64 `json:"total_inventory_value"`
	LowStockCount       int   `json:"low_stock_count"`
	TodaySales          int64 `json:"today_sales"`
}

type DashboardService interface {
	GetStats(accountID uuid.UUID) (*DashboardStats, error)
	GetStockMovement(accountID uuid.UUID, days int) ([]repository.StockMovementData, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
}

func NewDashboardService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository) DashboardService {
	return &dashboardService{productRepo: pRepo, txRepo: tRepo}
}

func (s *dashboardService) GetStats(accountID uuid.UUID) (*DashboardStats, error) {
	products, err := s.productRepo.FindAll(accountID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.txRepo.FindAll(accountID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalProducts:       len(products),
		TotalInventoryValue: TotalInventoryValue(products),
		LowStockCount:       LowStockCount(products),
		TodaySales:          SalesForDay(transactions, time.Now()),
	}, nil
}

func (s *dashboardService) GetStockMovement(accountID uuid.UUID, days int) ([]repository.StockMovementData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.txRepo.GetStockMovement(accountID, startDate, endDate)
}

// TotalInventoryValue is the sum of price times stock over the catalogue.
func TotalInventoryValue(products []model.Product) int64 {
	var total int64
	for _, p := range products {
		total += p.Price * int64(p.Stock)
	}
	return total
}

// LowStockCount counts products at or below their minimum threshold
// (stock == minStock counts as low).
func LowStockCount(products []model.Product) int {
	count := 0
	for _, p := range products {
		if p.IsLow() {
			count++
		}
	}
	return count
}

// SalesForDay sums the value of sales whose UTC calendar day matches day.
// Day boundaries are UTC everywhere, a movement near midnight lands on the
// same day for every reader regardless of server locale.
func SalesForDay(transactions []model.Transaction, day time.Time) int64 {
	y, m, d := day.UTC().Date()

	var total int64
	for _, t := range transactions {
		if t.Type != model.MovementOut {
			continue
		}
		ty, tm, td := t.CreatedAt.UTC().Date()
		if ty == y && tm == m && td == d {
			total += t.TotalValue
		}
	}
	return total
}
