package service_test

import (
	"testing"
	"time"

	"stockemdia-backend/internal/model"
	"stockemdia-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalInventoryValue(t *testing.T) {
	products := []model.Product{
		{Name: "Arroz", Price: 1200, Stock: 10},
		{Name: "Óleo", Price: 2500, Stock: 4},
		{Name: "Sabão", Price: 300, Stock: 0},
	}

	assert.Equal(t, int64(1200*10+2500*4), service.TotalInventoryValue(products))
}

func TestTotalInventoryValue_EmptyCatalogue(t *testing.T) {
	assert.Equal(t, int64(0), service.TotalInventoryValue(nil))
	assert.Equal(t, int64(0), service.TotalInventoryValue([]model.Product{}))
}

func TestLowStockCount_BoundaryInclusive(t *testing.T) {
	products := []model.Product{
		{Name: "abaixo", Stock: 2, MinStock: 10},
		{Name: "no limite", Stock: 10, MinStock: 10},
		{Name: "acima", Stock: 11, MinStock: 10},
	}

	assert.Equal(t, 2, service.LowStockCount(products))
	assert.Equal(t, 0, service.LowStockCount(nil))
}

func TestSalesForDay_SumsOnlyTodaysSales(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	transactions := []model.Transaction{
		// counted: OUT on the same UTC day
		{BaseModel: model.BaseModel{CreatedAt: day.Add(10 * time.Hour)}, Type: model.MovementOut, TotalValue: 5000},
		{BaseModel: model.BaseModel{CreatedAt: day.Add(23*time.Hour + 59*time.Minute)}, Type: model.MovementOut, TotalValue: 1500},
		// ignored: restock on the same day
		{BaseModel: model.BaseModel{CreatedAt: day.Add(12 * time.Hour)}, Type: model.MovementIn, TotalValue: 9999},
		// ignored: sale the day before
		{BaseModel: model.BaseModel{CreatedAt: day.Add(-1 * time.Minute)}, Type: model.MovementOut, TotalValue: 7777},
		// ignored: sale the day after
		{BaseModel: model.BaseModel{CreatedAt: day.Add(24 * time.Hour)}, Type: model.MovementOut, TotalValue: 8888},
	}

	assert.Equal(t, int64(6500), service.SalesForDay(transactions, day.Add(15*time.Hour)))
}

func TestSalesForDay_UsesUTCDayBoundaries(t *testing.T) {
	// 2026-09-01 23:30 UTC, which is already 2026-09-02 in UTC+1 (Luanda).
	// Day matching is UTC, so the sale still counts for September 1st.
	lateSale := time.Date(2026, 9, 1, 23, 30, 0, 0, time.UTC)
	transactions := []model.Transaction{
		{BaseModel: model.BaseModel{CreatedAt: lateSale}, Type: model.MovementOut, TotalValue: 1000},
	}

	luanda := time.FixedZone("WAT", 60*60)
	queryMoment := time.Date(2026, 9, 1, 12, 0, 0, 0, luanda)

	assert.Equal(t, int64(1000), service.SalesForDay(transactions, queryMoment))
}

func TestSalesForDay_EmptyLog(t *testing.T) {
	assert.Equal(t, int64(0), service.SalesForDay(nil, time.Now()))
}

func TestDashboardService_GetStats(t *testing.T) {
	accountID := uuid.New()
	productRepo := new(MockProductRepository)
	txRepo := new(MockTransactionRepository)
	svc := service.NewDashboardService(productRepo, txRepo)

	products := []model.Product{
		{Name: "Arroz", Price: 1200, Stock: 10, MinStock: 3},
		{Name: "Óleo", Price: 2500, Stock: 2, MinStock: 5},
	}
	transactions := []model.Transaction{
		{BaseModel: model.BaseModel{CreatedAt: time.Now().UTC()}, Type: model.MovementOut, TotalValue: 2500},
		{BaseModel: model.BaseModel{CreatedAt: time.Now().UTC().AddDate(0, 0, -2)}, Type: model.MovementOut, TotalValue: 9000},
	}

	productRepo.On("FindAll", accountID).Return(products, nil).Once()
	txRepo.On("FindAll", accountID).Return(transactions, nil).Once()

	stats, err := svc.GetStats(accountID)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, int64(1200*10+2500*2), stats.TotalInventoryValue)
	assert.Equal(t, 1, stats.LowStockCount)
	assert.Equal(t, int64(2500), stats.TodaySales)
	productRepo.AssertExpectations(t)
	txRepo.AssertExpectations(t)
}

func TestDashboardService_GetStats_EmptyLedger(t *testing.T) {
	accountID := uuid.New()
	productRepo := new(MockProductRepository)
	txRepo := new(MockTransactionRepository)
	svc := service.NewDashboardService(productRepo, txRepo)

	productRepo.On("FindAll", accountID).Return([]model.Product{}, nil).Once()
	txRepo.On("FindAll", accountID).Return([]model.Transaction{}, nil).Once()

	stats, err := svc.GetStats(accountID)

	require.NoError(t, err)
	assert.Equal(t, &service.DashboardStats{}, stats, "every metric is zero over empty collections")
}
