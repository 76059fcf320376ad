package service_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockemdia-backend/internal/model"
	"stockemdia-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

const fallbackMessage = "Mantenha o controlo das suas vendas para garantir lucros no final do mês."

func advisoryClient(t *testing.T, handler http.HandlerFunc) service.AdvisoryService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return service.NewAdvisoryServiceWithEndpoint("test-key", srv.URL, &http.Client{Timeout: 2 * time.Second})
}

func sampleProducts() []model.Product {
	return []model.Product{
		{Name: "Fuba", Stock: 2, MinStock: 10, Price: 1500},
		{Name: "Sumo", Stock: 40, MinStock: 5, Price: 600},
	}
}

func TestStockInsights_ReturnsModelText(t *testing.T) {
	svc := advisoryClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Reponha a Fuba com urgência."}]}}]}`))
	})

	insight := svc.StockInsights(sampleProducts())

	assert.Equal(t, "Reponha a Fuba com urgência.", insight)
}

func TestStockInsights_FallsBackOnServerError(t *testing.T) {
	svc := advisoryClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	assert.Equal(t, fallbackMessage, svc.StockInsights(sampleProducts()))
}

func TestStockInsights_FallsBackOnMalformedBody(t *testing.T) {
	svc := advisoryClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})

	assert.Equal(t, fallbackMessage, svc.StockInsights(sampleProducts()))
}

func TestStockInsights_FallsBackOnEmptyCandidates(t *testing.T) {
	svc := advisoryClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	assert.Equal(t, fallbackMessage, svc.StockInsights(sampleProducts()))
}

func TestStockInsights_FallsBackWhenUnreachable(t *testing.T) {
	// Closed server: the request itself fails, the caller still gets text.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()
	svc := service.NewAdvisoryServiceWithEndpoint("test-key", url, &http.Client{Timeout: time.Second})

	assert.Equal(t, fallbackMessage, svc.StockInsights(sampleProducts()))
}

func TestStockInsights_FallsBackWithoutAPIKey(t *testing.T) {
	svc := service.NewAdvisoryServiceWithEndpoint("", "http://127.0.0.1:1", &http.Client{Timeout: time.Second})

	assert.Equal(t, fallbackMessage, svc.StockInsights(sampleProducts()))
}

func TestStockInsights_EmptyCatalogueHint(t *testing.T) {
	called := false
	svc := advisoryClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	insight := svc.StockInsights(nil)

	assert.Equal(t, "Adicione o seu primeiro produto para receber conselhos estratégicos.", insight)
	assert.False(t, called, "no outbound call for an empty catalogue")
}
