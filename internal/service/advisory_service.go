package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"stockemdia-backend/internal/model"
)

// Advisory text is enrichment only: any failure of the hosted model (timeout,
// bad status, malformed body, missing key) degrades to a fixed message and is
// never surfaced to the caller.
const (
	insightFallback   = "Mantenha o controlo das suas vendas para garantir lucros no final do mês."
	insightNoProducts = "Adicione o seu primeiro produto para receber conselhos estratégicos."

	geminiModel        = "gemini-2.0-flash"
	advisorInstruction = "Você é o 'Stock em Dia IA', um consultor especialista no mercado retalhista de Angola. Seu objetivo é ajudar pequenos comerciantes a prosperar garantindo que o seu stock esteja sempre equilibrado."
)

type AdvisoryService interface {
	StockInsights(products []model.Product) string
}

type advisoryService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewAdvisoryService() AdvisoryService {
	return &advisoryService{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		baseURL: "https://generativelanguage.googleapis.com",
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// NewAdvisoryServiceWithEndpoint points the client at a custom host, used in tests.
func NewAdvisoryServiceWithEndpoint(apiKey, baseURL string, client *http.Client) AdvisoryService {
	return &advisoryService{apiKey: apiKey, baseURL: baseURL, client: client}
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenCfg   `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenCfg struct {
	Temperature float64 `json:"temperature"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type stockSummary struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
	Min   int    `json:"min"`
	Price int64  `json:"price"`
}

func (s *advisoryService) StockInsights(products []model.Product) string {
	if len(products) == 0 {
		return insightNoProducts
	}
	if s.apiKey == "" {
		return insightFallback
	}

	summary := make([]stockSummary, len(products))
	for i, p := range products {
		summary[i] = stockSummary{Name: p.Name, Stock: p.Stock, Min: p.MinStock, Price: p.Price}
	}
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		log.Printf("advisory: failed to build stock summary: %v", err)
		return insightFallback
	}

	prompt := fmt.Sprintf(`Analise este inventário de uma loja em Angola: %s.
Forneça 3 conselhos estratégicos super curtos (máximo 15 palavras cada).
Foque em:
1. Produtos para repor urgente (abaixo do mínimo).
2. Sugestão de promoção para o que está parado.
3. Uma dica de gestão financeira em Kwanzas (AOA).
Use um tom motivador e profissional.`, summaryJSON)

	reqBody, err := json.Marshal(geminiRequest{
		Contents:          []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: advisorInstruction}}},
		GenerationConfig:  &geminiGenCfg{Temperature: 0.8},
	})
	if err != nil {
		log.Printf("advisory: failed to marshal request: %v", err)
		return insightFallback
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.baseURL, geminiModel, s.apiKey)
	resp, err := s.client.Post(url, "application/json", bytes.NewReader(reqBody))
	if err != nil {
		log.Printf("advisory: request failed: %v", err)
		return insightFallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("advisory: unexpected status %d", resp.StatusCode)
		return insightFallback
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("advisory: failed to decode response: %v", err)
		return insightFallback
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return insightFallback
	}
	text := parsed.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return insightFallback
	}
	return text
}
