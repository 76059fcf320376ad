package service

import (
	"bytes"
	"fmt"
	"time"

	"stockemdia-backend/internal/model"
	"stockemdia-backend/internal/repository"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
)

// ReportService renders the owner's catalogue and movement log as a printable
// document. It is a read-only consumer of the ledger.
type ReportService interface {
	InventoryReport(accountID uuid.UUID, account *model.AccountResponse) ([]byte, error)
}

type reportService struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
}

func NewReportService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository) ReportService {
	return &reportService{productRepo: pRepo, txRepo: tRepo}
}

var categoryLabels = map[model.Category]string{
	model.CategoryFood:         "Alimentos",
	model.CategoryBeverages:    "Bebidas",
	model.CategoryElectronics:  "Eletrónicos",
	model.CategoryClothing:     "Vestuário",
	model.CategoryCleaning:     "Limpeza",
	model.CategoryConstruction: "Construção",
	model.CategoryOther:        "Outros",
}

func (s *reportService) InventoryReport(accountID uuid.UUID, account *model.AccountResponse) ([]byte, error) {
	products, err := s.productRepo.FindAll(accountID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.txRepo.FindAll(accountID)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252, accented labels go through the translator.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Stock em Dia - Relatório de Inventário", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 10, "Stock em Dia")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Negócio: %s", account.BusinessName)))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Emissão: %s", time.Now().UTC().Format("2006-01-02 15:04"))))
	pdf.Ln(12)

	// Product table
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr("Inventário Atual"))
	pdf.Ln(9)

	productCols := []float64{60, 32, 32, 18, 18, 30}
	productHead := []string{"Produto", "Categoria", "Preço", "Stock", "Mín.", "Valor Total"}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(27, 78, 129)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range productHead {
		pdf.CellFormat(productCols[i], 7, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, p := range products {
		pdf.CellFormat(productCols[0], 6, tr(p.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(productCols[1], 6, tr(categoryLabels[p.Category]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(productCols[2], 6, formatKz(p.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(productCols[3], 6, fmt.Sprintf("%d", p.Stock), "1", 0, "R", false, 0, "")
		pdf.CellFormat(productCols[4], 6, fmt.Sprintf("%d", p.MinStock), "1", 0, "R", false, 0, "")
		pdf.CellFormat(productCols[5], 6, formatKz(p.Price*int64(p.Stock)), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(productCols[0]+productCols[1]+productCols[2]+productCols[3]+productCols[4], 7,
		tr("Valor total do inventário"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(productCols[5], 7, formatKz(TotalInventoryValue(products)), "1", 0, "R", false, 0, "")
	pdf.Ln(12)

	// Movement log, most recent first
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr("Movimentações"))
	pdf.Ln(9)

	txCols := []float64{40, 60, 25, 20, 45}
	txHead := []string{"Data", "Produto", "Tipo", "Qtd.", "Valor"}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(27, 78, 129)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range txHead {
		pdf.CellFormat(txCols[i], 7, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, t := range transactions {
		kind := "Entrada"
		if t.Type == model.MovementOut {
			kind = "Saída"
		}
		pdf.CellFormat(txCols[0], 6, t.CreatedAt.UTC().Format("2006-01-02 15:04"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(txCols[1], 6, tr(t.ProductName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(txCols[2], 6, tr(kind), "1", 0, "L", false, 0, "")
		pdf.CellFormat(txCols[3], 6, fmt.Sprintf("%d", t.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(txCols[4], 6, formatKz(t.TotalValue), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatKz renders a whole-Kwanza amount with thousands separators, e.g.
// 1234567 -> "1.234.567 Kz".
func formatKz(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := fmt.Sprintf("%d", amount)
	var out []byte
	for i, c := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out) + " Kz"
	}
	return string(out) + " Kz"
}
