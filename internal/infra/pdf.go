package infra

// pdf.go — internal PDF receipt generation using go-pdf/fpdf.
// Generates A7-size thermal-style receipts with:
//   - Business name header
//   - Sale id and timestamp
//   - Item table (product name, quantity, subtotal in COP)
//   - Bold total, paid COP / paid VES breakdown
//   - Credit notice when the sale left an open balance
//
// The output file is saved to storagePath/recibo_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Javier-GarciaP/sunbody/internal/model"
	"github.com/Javier-GarciaP/sunbody/internal/money"

	"github.com/go-pdf/fpdf"
)

// GenerateReciboPDF generates an internal PDF receipt for a completed Venta.
// storagePath is the directory where the PDF will be written (created if needed).
// Returns the absolute path to the generated file.
func GenerateReciboPDF(venta *model.Venta, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("recibo_%s.pdf", venta.ID)
	filePath := filepath.Join(storagePath, fileName)

	// A7 ≈ 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Sunbody", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Comprobante de Venta", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Sale info ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	cliente := "Venta de mostrador"
	if venta.Cliente != nil {
		cliente = venta.Cliente.Nombre
	}
	pdf.CellFormat(contentW, 5, cliente, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, venta.CreatedAt.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Items header ──────────────────────────────────────────────────────────
	col1 := contentW * 0.52 // product name
	col2 := contentW * 0.16 // qty
	col3 := contentW * 0.32 // subtotal

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	// ── Item rows ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 7)
	for _, item := range venta.Items {
		nombre := ""
		if item.Producto != nil {
			nombre = item.Producto.Nombre
		}
		if item.Color != nil {
			nombre += " " + item.Color.Nombre
		}
		if len(nombre) > 22 {
			nombre = nombre[:21] + "…"
		}
		subtotal := item.PrecioCop * int64(item.Cantidad)
		pdf.CellFormat(col1, 5, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", item.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, fmt.Sprintf("$%d", subtotal), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL COP:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, fmt.Sprintf("$%d", venta.TotalCop), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	if venta.PaidCop > 0 {
		pdf.CellFormat(col1+col2, 4, "Pagado COP:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 4, fmt.Sprintf("$%d", venta.PaidCop), "", 1, "R", false, 0, "")
	}
	if venta.PaidVes.Sign() > 0 {
		pdf.CellFormat(col1+col2, 4, "Pagado VES:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 4, "Bs "+venta.PaidVes.StringFixed(2), "", 1, "R", false, 0, "")
	}

	if venta.EsCredito {
		pendiente := venta.TotalCop - venta.PaidCop - money.VesToCop(venta.PaidVes, venta.TasaCambio)
		if pendiente > 0 {
			pdf.Ln(1)
			pdf.SetFont("Helvetica", "B", 7)
			pdf.CellFormat(col1+col2, 4, "Saldo pendiente:", "", 0, "L", false, 0, "")
			pdf.CellFormat(col3, 4, fmt.Sprintf("$%d", pendiente), "", 1, "R", false, 0, "")
		}
	}

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "¡Gracias por su compra!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
