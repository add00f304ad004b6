// Package pdf renders quotations and invoices as printable PDF documents.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"taller/internal/domain/billing"
	"taller/internal/domain/documents/invoice"
	"taller/internal/domain/documents/quotation"
	"taller/pkg/format"
)

// Generator builds PDF documents using a shared display formatter.
type Generator struct {
	formatter    *format.Formatter
	workshopName string
}

// NewGenerator creates a PDF generator.
func NewGenerator(formatter *format.Formatter, workshopName string) *Generator {
	if workshopName == "" {
		workshopName = "Taller Mecánico"
	}
	return &Generator{formatter: formatter, workshopName: workshopName}
}

// Quotation renders a quotation document.
func (g *Generator) Quotation(q *quotation.Quotation, clientName string) ([]byte, error) {
	pdf := g.newPage("Cotización")

	g.headerBlock(pdf, "Cotización", q.Number, g.formatter.Date(q.Date), clientName)
	if q.ValidUntil != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Válida hasta: %s", g.formatter.Date(*q.ValidUntil)))
		pdf.Ln(6)
	}

	g.linesTable(pdf, q.Lines)
	g.totalsBlock(pdf, q.TaxRate.StringFixed(2), q.DiscountRate.StringFixed(2), q.Totals())

	if q.Comment != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, "Observaciones: "+q.Comment, "", "L", false)
	}

	return g.output(pdf)
}

// Invoice renders an invoice document.
func (g *Generator) Invoice(inv *invoice.Invoice, clientName string) ([]byte, error) {
	pdf := g.newPage("Factura")

	g.headerBlock(pdf, "Factura", inv.Number, g.formatter.Date(inv.Date), clientName)
	if inv.PaymentMethod != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Forma de pago: %s", inv.PaymentMethod))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Estado: %s", inv.PaymentStatus))
	pdf.Ln(6)

	g.linesTable(pdf, inv.Lines)
	g.totalsBlock(pdf, inv.TaxRate.StringFixed(2), inv.DiscountRate.StringFixed(2), inv.Totals())

	if inv.Comment != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, "Observaciones: "+inv.Comment, "", "L", false)
	}

	return g.output(pdf)
}

func (g *Generator) newPage(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()
	return pdf
}

func (g *Generator) headerBlock(pdf *gofpdf.Fpdf, docType, number, date, clientName string) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(g.workshopName))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr(fmt.Sprintf("%s %s", docType, number)))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Fecha: "+date)
	pdf.Ln(6)
	if clientName != "" {
		pdf.Cell(0, 6, tr("Cliente: "+clientName))
		pdf.Ln(6)
	}
	pdf.Ln(2)
}

func (g *Generator) linesTable(pdf *gofpdf.Fpdf, lines []billing.LineItem) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(10, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(22, 7, "Tipo", "1", 0, "L", true, 0, "")
	pdf.CellFormat(83, 7, tr("Descripción"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(15, 7, "Cant.", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 7, "Precio", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 7, "Importe", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range lines {
		pdf.CellFormat(10, 6, fmt.Sprintf("%d", line.LineNo), "1", 0, "C", false, 0, "")
		pdf.CellFormat(22, 6, string(line.ItemType), "1", 0, "L", false, 0, "")
		pdf.CellFormat(83, 6, tr(trim(line.Description, 48)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(15, 6, line.Quantity.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, g.formatter.Money(line.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, g.formatter.Money(line.Subtotal().Round(2)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)
}

func (g *Generator) totalsBlock(pdf *gofpdf.Fpdf, taxRate, discountRate string, t billing.Totals) {
	label := func(name, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(130, 6, "", "", 0, "", false, 0, "")
		pdf.CellFormat(30, 6, name, "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, value, "", 1, "R", false, 0, "")
	}

	label("Subtotal:", g.formatter.Money(t.Subtotal), false)
	label(fmt.Sprintf("Impuestos (%s%%):", taxRate), g.formatter.Money(t.TaxAmount), false)
	label(fmt.Sprintf("Descuentos (%s%%):", discountRate), g.formatter.Money(t.DiscountAmount), false)
	label("Total:", g.formatter.Money(t.Total), true)
}

func (g *Generator) output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
