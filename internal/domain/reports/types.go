// Package reports provides read-only management reports built from
// invoices and the spare part catalog.
package reports

import (
	"time"

	"taller/internal/core/id"
	"taller/internal/core/types"
)

// --- Revenue Report ---

// RevenueReportFilter defines the period and grouping of a revenue report.
type RevenueReportFilter struct {
	// Period (required)
	FromDate time.Time
	ToDate   time.Time

	// GroupBy is "dia" or "mes"
	GroupBy string

	// IncludeVoided counts voided invoices too; off by default
	IncludeVoided bool
}

// RevenueReportItem is one period bucket of invoiced amounts.
type RevenueReportItem struct {
	Period         string      `db:"period" json:"periodo"`
	InvoiceCount   int         `db:"invoice_count" json:"facturas"`
	Subtotal       types.Money `db:"subtotal" json:"subtotal"`
	TaxAmount      types.Money `db:"tax_amount" json:"monto_impuestos"`
	DiscountAmount types.Money `db:"discount_amount" json:"monto_descuentos"`
	Total          types.Money `db:"total" json:"total"`
}

// RevenueReport is the full revenue report.
type RevenueReport struct {
	FromDate time.Time           `json:"desde"`
	ToDate   time.Time           `json:"hasta"`
	GroupBy  string              `json:"agrupado_por"`
	Items    []RevenueReportItem `json:"items"`

	// Summary
	TotalInvoices int         `json:"total_facturas"`
	TotalRevenue  types.Money `json:"total_ingresos"`
}

// --- Top Items Report ---

// TopItemsReportFilter defines the period and scope of a top items report.
type TopItemsReportFilter struct {
	// Period (required)
	FromDate time.Time
	ToDate   time.Time

	// ItemType limits to "servicio" or "repuesto"; empty means both
	ItemType string

	// Limit caps the number of rows
	Limit int
}

// TopItemsReportItem is one billed catalog item ranked by revenue.
type TopItemsReportItem struct {
	ItemType     string      `db:"item_type" json:"tipo_item"`
	ItemID       *id.ID      `db:"item_id" json:"id_item,omitempty"`
	Description  string      `db:"description" json:"descripcion"`
	TimesSold    int         `db:"times_sold" json:"veces_facturado"`
	QuantitySold types.Money `db:"quantity_sold" json:"cantidad_total"`
	Revenue      types.Money `db:"revenue" json:"ingresos"`
}

// TopItemsReport is the full top items report.
type TopItemsReport struct {
	FromDate time.Time            `json:"desde"`
	ToDate   time.Time            `json:"hasta"`
	Items    []TopItemsReportItem `json:"items"`
}

// --- Low Stock Report ---

// LowStockReportItem is a spare part at or below its minimum stock.
type LowStockReportItem struct {
	PartID   id.ID       `db:"id" json:"id_repuesto"`
	Code     string      `db:"code" json:"codigo"`
	Name     string      `db:"name" json:"nombre"`
	Stock    types.Money `db:"stock" json:"stock_actual"`
	StockMin types.Money `db:"stock_min" json:"stock_minimo"`
	Deficit  types.Money `db:"deficit" json:"deficit"`
}

// LowStockReport is the full low stock report.
type LowStockReport struct {
	AsOf       time.Time            `json:"fecha"`
	Items      []LowStockReportItem `json:"items"`
	TotalItems int                  `json:"total_items"`
}
