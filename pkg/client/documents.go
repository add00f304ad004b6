package client

import (
	"context"
	"net/url"

	"taller/internal/core/id"
	"taller/internal/domain/documents/invoice"
	"taller/internal/domain/documents/quotation"
	"taller/internal/infrastructure/http/v1/dto"
)

// List is a typed paginated API response.
type List[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// --- Quotations ---

// ListQuotations retrieves quotations; query carries optional filters
// (clientId, estado, dateFrom, dateTo, limit, offset).
func (c *Client) ListQuotations(ctx context.Context, query url.Values) (List[quotation.Quotation], error) {
	var out List[quotation.Quotation]
	err := c.get(ctx, "/cotizaciones"+encodeQuery(query), &out)
	return out, err
}

// GetQuotation retrieves one quotation.
func (c *Client) GetQuotation(ctx context.Context, docID id.ID) (*quotation.Quotation, error) {
	var out quotation.Quotation
	if err := c.get(ctx, "/cotizaciones/"+docID.String(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateQuotation submits a new quotation.
func (c *Client) CreateQuotation(ctx context.Context, req dto.CreateQuotationRequest) (*quotation.Quotation, error) {
	var out quotation.Quotation
	if err := c.post(ctx, "/cotizaciones", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateQuotation persists changes to an existing quotation.
func (c *Client) UpdateQuotation(ctx context.Context, docID id.ID, req dto.UpdateQuotationRequest) (*quotation.Quotation, error) {
	var out quotation.Quotation
	if err := c.put(ctx, "/cotizaciones/"+docID.String(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteQuotation removes a quotation.
func (c *Client) DeleteQuotation(ctx context.Context, docID id.ID) error {
	return c.delete(ctx, "/cotizaciones/"+docID.String())
}

// ChangeQuotationStatus moves a quotation to a new lifecycle state.
// When the requested state equals the current one, no request is sent
// and the aggregate is returned unchanged.
func (c *Client) ChangeQuotationStatus(ctx context.Context, current *quotation.Quotation, newStatus quotation.Status) (*quotation.Quotation, error) {
	if current.Status == newStatus {
		return current, nil
	}

	var out quotation.Quotation
	body := dto.ChangeQuotationStatusRequest{Status: string(newStatus)}
	if err := c.put(ctx, "/cotizaciones/"+current.ID.String()+"/estado", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Invoices ---

// ListInvoices retrieves invoices; query carries optional filters.
func (c *Client) ListInvoices(ctx context.Context, query url.Values) (List[invoice.Invoice], error) {
	var out List[invoice.Invoice]
	err := c.get(ctx, "/facturas"+encodeQuery(query), &out)
	return out, err
}

// GetInvoice retrieves one invoice.
func (c *Client) GetInvoice(ctx context.Context, docID id.ID) (*invoice.Invoice, error) {
	var out invoice.Invoice
	if err := c.get(ctx, "/facturas/"+docID.String(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateInvoice submits a new invoice.
func (c *Client) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*invoice.Invoice, error) {
	var out invoice.Invoice
	if err := c.post(ctx, "/facturas", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateInvoice persists changes to an existing invoice.
func (c *Client) UpdateInvoice(ctx context.Context, docID id.ID, req dto.UpdateInvoiceRequest) (*invoice.Invoice, error) {
	var out invoice.Invoice
	if err := c.put(ctx, "/facturas/"+docID.String(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteInvoice removes an invoice.
func (c *Client) DeleteInvoice(ctx context.Context, docID id.ID) error {
	return c.delete(ctx, "/facturas/"+docID.String())
}

// ChangeInvoiceStatus moves an invoice to a new payment state, skipping
// the request when the state would not change.
func (c *Client) ChangeInvoiceStatus(ctx context.Context, current *invoice.Invoice, newStatus invoice.PaymentStatus) (*invoice.Invoice, error) {
	if current.PaymentStatus == newStatus {
		return current, nil
	}

	var out invoice.Invoice
	body := dto.ChangeInvoiceStatusRequest{Status: string(newStatus)}
	if err := c.put(ctx, "/facturas/"+current.ID.String()+"/estado", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkInvoicePaid marks an invoice as fully paid. A non-empty
// paymentMethod is stamped onto the invoice.
func (c *Client) MarkInvoicePaid(ctx context.Context, docID id.ID, paymentMethod string) (*invoice.Invoice, error) {
	var body any
	if paymentMethod != "" {
		body = dto.MarkInvoicePaidRequest{PaymentMethod: paymentMethod}
	}

	var out invoice.Invoice
	if err := c.put(ctx, "/facturas/"+docID.String()+"/marcar-pagada", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func encodeQuery(query url.Values) string {
	if len(query) == 0 {
		return ""
	}
	return "?" + query.Encode()
}
