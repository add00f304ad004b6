package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taller/internal/core/id"
	"taller/internal/domain/documents/invoice"
	"taller/internal/domain/documents/quotation"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return c, srv
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(quotation.NewQuotation(id.New()))
	}))
	c.SetToken("secret-token")

	_, err := c.GetQuotation(context.Background(), id.New())
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestAuthFailureCallback(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"code": "UNAUTHORIZED", "message": "token expired"})
	}))

	var called bool
	c.OnAuthFailure(func() { called = true })

	_, err := c.GetQuotation(context.Background(), id.New())
	require.Error(t, err)
	assert.True(t, called)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", apiErr.Code)
}

func TestChangeQuotationStatusNoOp(t *testing.T) {
	var requests int
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	doc := quotation.NewQuotation(id.New())
	got, err := c.ChangeQuotationStatus(context.Background(), doc, quotation.StatusPending)
	require.NoError(t, err)

	assert.Same(t, doc, got)
	assert.Zero(t, requests, "equal status must not hit the network")
}

func TestChangeQuotationStatusSendsRequest(t *testing.T) {
	doc := quotation.NewQuotation(id.New())

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/cotizaciones/"+doc.ID.String()+"/estado", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "aprobada", body["estado"])

		doc.Status = quotation.StatusApproved
		json.NewEncoder(w).Encode(doc)
	}))

	got, err := c.ChangeQuotationStatus(context.Background(), doc, quotation.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, quotation.StatusApproved, got.Status)
}

func TestChangeInvoiceStatusNoOp(t *testing.T) {
	var requests int
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	inv := invoice.NewInvoice(id.New())
	got, err := c.ChangeInvoiceStatus(context.Background(), inv, invoice.PaymentPending)
	require.NoError(t, err)
	assert.Same(t, inv, got)
	assert.Zero(t, requests)
}

func TestMarkInvoicePaid(t *testing.T) {
	docID := id.New()
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/facturas/"+docID.String()+"/marcar-pagada", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Efectivo", req["forma_pago"])

		inv := invoice.NewInvoice(id.New())
		inv.PaymentStatus = invoice.PaymentPaid
		inv.PaymentMethod = req["forma_pago"]
		json.NewEncoder(w).Encode(inv)
	}))

	got, err := c.MarkInvoicePaid(context.Background(), docID, "Efectivo")
	require.NoError(t, err)
	assert.Equal(t, invoice.PaymentPaid, got.PaymentStatus)
	assert.Equal(t, "Efectivo", got.PaymentMethod)
}

func TestAPIErrorDecoding(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"code": "NOT_FOUND", "message": "quotation not found"})
	}))

	_, err := c.GetQuotation(context.Background(), id.New())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNotFound())
	assert.Equal(t, "quotation not found", apiErr.Message)
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
