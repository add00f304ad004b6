package csvexport

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHTTP(t *testing.T) {
	rec := httptest.NewRecorder()
	doc := Document{
		Headers: []string{"codigo", "nombre", "stock_actual"},
		Rows: [][]string{
			{"REP-00001", "Filtro de aceite", "12.00"},
			{"REP-00002", "Bujia, NGK", "4.00"},
		},
	}

	err := WriteHTTP(rec, "repuestos.csv", doc)
	require.NoError(t, err)

	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="repuestos.csv"`, rec.Header().Get("Content-Disposition"))

	want := "codigo,nombre,stock_actual\n" +
		"REP-00001,Filtro de aceite,12.00\n" +
		"REP-00002,\"Bujia, NGK\",4.00\n"
	assert.Equal(t, want, rec.Body.String())
}

func TestWriteHTTPEmptyRows(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteHTTP(rec, "vacio.csv", Document{Headers: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", rec.Body.String())
}
