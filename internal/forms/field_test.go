package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectRequiresOptions(t *testing.T) {
	_, err := Select("estado", "Estado", nil)
	assert.Error(t, err)
}

func TestSelectRejectsDuplicateOptions(t *testing.T) {
	_, err := Select("estado", "Estado", []Option{
		{Value: "pendiente", Label: "Pendiente"},
		{Value: "pendiente", Label: "Otra vez"},
	})
	assert.Error(t, err)
}

func TestNumberRejectsInvertedRange(t *testing.T) {
	_, err := Number("cantidad", "Cantidad", NumberConfig{Min: money("10"), Max: money("1"), Scale: 2})
	assert.Error(t, err)
}

func TestNumberRejectsBadScale(t *testing.T) {
	_, err := Number("cantidad", "Cantidad", NumberConfig{Scale: 9})
	assert.Error(t, err)
}

func TestReferenceRequiresEntity(t *testing.T) {
	_, err := Reference("id_cliente", "Cliente", "")
	assert.Error(t, err)
}

func TestFieldOptions(t *testing.T) {
	f, err := Text("nombre", "Nombre", 100, Required())
	require.NoError(t, err)
	assert.True(t, f.Required)
	assert.Equal(t, KindText, f.Kind)
	assert.Equal(t, 100, f.Text.MaxLength)
}

func TestLabelDefaultsToName(t *testing.T) {
	f, err := Date("fecha", "")
	require.NoError(t, err)
	assert.Equal(t, "fecha", f.Label)
}

func TestNewFormRejectsDuplicateFields(t *testing.T) {
	a := MustField(Text("nombre", "Nombre", 50))
	b := MustField(Text("nombre", "Otro", 50))
	_, err := NewForm("clientes", "Clientes", []Field{a, b}, nil)
	assert.Error(t, err)
}

func TestRegistryRejectsDuplicateEntity(t *testing.T) {
	reg := NewRegistry()
	form, err := NewForm("clientes", "Clientes", []Field{MustField(Text("nombre", "Nombre", 50))}, nil)
	require.NoError(t, err)

	require.NoError(t, reg.Register(form))
	assert.Error(t, reg.Register(form))
}

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()

	for _, entity := range []string{"clientes", "vehiculos", "servicios", "repuestos", "cotizaciones", "facturas", "tickets", "citas"} {
		form, ok := reg.Get(entity)
		require.True(t, ok, "missing form %s", entity)
		assert.NotEmpty(t, form.Fields)
	}

	facturas, _ := reg.Get("facturas")
	assert.NotEmpty(t, facturas.Lines)

	citas, _ := reg.Get("citas")
	assert.Empty(t, citas.Lines)
}
