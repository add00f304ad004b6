package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taller/internal/core/entity"
	"taller/internal/core/id"
)

type MockCatalog struct {
	entity.BaseCatalog
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"nombre"`
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[MockCatalog]()

	expectedCols := []string{
		"id", "deletion_mark", "version", "code", "name",
	}

	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
}

func TestStructToMap(t *testing.T) {
	cat := MockCatalog{
		BaseCatalog: entity.BaseCatalog{
			BaseEntity: entity.BaseEntity{
				ID:           id.New(),
				DeletionMark: true,
				Version:      5,
			},
		},
		Code: "TEST",
		Name: "Nombre de prueba",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "TEST", m["code"])
	assert.Equal(t, "Nombre de prueba", m["name"])
}

func TestStructToMapSkipsUntaggedFields(t *testing.T) {
	type withUntagged struct {
		Code   string `db:"code"`
		Hidden string `db:"-"`
		Plain  string
	}

	m := StructToMap(withUntagged{Code: "X", Hidden: "h", Plain: "p"})

	assert.Equal(t, map[string]any{"code": "X"}, m)
}
