package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taller/internal/core/types"
)

func TestMoney(t *testing.T) {
	f := New(DefaultConfig())

	tests := []struct {
		value string
		want  string
	}{
		{"0", "Q 0.00"},
		{"10", "Q 10.00"},
		{"1234.5", "Q 1,234.50"},
		{"1234567.89", "Q 1,234,567.89"},
		{"-10", "Q -10.00"},
		{"307.02", "Q 307.02"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Money(types.MustMoney(tt.value)), "value %s", tt.value)
	}
}

func TestAmountNegativeGrouping(t *testing.T) {
	f := New(DefaultConfig())
	assert.Equal(t, "-12,345.00", f.Amount(types.MustMoney("-12345")))
}

func TestPercent(t *testing.T) {
	f := New(DefaultConfig())
	assert.Equal(t, "12.00%", f.Percent(types.MustMoney("12")))
	assert.Equal(t, "5.50%", f.Percent(types.MustMoney("5.5")))
}

func TestDate(t *testing.T) {
	f := New(DefaultConfig())
	d := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "07/03/2025", f.Date(d))
}

func TestCustomConfig(t *testing.T) {
	f := New(Config{Locale: "es-MX", Currency: "MXN", Symbol: "$"})
	assert.Equal(t, "$ 1,500.00", f.Money(types.MustMoney("1500")))
}
