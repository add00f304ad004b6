package numerator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	corenumerator "taller/internal/core/numerator"
)

func TestFormatNumber(t *testing.T) {
	s := New(nil)
	period := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		cfg  corenumerator.Config
		num  int64
		want string
	}{
		{
			name: "default with year",
			cfg:  corenumerator.DefaultConfig("FAC"),
			num:  1,
			want: "FAC-2026-00001",
		},
		{
			name: "without year",
			cfg:  corenumerator.Config{Prefix: "COT", PadWidth: 5},
			num:  42,
			want: "COT-00042",
		},
		{
			name: "wide numbers keep all digits",
			cfg:  corenumerator.DefaultConfig("TK"),
			num:  1234567,
			want: "TK-2026-1234567",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.formatNumber(tt.cfg, period, tt.num))
		})
	}
}

func TestBuildKey(t *testing.T) {
	s := New(nil)
	period := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "FAC_2026", s.buildKey(corenumerator.DefaultConfig("FAC"), period))
	assert.Equal(t, "MOV_2026_03", s.buildKey(corenumerator.Config{Prefix: "MOV", ResetPeriod: "month"}, period))
	assert.Equal(t, "CIT", s.buildKey(corenumerator.Config{Prefix: "CIT", ResetPeriod: "never"}, period))
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, int64(17), ParseNumber("FAC-2026-00017"))
	assert.Equal(t, int64(42), ParseNumber("COT-00042"))
	assert.Equal(t, int64(-1), ParseNumber("garbage"))
}
