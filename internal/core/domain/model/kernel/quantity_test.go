package kernel_test

import (
	"testing"

	"packtrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestParseQuantityText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"plain integer", "4", 4},
		{"plain decimal", "1.5", 1.5},
		{"comma decimal", "1,5", 1.5},
		{"multiplicative", "2*3", 6},
		{"multiplicative with comma", "2*1,5", 3},
		{"multiplicative with spaces", " 2 * 3 ", 6},
		{"empty", "", 0},
		{"blank", "   ", 0},
		{"garbage", "abc", 0},
		{"trailing operator voids expression", "2*", 0},
		{"bare operator", "*", 0},
		{"all segments invalid", "a*b", 0},
		{"bad segment is dropped", "2*x*3", 6},
		{"single parseable segment survives", "abc*4", 4},
		{"negative passes through", "-4", -4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, kernel.ParseQuantityText(tc.in), 1e-9)
		})
	}
}

func TestQuantity(t *testing.T) {
	t.Run("from value", func(t *testing.T) {
		q := kernel.NewQuantity(2.5)

		assert.InDelta(t, 2.5, q.Value(), 1e-9)
		assert.Equal(t, "2.5", q.Text())
		assert.False(t, q.IsZero())
	})

	t.Run("from text keeps expression for display", func(t *testing.T) {
		q := kernel.NewQuantityFromText("2*1")

		assert.InDelta(t, 2, q.Value(), 1e-9)
		assert.Equal(t, "2*1", q.Text())
	})

	t.Run("zero value is zero quantity", func(t *testing.T) {
		var q kernel.Quantity

		assert.True(t, q.IsZero())
		assert.Equal(t, "0", q.Text())
	})

	t.Run("sub floors at zero and re-derives text", func(t *testing.T) {
		q := kernel.NewQuantityFromText("2*3")

		next := q.Sub(4)
		assert.InDelta(t, 2, next.Value(), 1e-9)
		assert.Equal(t, "2", next.Text())

		assert.True(t, next.Sub(10).IsZero())
	})
}
