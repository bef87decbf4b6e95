package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHeadType(t *testing.T) {
	t.Run("Valid types", func(t *testing.T) {
		for _, s := range []string{"Clay", "Silicone", "Fruit"} {
			ht, err := ParseHeadType(s)
			assert.NoError(t, err)
			assert.Equal(t, HeadType(s), ht)
		}
	})

	t.Run("Unknown type rejected", func(t *testing.T) {
		for _, s := range []string{"", "clay", "Ceramic", "FRUIT"} {
			_, err := ParseHeadType(s)
			assert.ErrorIs(t, err, ErrUnknownHeadType)
		}
	})
}

func TestUnitPrice(t *testing.T) {
	tests := []struct {
		name       string
		base       float64
		head       HeadType
		extraCoals int
		want       float64
	}{
		{"Clay no extras", 25.00, HeadClay, 0, 25.00},
		{"Silicone surcharge", 25.00, HeadSilicone, 0, 28.00},
		{"Fruit surcharge", 25.00, HeadFruit, 0, 33.00},
		{"Extra coals", 25.00, HeadClay, 4, 27.00},
		{"Fruit with coals", 25.00, HeadFruit, 4, 35.00},
		{"Free base", 0, HeadClay, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, UnitPrice(tt.base, tt.head, tt.extraCoals), 1e-9)
		})
	}
}

func TestLineTotal(t *testing.T) {
	// base 25.00, Fruit head (+8), 4 extra coals (+2.00), qty 2 => 70.00
	got := LineTotal(25.00, HeadFruit, 4, 2)
	assert.InDelta(t, 70.00, got, 1e-9)
}

func TestLineTotal_Monotonic(t *testing.T) {
	t.Run("Non-decreasing in extra coals", func(t *testing.T) {
		prev := 0.0
		for coals := 0; coals <= 10; coals++ {
			cur := LineTotal(25.00, HeadSilicone, coals, 1)
			assert.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
	})

	t.Run("Non-decreasing in quantity", func(t *testing.T) {
		prev := 0.0
		for qty := 1; qty <= 10; qty++ {
			cur := LineTotal(25.00, HeadClay, 2, qty)
			assert.Greater(t, cur, prev)
			prev = cur
		}
	})
}
