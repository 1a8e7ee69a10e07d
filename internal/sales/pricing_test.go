package sales

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPriceTable(t *testing.T) {
	cases := []struct {
		model CarModel
		want  string
	}{
		{Sedan, "8000"},
		{SUV, "9500"},
		{Offroad, "12500"},
		{Sport, "19474"}, // 18200 plus the 7% surcharge
	}
	for _, tc := range cases {
		t.Run(tc.model.String(), func(t *testing.T) {
			got, err := Price(tc.model)
			require.NoError(t, err)
			require.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"expected %s, got %s", tc.want, got)
		})
	}
}

func TestPriceUnknownModel(t *testing.T) {
	_, err := Price(CarModel(9))
	require.Error(t, err)
}
