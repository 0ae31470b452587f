package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceFormatter_TR(t *testing.T) {
	f, err := NewPriceFormatter("tr-TR", "EUR")
	require.NoError(t, err)

	tests := map[int64]string{
		280000:  "€280.000",
		450000:  "€450.000",
		250000:  "€250.000",
		380000:  "€380.000",
		320000:  "€320.000",
		275000:  "€275.000",
		950:     "€950",
		1250000: "€1.250.000",
	}
	for price, want := range tests {
		assert.Equal(t, want, f.Format(price))
		// aynı fiyat hep aynı metni üretir
		assert.Equal(t, f.Format(price), f.Format(price))
	}
}

func TestPriceFormatter_SymbolFromLocaleData(t *testing.T) {
	tests := []struct {
		currency string
		want     string
	}{
		{"EUR", "€280.000"},
		{"JPY", "¥280.000"},
		{"TRY", "₺280.000"},
		{"GBP", "£280.000"},
	}
	for _, tt := range tests {
		f, err := NewPriceFormatter("tr-TR", tt.currency)
		require.NoError(t, err, tt.currency)
		assert.Equal(t, tt.want, f.Format(280000), tt.currency)
	}
}

func TestPriceFormatter_Invalid(t *testing.T) {
	_, err := NewPriceFormatter("tr-TR", "XX")
	assert.Error(t, err)

	_, err = NewPriceFormatter("not a locale!", "EUR")
	assert.Error(t, err)
}

func TestFavoriteSet_DoubleToggle(t *testing.T) {
	f := NewFavoriteSet()
	f.Toggle(3)

	assert.True(t, f.Toggle(5))
	assert.False(t, f.Toggle(5))
	assert.Equal(t, []uint{3}, f.IDs())

	assert.False(t, f.Toggle(3))
	assert.True(t, f.Toggle(3))
	assert.Equal(t, 1, f.Len())
}
