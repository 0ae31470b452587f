package messaging

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinker_Link(t *testing.T) {
	l := NewLinker("https://wa.me/", "+90 533 285 30 31")

	assert.Equal(t, "905332853031", l.Number())
	assert.Equal(t,
		"https://wa.me/905332853031?text=Merhaba%2C%20bilgi%20almak%20istiyorum.",
		l.Link("Merhaba, bilgi almak istiyorum."),
	)
}

func TestEncode_RoundTrip(t *testing.T) {
	msg := "Merhaba Golden Citizen,\n\nAdım: Ayşe & Co\nFiyat: €280.000 + 50% ?"
	encoded := Encode(msg)

	assert.NotContains(t, encoded, "+")
	assert.NotContains(t, encoded, " ")
	assert.NotContains(t, encoded, "&")

	decoded, err := url.QueryUnescape(encoded)
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}

func TestLinker_SameMessageSameLink(t *testing.T) {
	l := NewLinker("https://wa.me", "905332853031")
	assert.Equal(t, l.Link("Korfu Evi"), l.Link("Korfu Evi"))
}
