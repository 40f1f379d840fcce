package utils

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSlugToTitle(t *testing.T) {
	testCases := map[string]string{
		"oak-classic":     "Oak Classic",
		"modern-series":   "Modern Series",
		"weatherguard":    "Weatherguard",
		"double--hyphen-": "Double Hyphen",
		"":                "",
		"école-oak":       "École Oak",
		"école-ñandú":     "École Ñandú",
	}

	for in, expected := range testCases {
		out := SlugToTitle(in)
		assert.Equal(t, expected, out, in)
		assert.True(t, utf8.ValidString(out), in)
	}
}

func TestCanonicalURL(t *testing.T) {
	assert.Equal(t, "https://stara.com/collections/modern-series", CanonicalURL("https://stara.com", "/collections/modern-series"))
	assert.Equal(t, "https://stara.com/", CanonicalURL("https://stara.com", "/"))
	assert.Equal(t, "https://stara.com/site/faq", CanonicalURL("https://stara.com/site/", "faq"))
	assert.Equal(t, "/faq", CanonicalURL("", "/faq"))
}

func TestTelURL(t *testing.T) {
	assert.Equal(t, "tel:+912040001100", TelURL("+91 20 4000 1100"))
	assert.Equal(t, "tel:111", TelURL(" 111 "))
}
