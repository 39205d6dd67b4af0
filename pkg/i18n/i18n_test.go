package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Lang
	}{
		{"Arabic", "ar", LangAr},
		{"French", "fr", LangFr},
		{"French with region", "fr-DZ", LangFr},
		{"Arabic with region", "ar-DZ", LangAr},
		{"Unknown falls back to default", "en", DefaultLang},
		{"Empty falls back to default", "", DefaultLang},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func TestDir(t *testing.T) {
	assert.Equal(t, "rtl", Dir(LangAr))
	assert.Equal(t, "ltr", Dir(LangFr))
}

func TestT(t *testing.T) {
	// Both languages carry the same keys
	for key := range translationsFr {
		assert.NotEmpty(t, T(LangAr, key), "missing Arabic translation for %s", key)
	}
	for key := range translationsAr {
		assert.NotEmpty(t, T(LangFr, key), "missing French translation for %s", key)
	}

	// Unknown key stays visible
	assert.Equal(t, "no.such.key", T(LangFr, "no.such.key"))
}
