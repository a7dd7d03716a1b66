//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestGetTranslator(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{"english message", ErrKeyProductNotFound, "en", "Product not found"},
		{"turkish message", ErrKeyProductNotFound, "tr", "Ürün bulunamadı"},
		{"unknown locale falls back to english", ErrKeyNotFound, "de", "Not found"},
		{"empty locale falls back to english", ErrKeyTimeout, "", "Request timed out"},
		{"unknown key returns the key", "error.nope", "tr", "error.nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestTranslator_EveryKeyHasEveryLocale(t *testing.T) {
	messages := getDefaultMessages()
	for key := range messages[DefaultLocale] {
		for locale, m := range messages {
			_, ok := m[key]
			assert.True(t, ok, "locale %s is missing %s", locale, key)
		}
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"tr-TR,tr;q=0.9,en;q=0.8", "tr"},
		{"en-US,en;q=0.9", "en"},
		{"de-DE", "en"},
		{"not a language;;", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLocale(tt.header))
		})
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set(AcceptLanguageHeader, "tr")

	assert.Equal(t, "tr", GetLocale(c))
}

func TestTag(t *testing.T) {
	assert.Equal(t, language.Turkish, Tag("tr"))
	assert.Equal(t, language.English, Tag("en"))
	assert.Equal(t, language.English, Tag("!!"))
}
