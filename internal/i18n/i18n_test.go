package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator(t *testing.T) {
	translator1 := GetTranslator()
	translator2 := GetTranslator()
	assert.NotNil(t, translator1)
	assert.Same(t, translator1, translator2)
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{
			name:     "english message",
			key:      ErrKeyIngredientNotFound,
			locale:   "en",
			expected: "Ingredient not found",
		},
		{
			name:     "german message",
			key:      ErrKeyIngredientNotFound,
			locale:   "de",
			expected: "Zutat nicht gefunden",
		},
		{
			name:     "empty locale falls back to english",
			key:      ErrKeyPersistence,
			locale:   "",
			expected: "Could not write to the cookbook files",
		},
		{
			name:     "unknown locale falls back to english",
			key:      ErrKeyInvalidRequest,
			locale:   "fr",
			expected: "Invalid request",
		},
		{
			name:     "unknown key returns the key itself",
			key:      "error.unknown_key",
			locale:   "en",
			expected: "error.unknown_key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "no header defaults to english", header: "", expected: "en"},
		{name: "plain german", header: "de", expected: "de"},
		{name: "region variant", header: "de-DE,de;q=0.9,en;q=0.8", expected: "de"},
		{name: "unsupported language defaults to english", header: "fr-FR", expected: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.header)
			}
			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}
