package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultUIConfig(t *testing.T) {
	cfg := DefaultUIConfig()

	assert.Equal(t, []string{"/dashboard"}, cfg.ProtectedRoutes)
	assert.Equal(t, "/auth", cfg.AuthEntryPath)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, "light", cfg.DefaultTheme)
}

func TestIsProtected(t *testing.T) {
	holder := StaticUIConfigHolder(UIConfig{
		ProtectedRoutes: []string{"/dashboard", "/settings"},
		AuthEntryPath:   "/auth",
	})

	tests := []struct {
		path      string
		protected bool
	}{
		{"/dashboard", true},
		{"/dashboard/orders", true},
		{"/dashboards", false},
		{"/settings", true},
		{"/", false},
		{"/auth", false},
		{"/companies", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.protected, holder.IsProtected(tt.path), tt.path)
	}
}

func TestValidateUIConfig(t *testing.T) {
	assert.NoError(t, validateUIConfig(DefaultUIConfig()))
	assert.Error(t, validateUIConfig(UIConfig{AuthEntryPath: ""}))
	assert.Error(t, validateUIConfig(UIConfig{AuthEntryPath: "auth"}))
	assert.Error(t, validateUIConfig(UIConfig{AuthEntryPath: "/auth", DefaultTheme: "sepia"}))
}
