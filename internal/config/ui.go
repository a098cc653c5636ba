package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// UIConfig carries the route and presentation settings the server needs
// before any page renders: which paths require an authenticated session,
// and the locale/theme used when no cookie says otherwise.
type UIConfig struct {
	ProtectedRoutes []string `mapstructure:"protectedRoutes"`
	AuthEntryPath   string   `mapstructure:"authEntryPath"`
	DefaultLocale   string   `mapstructure:"defaultLocale"`
	DefaultTheme    string   `mapstructure:"defaultTheme"`
}

func DefaultUIConfig() UIConfig {
	return UIConfig{
		ProtectedRoutes: []string{"/dashboard"},
		AuthEntryPath:   "/auth",
		DefaultLocale:   "en",
		DefaultTheme:    "light",
	}
}

type UIConfigHolder struct {
	current atomic.Value // holds UIConfig
}

func NewUIConfigHolder() (*UIConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("ui")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/vitrina/config") // Volume-mounted config
	v.AddConfigPath("/etc/vitrina")            // System config
	v.AddConfigPath(".")                       // Current directory (dev mode)

	v.SetEnvPrefix("VITRINA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// if config file not found, use defaults
		defaults := DefaultUIConfig()
		v.SetDefault("ui.protectedRoutes", defaults.ProtectedRoutes)
		v.SetDefault("ui.authEntryPath", defaults.AuthEntryPath)
		v.SetDefault("ui.defaultLocale", defaults.DefaultLocale)
		v.SetDefault("ui.defaultTheme", defaults.DefaultTheme)
	}

	var cfg UIConfig
	if err := v.UnmarshalKey("ui", &cfg); err != nil {
		return nil, err
	}
	if err := validateUIConfig(cfg); err != nil {
		return nil, err
	}

	holder := &UIConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated UIConfig
		if err := v.UnmarshalKey("ui", &updated); err != nil {
			log.Printf("[ui-config] reload failed: %v", err)
			return
		}
		if err := validateUIConfig(updated); err != nil {
			log.Printf("[ui-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[ui-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// StaticUIConfigHolder wraps a fixed config with no file watching.
func StaticUIConfigHolder(cfg UIConfig) *UIConfigHolder {
	h := &UIConfigHolder{}
	h.current.Store(cfg)
	return h
}

func (h *UIConfigHolder) Get() UIConfig {
	return h.current.Load().(UIConfig)
}

// IsProtected reports whether the given request path requires an
// authenticated session before the page may render.
func (h *UIConfigHolder) IsProtected(path string) bool {
	cfg := h.Get()
	for _, route := range cfg.ProtectedRoutes {
		if path == route || strings.HasPrefix(path, route+"/") {
			return true
		}
	}
	return false
}

func validateUIConfig(cfg UIConfig) error {
	if strings.TrimSpace(cfg.AuthEntryPath) == "" {
		return errors.New("ui.authEntryPath cannot be empty")
	}
	if !strings.HasPrefix(cfg.AuthEntryPath, "/") {
		return errors.New("ui.authEntryPath must be an absolute path")
	}
	switch cfg.DefaultTheme {
	case "", "light", "dark":
	default:
		return errors.New("ui.defaultTheme must be light or dark")
	}
	return nil
}
