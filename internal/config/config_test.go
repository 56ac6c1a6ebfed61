package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"APP_ENV":       "",
		"PORT":          "",
		"PRODUCTS_FILE": "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, "data/products.csv", cfg.ProductsFile)
	require.Equal(t, "€", cfg.CurrencySymbol)
	require.Equal(t, "vegshop", cfg.MetricsNamespace)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"PORT":                 "9090",
		"PRODUCTS_FILE":        "/tmp/products.csv",
		"CURRENCY_SYMBOL":      "$",
		"CORS_ALLOWED_ORIGINS": "http://a.test, http://b.test",
	})
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddr())
	require.Equal(t, "/tmp/products.csv", cfg.ProductsFile)
	require.Equal(t, "$", cfg.CurrencySymbol)
	require.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestHTTPAddrAcceptsColonPrefix(t *testing.T) {
	cfg := &Config{Port: ":7070"}
	require.Equal(t, ":7070", cfg.HTTPAddr())
}
