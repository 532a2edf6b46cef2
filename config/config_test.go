package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleConfig = `
storage_enabled: true
storage_supplier: ali_oss
log_level: info
geek:
  token: tok-geek
tuzi:
  token: tok-tuzi
request_order:
  - supplier: geek
    token_name: primary
    model: gemini-2.5-flash-image
  - supplier: tuzi
    token_name: fallback
    model: gpt-image-1
generation:
  display_delay: 1500ms
  tick_interval: 800ms
`

func TestInit(t *testing.T) {
	Init([]byte(sampleConfig))
	require.True(t, GConfig.StorageEnabled)
	require.Equal(t, "ali_oss", GConfig.StorageSupplier)
	require.Equal(t, "tok-geek", GConfig.Geek.Token)
	require.Equal(t, "tok-tuzi", GConfig.Tuzi.Token)
	require.Len(t, GConfig.RequestOrder, 2)
	require.Equal(t, "gemini-2.5-flash-image", GConfig.RequestOrder[0].Model)
	require.Equal(t, "800ms", GConfig.Generation.TickInterval)
	// url_expires falls back to the default when unset
	require.Equal(t, "168h", GConfig.URLExpires)
}

func TestVerifyRejectsUnknownStorageSupplier(t *testing.T) {
	c := &Config{
		StorageEnabled:  true,
		StorageSupplier: "ftp",
		RequestOrder:    []Request{{Supplier: "geek"}},
	}
	require.Error(t, c.Verify())
}

func TestVerifyRequiresRequestOrder(t *testing.T) {
	c := &Config{}
	require.Error(t, c.Verify())
}
