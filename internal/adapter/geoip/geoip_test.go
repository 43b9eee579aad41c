package geoip

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("empty path disables lookups", func(t *testing.T) {
		locator, err := Open("", logger)

		require.NoError(t, err)
		assert.Nil(t, locator.Locate("8.8.8.8"))
		assert.NoError(t, locator.Close())
	})

	t.Run("missing database", func(t *testing.T) {
		locator, err := Open("invalid/path/GeoLite2-City.mmdb", logger)

		assert.Error(t, err)
		assert.Nil(t, locator)
	})
}

func TestLocator_Locate(t *testing.T) {
	locator := &Locator{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	for _, ip := range []string{"", "not an ip", "127.0.0.1", "10.0.0.1", "::1"} {
		assert.Nil(t, locator.Locate(ip), ip)
	}
}
