package localtime_test

import (
	"testing"
	"time"

	"lifelink/internal/pkg/localtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConverter(t *testing.T) {
	t.Run("loads_named_zone", func(t *testing.T) {
		c, err := localtime.NewConverter("America/Chicago")
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("empty_name_uses_default", func(t *testing.T) {
		c, err := localtime.NewConverter("")
		require.NoError(t, err)

		ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		// America/Chicago is UTC-5 in June (CDT).
		assert.Equal(t, "2024-06-01 07:00 CDT", c.String(&ts))
	})

	t.Run("unknown_zone_fails", func(t *testing.T) {
		_, err := localtime.NewConverter("Mars/Olympus_Mons")
		require.Error(t, err)
	})
}

func TestConverter_String(t *testing.T) {
	c, err := localtime.NewConverter("America/Chicago")
	require.NoError(t, err)

	t.Run("converts_utc_to_local", func(t *testing.T) {
		ts := time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC)
		// CST is UTC-6 in January.
		assert.Equal(t, "2024-01-15 12:30 CST", c.String(&ts))
	})

	t.Run("nil_timestamp_renders_empty", func(t *testing.T) {
		assert.Equal(t, "", c.String(nil))
	})
}
