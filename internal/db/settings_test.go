package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPool(t *testing.T) DatabasePool {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.sqlite3")
	require.NoError(t, InitializeDatabase(path))
	require.NoError(t, MakeMigrations(path))

	pool, err := NewDatabasePool(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pool.Close(); err != nil {
			t.Errorf("could not close pool: %s", err)
		}
	})

	return pool
}

func TestGetSettingReturnsDefaultWhenUnset(t *testing.T) {
	pool := testPool(t)

	assert.Equal(t, "$user joined $channel", pool.GetSetting(KeyJoin))
	assert.Equal(t, "You were moved to $channel", pool.GetSetting(KeyMoveSelf))
	assert.Equal(t, "The call", pool.GetSetting(KeyPrivateCall))
	assert.Equal(t, "", pool.GetSetting(KeyVoice))
}

func TestSetSettingRoundTrip(t *testing.T) {
	pool := testPool(t)

	pool.SetSetting(KeyJoin, "$user hopped into $channel")
	assert.Equal(t, "$user hopped into $channel", pool.GetSetting(KeyJoin))

	// other keys keep their defaults
	assert.Equal(t, "$user left $channel", pool.GetSetting(KeyLeave))
}

func TestSetSettingOverwrites(t *testing.T) {
	pool := testPool(t)

	pool.SetSetting(KeyVoice, "de")
	pool.SetSetting(KeyVoice, "fr")
	assert.Equal(t, "fr", pool.GetSetting(KeyVoice))
}

func TestDisabledPoolServesDefaultsAndDropsWrites(t *testing.T) {
	pool := DatabasePool{Enabled: false}

	pool.SetSetting(KeyLeaveSelf, "Goodbye $channel")
	assert.Equal(t, "You left $channel", pool.GetSetting(KeyLeaveSelf))
}
