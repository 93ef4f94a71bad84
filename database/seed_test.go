package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSeedSettingsCreatesExactlyOne(t *testing.T) {
	store := newTestStore(t)
	db := store.GetDB().(*gorm.DB)

	require.NoError(t, RunSeeds(db))

	settings, err := store.GetSettings()
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, "Vaibhav Kumar", settings.Name)

	count, err := store.CountSettings()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSeedSettingsIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	db := store.GetDB().(*gorm.DB)

	require.NoError(t, RunSeeds(db))
	require.NoError(t, RunSeeds(db))

	count, err := store.CountSettings()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSeedSettingsSkipsExisting(t *testing.T) {
	store := newTestStore(t)
	db := store.GetDB().(*gorm.DB)

	custom, err := store.UpsertSettings(SettingFields{Name: strPtr("Someone Else")})
	require.NoError(t, err)

	require.NoError(t, RunSeeds(db))

	settings, err := store.GetSettings()
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, custom.Name, settings.Name)
}
