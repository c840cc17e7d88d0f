package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/franciscosanchezn/uplate-admin/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupGormSlot(t *testing.T) *GormSlot {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	slot, err := NewGormSlot(db)
	require.NoError(t, err)
	return slot
}

func TestSlots(t *testing.T) {
	bunt, err := OpenBuntSlot(":memory:")
	require.NoError(t, err)

	slots := map[string]Slot{
		"buntdb": bunt,
		"gorm":   setupGormSlot(t),
	}
	for name, slot := range slots {
		t.Run(name, func(t *testing.T) {
			defer slot.Close()
			ctx := context.Background()

			_, ok, err := slot.Load(ctx, SectionsKey)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, slot.Save(ctx, SectionsKey, []byte(`[{"id":"section-1","name":"North Campus"}]`)))
			require.NoError(t, slot.Save(ctx, SectionsKey, []byte(`[]`)))

			value, ok, err := slot.Load(ctx, SectionsKey)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[]`, string(value))
		})
	}
}

func TestBuntSlotSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uplate.db")
	ctx := context.Background()

	slot, err := OpenBuntSlot(path)
	require.NoError(t, err)
	require.NoError(t, slot.Save(ctx, FoodsKey, []byte(`[{"id":"food-1"}]`)))
	require.NoError(t, slot.Close())

	reopened, err := OpenBuntSlot(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Load(ctx, FoodsKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"food-1"}]`, string(value))
}

func TestOpenSqliteSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.sqlite")
	slot, err := Open("sqlite", database.DatabaseConfig{Path: path})
	require.NoError(t, err)
	defer slot.Close()

	require.NoError(t, slot.Save(context.Background(), MenuItemsKey, []byte(`[]`)))
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("redis", database.DatabaseConfig{})
	assert.Error(t, err)
}
