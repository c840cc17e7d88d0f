// Package persistence provides the durable key-value slots the local catalog
// writes after every mutation. Each entity collection lives in one slot.
package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/uplate-admin/internal/database"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// Slot keys for each collection
const (
	SectionsKey    = "uplate_sections"
	RestaurantsKey = "uplate_restaurants"
	FoodsKey       = "uplate_foods"
	MenuItemsKey   = "uplate_menu_items"
)

// Slot is a durable key-value store holding one serialized value per key.
type Slot interface {
	// Load returns the stored value and whether the key exists
	Load(ctx context.Context, key string) ([]byte, bool, error)
	// Save replaces the value stored under key
	Save(ctx context.Context, key string, value []byte) error
	// Close releases the underlying storage
	Close() error
}

// Open creates the slot selected by driver: "buntdb" stores slots in a buntdb
// file, "sqlite" and "postgres" store them in a kv_slots table through gorm.
func Open(driver string, cfg database.DatabaseConfig) (Slot, error) {
	switch strings.ToLower(driver) {
	case "buntdb", "":
		return OpenBuntSlot(cfg.Path)
	case "sqlite", "postgres", "postgresql":
		cfg.Driver = driver
		db, err := database.InitDatabase(cfg)
		if err != nil {
			return nil, err
		}
		return NewGormSlot(db)
	default:
		return nil, fmt.Errorf("unsupported local driver: %s (supported: buntdb, sqlite, postgres)", driver)
	}
}
