package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/uplate-admin/internal/config"
	"github.com/franciscosanchezn/uplate-admin/internal/models"
	"github.com/franciscosanchezn/uplate-admin/internal/persistence"
	"github.com/franciscosanchezn/uplate-admin/internal/remote"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel adjusts the verbosity of the catalog logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// SectionService manages campus sections
type SectionService interface {
	// ListSections returns every section in creation order
	ListSections(ctx context.Context) ([]models.Section, error)
	// GetSection returns a section by its ID
	GetSection(ctx context.Context, id string) (models.Section, error)
	// CreateSection validates and stores a new section
	CreateSection(ctx context.Context, section models.Section) (models.Section, error)
	// UpdateSection merges patch into an existing section
	UpdateSection(ctx context.Context, id string, patch models.SectionPatch) (models.Section, error)
	// DeleteSection deletes a section; it fails with a conflict while restaurants reference it
	DeleteSection(ctx context.Context, id string) error
}

// RestaurantService manages restaurants
type RestaurantService interface {
	// ListRestaurants returns every restaurant
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurant returns a restaurant by its ID
	GetRestaurant(ctx context.Context, id string) (models.Restaurant, error)
	// ListRestaurantsBySection returns the restaurants of a section
	ListRestaurantsBySection(ctx context.Context, sectionID string) ([]models.Restaurant, error)
	// CountRestaurantsBySection returns how many restaurants reference a section
	CountRestaurantsBySection(ctx context.Context, sectionID string) (int, error)
	// CreateRestaurant validates and stores a new restaurant under an existing section
	CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	// UpdateRestaurant merges patch into an existing restaurant
	UpdateRestaurant(ctx context.Context, id string, patch models.RestaurantPatch) (models.Restaurant, error)
	// MoveRestaurant changes only the section of a restaurant
	MoveRestaurant(ctx context.Context, id, sectionID string) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant together with its menu items and foods
	DeleteRestaurant(ctx context.Context, id string) error
}

// FoodService manages foods
type FoodService interface {
	ListFoods(ctx context.Context) ([]models.Food, error)
	GetFood(ctx context.Context, id string) (models.Food, error)
	ListFoodsByRestaurant(ctx context.Context, restaurantID string) ([]models.Food, error)
	CreateFood(ctx context.Context, food models.Food) (models.Food, error)
	UpdateFood(ctx context.Context, id string, patch models.FoodPatch) (models.Food, error)
	DeleteFood(ctx context.Context, id string) error
}

// MenuItemService manages menu items. Items go through the flat codec on
// their way to and from storage.
type MenuItemService interface {
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (models.MenuItem, error)
	ListMenuItemsByRestaurant(ctx context.Context, restaurantID string) ([]models.MenuItem, error)
	// CreateMenuItem keeps a caller supplied ID and generates one otherwise
	CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, patch models.MenuItemPatch) (models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
}

// Invalidator drops memoized remote reads so the next read fetches again.
type Invalidator interface {
	// Invalidate forgets the foods and menu items fetched for one restaurant
	Invalidate(restaurantID string)
	// InvalidateAll forgets everything fetched so far
	InvalidateAll()
}

// Catalog is the collection store seen by consumers. Both backends satisfy it.
type Catalog interface {
	SectionService
	RestaurantService
	FoodService
	MenuItemService
	// Close releases the backend
	Close() error
}

// NewCatalog builds the backend selected by cfg.StoreBackend.
func NewCatalog(ctx context.Context, cfg *config.Config) (Catalog, error) {
	switch cfg.StoreBackend {
	case config.BackendLocal:
		slot, err := persistence.Open(cfg.LocalDriver, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("open local store: %w", err)
		}
		catalog, err := NewLocalCatalog(ctx, slot)
		if err != nil {
			_ = slot.Close()
			return nil, err
		}
		return catalog, nil
	case config.BackendRemote:
		client := remote.NewClient(remote.ClientConfig{
			BaseURL:  cfg.APIBaseURL,
			School:   cfg.School,
			AdminKey: cfg.AdminKey,
			Timeout:  cfg.RemoteTimeout,
		})
		return NewRemoteCatalog(client), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.StoreBackend)
	}
}
