package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/franciscosanchezn/uplate-admin/internal/config"
	"github.com/franciscosanchezn/uplate-admin/internal/controllers"
	"github.com/franciscosanchezn/uplate-admin/internal/middleware"
	"github.com/franciscosanchezn/uplate-admin/internal/models"
	"github.com/franciscosanchezn/uplate-admin/internal/persistence"
	"github.com/franciscosanchezn/uplate-admin/internal/remote"
	"github.com/franciscosanchezn/uplate-admin/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const adminKey = "s3cret"

type backend struct {
	remote services.RemoteCatalog
	server services.Catalog
	url    string
	reads  *int64
}

// setupBackend serves a local catalog through the HTTP controllers and
// points a remote catalog at it. Extra handlers run before the routes.
func setupBackend(t *testing.T, key string, extra ...gin.HandlerFunc) backend {
	gin.SetMode(gin.TestMode)

	slot, err := persistence.OpenBuntSlot("")
	require.NoError(t, err)
	local, err := services.NewLocalCatalog(context.Background(), slot)
	require.NoError(t, err)
	t.Cleanup(func() { _ = local.Close() })

	hash, err := middleware.HashAdminKey(adminKey, bcrypt.MinCost)
	require.NoError(t, err)

	var reads int64
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if c.Request.Method == "GET" && !strings.Contains(c.Request.URL.Path, "/admin/") {
			atomic.AddInt64(&reads, 1)
		}
		c.Next()
	})
	router.Use(extra...)
	controllers.RegisterRoutes(router.Group("/api"), local, "uplate", hash)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	client := remote.NewClient(remote.ClientConfig{BaseURL: server.URL + "/api", School: "uplate", AdminKey: key})
	return backend{remote: services.NewRemoteCatalog(client), server: local, url: server.URL, reads: &reads}
}

type world struct {
	section    models.Section
	restaurant models.Restaurant
	pizza      models.Food
	soda       models.Food
	feast      models.MenuItem
}

func build(t *testing.T, catalog services.Catalog) world {
	ctx := context.Background()
	var w world
	var err error
	w.section, err = catalog.CreateSection(ctx, models.Section{Name: "North"})
	require.NoError(t, err)
	w.restaurant, err = catalog.CreateRestaurant(ctx, models.Restaurant{
		Name: "Pizzeria", SectionID: w.section.ID, Location: models.Location{Address: "3 Main St"},
	})
	require.NoError(t, err)
	w.pizza, err = catalog.CreateFood(ctx, models.Food{Name: "Slice", RestaurantID: w.restaurant.ID, Calories: 285})
	require.NoError(t, err)
	w.soda, err = catalog.CreateFood(ctx, models.Food{Name: "Soda", RestaurantID: w.restaurant.ID, Calories: 150})
	require.NoError(t, err)
	w.feast, err = catalog.CreateMenuItem(ctx, models.MenuItem{
		Name:         "Pizza Feast",
		RestaurantID: w.restaurant.ID,
		Sizes: []models.MenuItemSize{
			{
				Name:          "Regular",
				Foods:         []models.MenuItemFood{{Food: w.pizza, Quantity: 2}},
				PossibleFoods: []models.MenuItemFood{{Food: w.soda, Quantity: 1}},
			},
			{
				Name:  "Family",
				Foods: []models.MenuItemFood{{Food: w.pizza, Quantity: 4}, {Food: w.soda, Quantity: 2}},
			},
		},
	})
	require.NoError(t, err)
	return w
}

func TestRemoteCatalogRoundTrip(t *testing.T) {
	b := setupBackend(t, adminKey)
	w := build(t, b.remote)
	ctx := context.Background()

	assert.NotEmpty(t, w.feast.ID)

	stored, err := b.server.GetMenuItem(ctx, w.feast.ID)
	require.NoError(t, err)
	require.Len(t, stored.Sizes, 2)
	assert.Equal(t, "Regular", stored.Sizes[0].Name)
	assert.Equal(t, "Family", stored.Sizes[1].Name)
	assert.Empty(t, stored.Foods)

	b.remote.InvalidateAll()
	fetched, err := b.remote.GetMenuItem(ctx, w.feast.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, fetched)
	assert.Equal(t, "Slice", fetched.Sizes[1].Foods[0].Food.Name)
	assert.Equal(t, 4, fetched.Sizes[1].Foods[0].Quantity)
}

func TestRemoteCatalogMemoizesPerRestaurant(t *testing.T) {
	b := setupBackend(t, adminKey)
	w := build(t, b.server)
	ctx := context.Background()

	_, err := b.remote.ListFoodsByRestaurant(ctx, w.restaurant.ID)
	require.NoError(t, err)
	before := atomic.LoadInt64(b.reads)

	foods, err := b.remote.ListFoodsByRestaurant(ctx, w.restaurant.ID)
	require.NoError(t, err)
	assert.Len(t, foods, 2)
	assert.Equal(t, before, atomic.LoadInt64(b.reads))

	// changes made behind the cache stay invisible until invalidated
	_, err = b.server.CreateFood(ctx, models.Food{Name: "Salad", RestaurantID: w.restaurant.ID})
	require.NoError(t, err)
	foods, err = b.remote.ListFoodsByRestaurant(ctx, w.restaurant.ID)
	require.NoError(t, err)
	assert.Len(t, foods, 2)

	b.remote.Invalidate(w.restaurant.ID)
	foods, err = b.remote.ListFoodsByRestaurant(ctx, w.restaurant.ID)
	require.NoError(t, err)
	assert.Len(t, foods, 3)
}

func TestRemoteCatalogMutationsAreVisibleImmediately(t *testing.T) {
	b := setupBackend(t, adminKey)
	w := build(t, b.remote)
	ctx := context.Background()

	calories := 300.0
	_, err := b.remote.UpdateFood(ctx, w.pizza.ID, models.FoodPatch{Calories: &calories})
	require.NoError(t, err)

	item, err := b.remote.GetMenuItem(ctx, w.feast.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, item.Sizes[0].Foods[0].Food.Calories)

	name := "Pizza Party"
	renamed, err := b.remote.UpdateMenuItem(ctx, w.feast.ID, models.MenuItemPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Pizza Party", renamed.Name)
	assert.Len(t, renamed.Sizes, 2)

	items, err := b.remote.ListMenuItemsByRestaurant(ctx, w.restaurant.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Pizza Party", items[0].Name)

	south, err := b.remote.CreateSection(ctx, models.Section{Name: "South"})
	require.NoError(t, err)
	moved, err := b.remote.MoveRestaurant(ctx, w.restaurant.ID, south.ID)
	require.NoError(t, err)
	assert.Equal(t, south.ID, moved.SectionID)
	n, err := b.remote.CountRestaurantsBySection(ctx, south.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRemoteCatalogCascadeOnRestaurantDelete(t *testing.T) {
	b := setupBackend(t, adminKey)
	w := build(t, b.remote)
	ctx := context.Background()

	require.NoError(t, b.remote.DeleteRestaurant(ctx, w.restaurant.ID))

	foods, err := b.remote.ListFoodsByRestaurant(ctx, w.restaurant.ID)
	require.NoError(t, err)
	assert.Empty(t, foods)
	items, err := b.remote.ListMenuItemsByRestaurant(ctx, w.restaurant.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = b.remote.GetFood(ctx, w.pizza.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = b.server.GetRestaurant(ctx, w.restaurant.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// failNth answers the nth request whose path contains fragment with a 500.
func failNth(fragment string, n int64) gin.HandlerFunc {
	var seen int64
	return func(c *gin.Context) {
		if strings.Contains(c.Request.URL.Path, fragment) && atomic.AddInt64(&seen, 1) == n {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_SERVER_ERROR"})
			return
		}
		c.Next()
	}
}

func TestRemoteCatalogCascadeStopsAtFirstFailure(t *testing.T) {
	b := setupBackend(t, adminKey, failNth("/deleteMenuItem/", 2))
	w := build(t, b.remote)
	ctx := context.Background()

	combo, err := b.remote.CreateMenuItem(ctx, models.MenuItem{
		Name:         "Slice Combo",
		RestaurantID: w.restaurant.ID,
		Foods:        []models.MenuItemFood{{Food: w.pizza, Quantity: 1}},
	})
	require.NoError(t, err)

	err = b.remote.DeleteRestaurant(ctx, w.restaurant.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrTransport)
	assert.Contains(t, err.Error(), "cascade stopped")

	// the first menu item stays deleted on both sides
	_, err = b.server.GetMenuItem(ctx, w.feast.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	cached, err := b.remote.ListMenuItemsByRestaurant(ctx, w.restaurant.ID)
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, combo.ID, cached[0].ID)

	// nothing after the failure was touched
	_, err = b.server.GetMenuItem(ctx, combo.ID)
	assert.NoError(t, err)
	foods, err := b.server.ListFoodsByRestaurant(ctx, w.restaurant.ID)
	require.NoError(t, err)
	assert.Len(t, foods, 2)
	_, err = b.server.GetRestaurant(ctx, w.restaurant.ID)
	assert.NoError(t, err)
	_, err = b.remote.GetRestaurant(ctx, w.restaurant.ID)
	assert.NoError(t, err)
}

func TestRemoteCatalogReadsReturnCopies(t *testing.T) {
	b := setupBackend(t, adminKey)
	w := build(t, b.remote)
	ctx := context.Background()

	item, err := b.remote.GetMenuItem(ctx, w.feast.ID)
	require.NoError(t, err)
	item.Sizes[0].Foods[0].Quantity = 0
	item.Sizes[1].Name = "Huge"

	listed, err := b.remote.ListMenuItemsByRestaurant(ctx, w.restaurant.ID)
	require.NoError(t, err)
	listed[0].Sizes[0].PossibleFoods = nil

	cached, err := b.remote.GetMenuItem(ctx, w.feast.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, cached.Sizes[0].Foods[0].Quantity)
	assert.Equal(t, "Family", cached.Sizes[1].Name)
	assert.Len(t, cached.Sizes[0].PossibleFoods, 1)
}

func TestRemoteCatalogSectionDeleteGuard(t *testing.T) {
	b := setupBackend(t, adminKey)
	w := build(t, b.remote)
	ctx := context.Background()

	err := b.remote.DeleteSection(ctx, w.section.ID)
	assert.ErrorIs(t, err, models.ErrConflict)

	sections, err := b.remote.ListSections(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, w.section.ID, sections[0].ID)
}

func TestRemoteCatalogFailsClosedWithoutKey(t *testing.T) {
	b := setupBackend(t, "")
	w := build(t, b.server)
	ctx := context.Background()

	_, err := b.remote.CreateSection(ctx, models.Section{Name: "South"})
	assert.ErrorIs(t, err, models.ErrAuth)

	err = b.remote.DeleteMenuItem(ctx, w.feast.ID)
	assert.ErrorIs(t, err, models.ErrAuth)

	_, err = b.server.GetMenuItem(ctx, w.feast.ID)
	assert.NoError(t, err)

	// reads work without a key
	sections, err := b.remote.ListSections(ctx)
	require.NoError(t, err)
	assert.Len(t, sections, 1)
}

func TestRemoteCatalogRejectsWrongKey(t *testing.T) {
	b := setupBackend(t, "wrong")
	build(t, b.server)

	_, err := b.remote.CreateSection(context.Background(), models.Section{Name: "South"})
	assert.ErrorIs(t, err, models.ErrAuth)
	assert.ErrorIs(t, err, models.ErrTransport)
}

func TestRemoteCatalogValidatesBeforeSending(t *testing.T) {
	b := setupBackend(t, adminKey)
	w := build(t, b.remote)
	ctx := context.Background()

	foods := []models.MenuItemFood{{Food: w.pizza, Quantity: 1}}
	_, err := b.remote.UpdateMenuItem(ctx, w.feast.ID, models.MenuItemPatch{Foods: &foods})
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.NotErrorIs(t, err, models.ErrTransport)

	_, err = b.remote.CreateRestaurant(ctx, models.Restaurant{Name: "Cafe", SectionID: "missing", Location: models.Location{Address: "x"}})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestNewCatalogRejectsUnknownBackend(t *testing.T) {
	_, err := services.NewCatalog(context.Background(), &config.Config{StoreBackend: "cloud"})
	assert.Error(t, err)
}
