package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/franciscosanchezn/uplate-admin/internal/database"
	"github.com/franciscosanchezn/uplate-admin/internal/editor"
	"github.com/franciscosanchezn/uplate-admin/internal/models"
	"github.com/franciscosanchezn/uplate-admin/internal/persistence"
	"github.com/franciscosanchezn/uplate-admin/internal/services"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Parse command line flags
	driver := flag.String("driver", "buntdb", "Local driver (buntdb, sqlite, postgres)")
	path := flag.String("path", "uplate.db", "File used by the buntdb and sqlite drivers")
	school := flag.String("school", "default", "School identifier printed in the example requests")
	flag.Parse()

	ctx := context.Background()
	slot, err := persistence.Open(*driver, database.DatabaseConfig{Path: *path})
	if err != nil {
		log.Fatal("Failed to open local store: ", err)
	}
	catalog, err := services.NewLocalCatalog(ctx, slot)
	if err != nil {
		log.Fatal("Failed to load catalog: ", err)
	}
	defer catalog.Close()

	// Only seed an empty store
	sections, err := catalog.ListSections(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if len(sections) > 0 {
		fmt.Printf("Store at %s already has %d section(s), nothing to do\n", *path, len(sections))
		return
	}

	section, err := catalog.CreateSection(ctx, models.Section{Name: "North Campus"})
	if err != nil {
		log.Fatal("Failed to create section: ", err)
	}
	restaurant, err := catalog.CreateRestaurant(ctx, models.Restaurant{
		Name:      "Slice House",
		SectionID: section.ID,
		Location:  models.Location{Address: "330 De Neve Dr"},
	})
	if err != nil {
		log.Fatal("Failed to create restaurant: ", err)
	}

	slice := mustFood(ctx, catalog, models.Food{
		RestaurantID: restaurant.ID, Name: "Cheese Pizza Slice", ServingSize: "1 slice",
		Calories: 285, Protein: 12, Carbs: 36, Fat: 10, Sodium: 640,
	})
	soda := mustFood(ctx, catalog, models.Food{
		RestaurantID: restaurant.ID, Name: "Fountain Soda", ServingSize: "16 fl oz",
		Calories: 150, Carbs: 41, Sugar: 41, Sodium: 30,
	})

	// Build the sized item the way the admin form does
	draft := editor.NewDraft(restaurant.ID)
	draft.Name = "Pizza Feast"
	regular := draft.AddSize("Regular")
	regular.Selection.ToggleFood(slice.ID)
	regular.Selection.SetFoodQuantity(slice.ID, 2)
	regular.Selection.TogglePossibleFood(soda.ID)
	family := draft.AddSize("Family")
	family.Selection.ToggleFood(slice.ID)
	family.Selection.SetFoodQuantity(slice.ID, 4)
	family.Selection.ToggleFood(soda.ID)
	family.Selection.SetFoodQuantity(soda.ID, 2)

	foods := map[string]models.Food{slice.ID: slice, soda.ID: soda}
	item, err := draft.Build(func(id string) (models.Food, bool) {
		f, ok := foods[id]
		return f, ok
	})
	if err != nil {
		log.Fatal("Invalid menu item draft: ", err)
	}
	feast, err := catalog.CreateMenuItem(ctx, item)
	if err != nil {
		log.Fatal("Failed to create menu item: ", err)
	}

	fmt.Printf("✓ Demo catalog seeded in %s (%s)\n", *path, *driver)
	fmt.Printf("Section: %s\nRestaurant: %s\nMenu item: %s\n", section.ID, restaurant.ID, feast.ID)
	fmt.Println("\nTry it:")
	fmt.Printf("curl http://localhost:8080/api/%s/restaurants/%s/menuItems/%s/nutrition\n", *school, restaurant.ID, feast.ID)
}

func mustFood(ctx context.Context, catalog services.Catalog, food models.Food) models.Food {
	created, err := catalog.CreateFood(ctx, food)
	if err != nil {
		log.Fatal("Failed to create food: ", err)
	}
	return created
}
