package configs

import (
	"log"

	"github.com/pathania28/s2y-taste-trail/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedDemoData provisions one account per role and a small catalog so a
// fresh database is immediately browsable. Uses FirstOrCreate throughout, so
// reruns are no-ops.
func SeedDemoData() error {
	db := DB()

	hash := func(pw string) string {
		h, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		return string(h)
	}

	var customer, vendor, vendor2, courier entity.User
	if err := db.Where(entity.User{Email: "customer@freshflow.dev"}).
		Attrs(entity.User{Password: hash("customer123"), Name: "John Doe", PhoneNumber: "+91 98765 43210", Address: "456 Home Lane, Sector 18", Role: entity.RoleCustomer}).
		FirstOrCreate(&customer).Error; err != nil {
		return err
	}
	if err := db.Where(entity.User{Email: "vendor@freshflow.dev"}).
		Attrs(entity.User{Password: hash("vendor123"), Name: "Green Garden Cafe", Role: entity.RoleVendor}).
		FirstOrCreate(&vendor).Error; err != nil {
		return err
	}
	if err := db.Where(entity.User{Email: "vendor2@freshflow.dev"}).
		Attrs(entity.User{Password: hash("vendor123"), Name: "Wood Fire Kitchen", Role: entity.RoleVendor}).
		FirstOrCreate(&vendor2).Error; err != nil {
		return err
	}
	if err := db.Where(entity.User{Email: "courier@freshflow.dev"}).
		Attrs(entity.User{Password: hash("courier123"), Name: "Demo Courier", Role: entity.RoleCourier}).
		FirstOrCreate(&courier).Error; err != nil {
		return err
	}

	var greenGarden, woodFire entity.Restaurant
	if err := db.Where(entity.Restaurant{Name: "Green Garden Cafe"}).
		Attrs(entity.Restaurant{
			Description:  "Fresh, organic ingredients from local farms",
			ImageURL:     "/images/green-garden.jpg",
			Rating:       4.6,
			DeliveryTime: "25-35 min",
			Category:     "Healthy",
			OwnerID:      vendor.ID,
		}).FirstOrCreate(&greenGarden).Error; err != nil {
		return err
	}
	if err := db.Where(entity.Restaurant{Name: "Wood Fire Kitchen"}).
		Attrs(entity.Restaurant{
			Description:  "Stone-oven pizzas and grilled plates",
			ImageURL:     "/images/wood-fire.jpg",
			Rating:       4.3,
			DeliveryTime: "30-40 min",
			Category:     "Italian",
			OwnerID:      vendor2.ID,
		}).FirstOrCreate(&woodFire).Error; err != nil {
		return err
	}

	menu := []entity.MenuItem{
		{Name: "Farm Fresh Salad Bowl", Description: "Mixed greens with organic vegetables and house dressing", Price: 180, Category: "Salads", Available: true, RestaurantID: greenGarden.ID},
		{Name: "Quinoa Power Bowl", Description: "Protein-rich quinoa with roasted vegetables", Price: 220, Category: "Healthy", Available: true, RestaurantID: greenGarden.ID},
		{Name: "Artisan Pizza", Description: "Wood-fired pizza with seasonal toppings", Price: 320, Category: "Pizza", Available: true, RestaurantID: woodFire.ID},
	}
	for _, m := range menu {
		var existing entity.MenuItem
		if err := db.Where(entity.MenuItem{Name: m.Name, RestaurantID: m.RestaurantID}).
			Attrs(m).FirstOrCreate(&existing).Error; err != nil {
			return err
		}
	}

	log.Println("demo data seeded")
	return nil
}
