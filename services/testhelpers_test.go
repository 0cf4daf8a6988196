package services_test

import (
	"testing"

	"github.com/pathania28/s2y-taste-trail/entity"
	"github.com/pathania28/s2y-taste-trail/repository"
	"github.com/pathania28/s2y-taste-trail/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh named in-memory database. cache=shared keeps the
// pooled connections pointed at the same store; the random name isolates
// tests from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderItem{},
	))
	return db
}

type fixture struct {
	db       *gorm.DB
	orders   *services.OrderService
	catalog  *services.CatalogService
	repo     *repository.OrderRepository
	customer entity.User
	vendor   entity.User
	rest     entity.Restaurant
	salad    entity.MenuItem
	quinoa   entity.MenuItem
}

func newFixture(t *testing.T, policy services.CheckoutPolicy) *fixture {
	t.Helper()
	db := newTestDB(t)

	f := &fixture{db: db}

	f.customer = entity.User{Email: "john@example.com", Password: "x", Name: "John Doe", Role: entity.RoleCustomer}
	require.NoError(t, db.Create(&f.customer).Error)
	f.vendor = entity.User{Email: "cafe@example.com", Password: "x", Name: "Green Garden Cafe", Role: entity.RoleVendor}
	require.NoError(t, db.Create(&f.vendor).Error)

	f.rest = entity.Restaurant{Name: "Green Garden Cafe", Rating: 4.6, DeliveryTime: "25-35 min", Category: "Healthy", OwnerID: f.vendor.ID}
	require.NoError(t, db.Create(&f.rest).Error)

	f.salad = entity.MenuItem{Name: "Farm Fresh Salad Bowl", Price: 180, Category: "Salads", Available: true, RestaurantID: f.rest.ID}
	require.NoError(t, db.Create(&f.salad).Error)
	f.quinoa = entity.MenuItem{Name: "Quinoa Power Bowl", Price: 220, Category: "Healthy", Available: true, RestaurantID: f.rest.ID}
	require.NoError(t, db.Create(&f.quinoa).Error)

	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	f.repo = repository.NewOrderRepository(db)
	f.orders = services.NewOrderService(db, f.repo, restRepo, policy)
	f.catalog = services.NewCatalogService(restRepo, menuRepo)
	return f
}

func (f *fixture) mustCount(t *testing.T) (int64, int64) {
	t.Helper()
	orders, err := f.repo.CountOrders()
	require.NoError(t, err)
	items, err := f.repo.CountOrderItems()
	require.NoError(t, err)
	return orders, items
}
