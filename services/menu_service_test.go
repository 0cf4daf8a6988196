package services_test

import (
	"testing"

	"github.com/pathania28/s2y-taste-trail/entity"
	"github.com/pathania28/s2y-taste-trail/repository"
	"github.com/pathania28/s2y-taste-trail/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuService(f *fixture) *services.MenuService {
	return services.NewMenuService(
		repository.NewMenuRepository(f.db),
		repository.NewRestaurantRepository(f.db),
	)
}

func TestMenuCreateAndList(t *testing.T) {
	f := newFixture(t, services.PolicyPriceLock)
	svc := newMenuService(f)

	item, err := svc.Create(f.vendor.ID, &services.MenuItemInput{
		Name: "Artisan Pizza", Description: "Wood-fired", Price: 320, Category: "Pizza",
	})
	require.NoError(t, err)
	assert.True(t, item.Available)
	assert.Equal(t, f.rest.ID, item.RestaurantID)

	items, err := svc.ListForVendor(f.vendor.ID)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestMenuCreateDefaultsCategory(t *testing.T) {
	f := newFixture(t, services.PolicyPriceLock)
	svc := newMenuService(f)

	item, err := svc.Create(f.vendor.ID, &services.MenuItemInput{Name: "Soup of the Day", Price: 90})
	require.NoError(t, err)
	assert.Equal(t, "Main", item.Category)
}

func TestMenuMutationsRequireOwnership(t *testing.T) {
	f := newFixture(t, services.PolicyPriceLock)
	svc := newMenuService(f)

	// the customer owns no restaurant at all
	_, err := svc.Create(f.customer.ID, &services.MenuItemInput{Name: "X", Price: 1})
	assert.ErrorIs(t, err, services.ErrForbidden)

	// a second vendor cannot touch the first vendor's items
	other := entity.User{Email: "other@example.com", Password: "x", Role: entity.RoleVendor}
	require.NoError(t, f.db.Create(&other).Error)
	otherRest := entity.Restaurant{Name: "Other Place", OwnerID: other.ID}
	require.NoError(t, f.db.Create(&otherRest).Error)

	_, err = svc.Update(other.ID, f.salad.ID, &services.MenuItemInput{Name: "Hijacked", Price: 1})
	assert.ErrorIs(t, err, services.ErrForbidden)
	err = svc.Delete(other.ID, f.salad.ID)
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestMenuSetAvailabilityHidesFromCatalog(t *testing.T) {
	f := newFixture(t, services.PolicyPriceLock)
	svc := newMenuService(f)

	require.NoError(t, svc.SetAvailability(f.vendor.ID, f.salad.ID, false))

	catalog, err := f.catalog.ListMenuItems(f.rest.ID)
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, f.quinoa.ID, catalog[0].ID)

	// the vendor's own board still shows everything
	all, err := svc.ListForVendor(f.vendor.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMenuUpdateDoesNotTouchPastOrders(t *testing.T) {
	f := newFixture(t, services.PolicyPriceLock)
	svc := newMenuService(f)

	placed, err := f.orders.PlaceOrder(f.customer.ID, f.rest.ID,
		[]services.CartLine{{MenuItemID: f.salad.ID, Quantity: 1, Price: 180}}, "addr", "phone", "")
	require.NoError(t, err)

	_, err = svc.Update(f.vendor.ID, f.salad.ID, &services.MenuItemInput{Name: "Farm Fresh Salad Bowl", Price: 999})
	require.NoError(t, err)

	var oi entity.OrderItem
	require.NoError(t, f.db.Where("order_id = ?", placed.ID).First(&oi).Error)
	assert.Equal(t, int64(180), oi.UnitPrice)
}

func TestMenuDeleteUnknownItem(t *testing.T) {
	f := newFixture(t, services.PolicyPriceLock)
	svc := newMenuService(f)

	err := svc.Delete(f.vendor.ID, 9999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
