package controllers

import (
	"strconv"

	"github.com/pathania28/s2y-taste-trail/pkg/resp"
	"github.com/pathania28/s2y-taste-trail/services"

	"github.com/gin-gonic/gin"
)

// RestaurantController is the public catalog surface.
type RestaurantController struct {
	Catalog *services.CatalogService
}

func NewRestaurantController(catalog *services.CatalogService) *RestaurantController {
	return &RestaurantController{Catalog: catalog}
}

// GET /restaurants
func (rc *RestaurantController) List(c *gin.Context) {
	rests, err := rc.Catalog.ListRestaurants()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rests})
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	rest, err := rc.Catalog.GetRestaurant(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /restaurants/:id/menu
func (rc *RestaurantController) Menu(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	items, err := rc.Catalog.ListMenuItems(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
