package controllers

import (
	"strconv"

	"github.com/pathania28/s2y-taste-trail/entity"
	"github.com/pathania28/s2y-taste-trail/pkg/resp"
	"github.com/pathania28/s2y-taste-trail/services"
	"github.com/pathania28/s2y-taste-trail/utils"

	"github.com/gin-gonic/gin"
)

// VendorController is the restaurant owner's surface: the menu board and
// the incoming order board.
type VendorController struct {
	Menus  *services.MenuService
	Orders *services.OrderService
}

func NewVendorController(menus *services.MenuService, orders *services.OrderService) *VendorController {
	return &VendorController{Menus: menus, Orders: orders}
}

// GET /vendor/restaurant
func (vc *VendorController) Restaurant(c *gin.Context) {
	rest, err := vc.Orders.RestRepo.FindByOwner(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "no restaurant for this account")
		return
	}
	resp.OK(c, rest)
}

// ---------------- Menu management ----------------

// GET /vendor/menu
func (vc *VendorController) ListMenu(c *gin.Context) {
	items, err := vc.Menus.ListForVendor(utils.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /vendor/menu
func (vc *VendorController) CreateMenuItem(c *gin.Context) {
	var in services.MenuItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := vc.Menus.Create(utils.CurrentUserID(c), &in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /vendor/menu/:id
func (vc *VendorController) UpdateMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	var in services.MenuItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := vc.Menus.Update(utils.CurrentUserID(c), uint(id), &in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /vendor/menu/:id
func (vc *VendorController) DeleteMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	if err := vc.Menus.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

type AvailabilityReq struct {
	Available *bool `json:"available" binding:"required"`
}

// PATCH /vendor/menu/:id/availability
func (vc *VendorController) SetAvailability(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	var req AvailabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := vc.Menus.SetAvailability(utils.CurrentUserID(c), uint(id), *req.Available); err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "available": *req.Available})
}

// ---------------- Order board ----------------

// GET /vendor/orders?status=
func (vc *VendorController) ListOrders(c *gin.Context) {
	var status *entity.OrderStatus
	if s := c.Query("status"); s != "" {
		st := entity.OrderStatus(s)
		if !st.Valid() {
			resp.BadRequest(c, "unknown status")
			return
		}
		status = &st
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := vc.Orders.ListForVendor(utils.CurrentUserID(c), status, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type AdvanceReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// POST /vendor/orders/:id/advance
func (vc *VendorController) AdvanceOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req AdvanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := vc.Orders.AdvanceForVendor(utils.CurrentUserID(c), uint(id), req.Status); err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": req.Status})
}
