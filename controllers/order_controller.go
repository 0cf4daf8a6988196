package controllers

import (
	"strconv"

	"github.com/pathania28/s2y-taste-trail/pkg/resp"
	"github.com/pathania28/s2y-taste-trail/services"
	"github.com/pathania28/s2y-taste-trail/utils"

	"github.com/gin-gonic/gin"
)

// OrderController is the customer surface: checkout, history, detail.
type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

type CartLineIn struct {
	MenuItemID uint  `json:"menuItemId" binding:"required"`
	Quantity   int   `json:"quantity" binding:"required,min=1"`
	Price      int64 `json:"price" binding:"min=0"`
}

type PlaceOrderReq struct {
	RestaurantID    uint         `json:"restaurantId" binding:"required"`
	Items           []CartLineIn `json:"items" binding:"required,min=1,dive"`
	DeliveryAddress string       `json:"deliveryAddress" binding:"required"`
	PhoneNumber     string       `json:"phoneNumber" binding:"required"`
	Note            string       `json:"note"`
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	lines := make([]services.CartLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, services.CartLine{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Price:      it.Price,
		})
	}

	placed, err := oc.Svc.PlaceOrder(
		utils.CurrentUserID(c), req.RestaurantID, lines,
		req.DeliveryAddress, req.PhoneNumber, req.Note,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.Created(c, placed)
}

// GET /orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := oc.Svc.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	detail, err := oc.Svc.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, detail)
}
