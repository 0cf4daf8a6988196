package controllers

import (
	"strconv"

	"github.com/pathania28/s2y-taste-trail/entity"
	"github.com/pathania28/s2y-taste-trail/pkg/resp"
	"github.com/pathania28/s2y-taste-trail/services"

	"github.com/gin-gonic/gin"
)

// CourierController is the delivery surface. Its job board and active list
// are plain reads of the shared ledger; marking pickup and delivery go
// through the same AdvanceStatus contract the vendor uses.
type CourierController struct {
	Orders *services.OrderService
}

func NewCourierController(orders *services.OrderService) *CourierController {
	return &CourierController{Orders: orders}
}

// GET /courier/orders/available — orders ready for pickup
func (cc *CourierController) Available(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := cc.Orders.ListByStatus(entity.StatusReady, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /courier/orders/active — orders out for delivery
func (cc *CourierController) Active(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := cc.Orders.ListByStatus(entity.StatusPickedUp, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /courier/orders/:id/advance
func (cc *CourierController) AdvanceOrder(c *gin.Context) {
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
	if err := cc.Orders.AdvanceForCourier(uint(id), req.Status); err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": req.Status})
}
