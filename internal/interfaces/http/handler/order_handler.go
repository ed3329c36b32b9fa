package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/svyrydov-ihor/burger-joint-web-app/internal/application/order"
	"github.com/svyrydov-ihor/burger-joint-web-app/pkg/logger"
)

type OrderHandler struct {
	svc *app.Service
	log logger.Logger
}

func NewOrderHandler(svc *app.Service, log logger.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: log}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var cmd app.CreateOrderCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.svc.Create(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, presentOrder(created))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	found, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if found == nil {
		respondNotFound(c, "order")
		return
	}

	c.JSON(http.StatusOK, presentOrder(found))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	offset, limit := pagination(c)

	orders, err := h.svc.FindAll(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, presentOrders(orders))
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var cmd app.UpdateOrderCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, cmd)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if updated == nil {
		respondNotFound(c, "order")
		return
	}

	c.JSON(http.StatusOK, presentOrder(updated))
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if !deleted {
		respondNotFound(c, "order")
		return
	}

	c.Status(http.StatusNoContent)
}
