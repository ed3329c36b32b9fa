package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/svyrydov-ihor/burger-joint-web-app/internal/application/customer"
	"github.com/svyrydov-ihor/burger-joint-web-app/pkg/logger"
)

type CustomerHandler struct {
	svc *app.Service
	log logger.Logger
}

func NewCustomerHandler(svc *app.Service, log logger.Logger) *CustomerHandler {
	return &CustomerHandler{svc: svc, log: log}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var cmd app.CreateCustomerCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.svc.Create(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, presentCustomer(created))
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
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
		respondNotFound(c, "customer")
		return
	}

	c.JSON(http.StatusOK, presentCustomer(found))
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	offset, limit := pagination(c)

	customers, err := h.svc.FindAll(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, presentCustomers(customers))
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var cmd app.UpdateCustomerCommand
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
		respondNotFound(c, "customer")
		return
	}

	c.JSON(http.StatusOK, presentCustomer(updated))
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
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
		respondNotFound(c, "customer")
		return
	}

	c.Status(http.StatusNoContent)
}
