package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/svyrydov-ihor/burger-joint-web-app/internal/application/burger"
	"github.com/svyrydov-ihor/burger-joint-web-app/pkg/logger"
)

type BurgerHandler struct {
	svc *app.Service
	log logger.Logger
}

func NewBurgerHandler(svc *app.Service, log logger.Logger) *BurgerHandler {
	return &BurgerHandler{svc: svc, log: log}
}

func (h *BurgerHandler) CreateBurger(c *gin.Context) {
	var cmd app.CreateBurgerCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.svc.Create(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, presentBurger(created))
}

func (h *BurgerHandler) GetBurger(c *gin.Context) {
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
		respondNotFound(c, "burger")
		return
	}

	c.JSON(http.StatusOK, presentBurger(found))
}

func (h *BurgerHandler) ListBurgers(c *gin.Context) {
	offset, limit := pagination(c)

	burgers, err := h.svc.FindAll(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, presentBurgers(burgers))
}

func (h *BurgerHandler) UpdateBurger(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var cmd app.UpdateBurgerCommand
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
		respondNotFound(c, "burger")
		return
	}

	c.JSON(http.StatusOK, presentBurger(updated))
}

func (h *BurgerHandler) DeleteBurger(c *gin.Context) {
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
		respondNotFound(c, "burger")
		return
	}

	c.Status(http.StatusNoContent)
}
