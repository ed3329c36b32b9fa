package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/svyrydov-ihor/burger-joint-web-app/internal/application/ingredient"
	"github.com/svyrydov-ihor/burger-joint-web-app/pkg/logger"
)

// IngredientHandler serves the read-only ingredient catalog; the catalog is
// managed by the seeding tool, not the API.
type IngredientHandler struct {
	svc *app.Service
	log logger.Logger
}

func NewIngredientHandler(svc *app.Service, log logger.Logger) *IngredientHandler {
	return &IngredientHandler{svc: svc, log: log}
}

func (h *IngredientHandler) GetIngredient(c *gin.Context) {
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
		respondNotFound(c, "ingredient")
		return
	}

	c.JSON(http.StatusOK, presentIngredient(found))
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	offset, limit := pagination(c)

	ingredients, err := h.svc.FindAll(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, presentIngredients(ingredients))
}
