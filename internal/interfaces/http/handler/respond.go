package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/apperr"
	"github.com/svyrydov-ihor/burger-joint-web-app/pkg/logger"
)

const (
	defaultOffset = 0
	defaultLimit  = 100
)

// respondError maps domain errors onto API status codes. Conflicts surface
// their message verbatim; anything unexpected is logged and hidden behind a
// generic 500.
func respondError(c *gin.Context, log logger.Logger, err error) {
	if apperr.IsConflict(err) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	log.Error("request failed", logger.Error(err), logger.String("path", c.FullPath()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}

func pagination(c *gin.Context) (offset, limit int) {
	offset = queryInt(c, "offset", defaultOffset)
	limit = queryInt(c, "limit", defaultLimit)
	if offset < 0 {
		offset = defaultOffset
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return offset, limit
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
