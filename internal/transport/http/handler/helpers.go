package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"bokasafn/internal/transport/http/response"
)

const (
	defaultPageLimit  = 10
	defaultPageOffset = 0
)

// pageParams reads pagination from the paginglimit/pagingoffset request
// headers. Anything unparseable or negative falls back to the defaults.
func pageParams(c *gin.Context) (limit, offset int) {
	limit = headerInt(c, "paginglimit", defaultPageLimit)
	offset = headerInt(c, "pagingoffset", defaultPageOffset)
	return limit, offset
}

func headerInt(c *gin.Context, key string, fallback int) int {
	raw := c.GetHeader(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

// bindJSON reports a malformed body as 400 Invalid json and tells the
// caller whether to continue.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.InvalidJSON(c)
		return false
	}
	return true
}
