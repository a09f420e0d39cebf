package controllers

import (
	"strconv"

	"junkrun/middleware"

	"github.com/gin-gonic/gin"
)

// currentUserID reads the authenticated user id set by AuthMiddleware.
// Returns 0 when the request is unauthenticated.
func currentUserID(c *gin.Context) uint {
	raw, _ := c.Get(middleware.ContextUserIDKey)
	s, _ := raw.(string)
	uid, _ := strconv.Atoi(s)
	return uint(uid)
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
