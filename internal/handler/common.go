package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BindJson binds the request body and answers 400 itself on failure; the
// caller only has to bail out.
func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}
