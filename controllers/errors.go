package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var ErrNoPermission = errors.New("you do not have permission to perform this action")

// renderNotFound shows the shared error page for a missing entity on the
// customer-facing HTML surface.
func renderNotFound(c *gin.Context, what string) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"code":    http.StatusNotFound,
		"message": what + " not found",
	})
}

func renderServerError(c *gin.Context, err error) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"code":    http.StatusInternalServerError,
		"message": err.Error(),
	})
}
