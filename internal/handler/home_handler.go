package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Index)
}

func (h *HomeHandler) Index(c *gin.Context) {
	render(c, http.StatusOK, "pages/home.html", nil)
}
