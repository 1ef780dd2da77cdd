package handler

import (
	"net/http"
	"time"

	"go-gin-booking/internal/cache"
	"go-gin-booking/internal/middleware"
	"go-gin-booking/internal/model"
	"go-gin-booking/internal/service"
	"go-gin-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ShowHandler struct {
	service service.ShowService
	// loc interprets the naive start_time entered in the form.
	loc *time.Location
}

func NewShowHandler(service service.ShowService, loc *time.Location) *ShowHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ShowHandler{service: service, loc: loc}
}

func (h *ShowHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/shows")
	{
		router.GET("", h.ListShows)
		router.GET("/create", h.CreateShowForm)
		router.POST("/create", h.CreateShow)
	}
}

func (h *ShowHandler) ListShows(c *gin.Context) {
	shows, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err, "ListShows")
		return
	}

	render(c, http.StatusOK, "pages/shows.html", gin.H{"Title": "Shows", "Shows": shows})
}

func (h *ShowHandler) CreateShowForm(c *gin.Context) {
	render(c, http.StatusOK, "forms/new_show.html", gin.H{"Title": "New Show", "Form": &model.ShowForm{}})
}

func (h *ShowHandler) CreateShow(c *gin.Context) {
	var form model.ShowForm
	err := BindForm(c, &form)
	var show *model.Show
	if err == nil {
		show, err = form.ToShow(h.loc)
	}
	if err != nil {
		middleware.RecordMutation(c, "show", "create", err)
		flashFieldErrors(c, err)
		redirect(c, "/shows/create")
		return
	}

	_, err = h.service.Create(c.Request.Context(), show)
	middleware.RecordMutation(c, "show", "create", err)
	if err != nil {
		logger.WithComponent("handler").Error("Failed to create show",
			zap.String("operation", "CreateShow"),
			zap.Int("artist_id", show.ArtistID), zap.Int("venue_id", show.VenueID), zap.Error(err))
		middleware.AddFlash(c, cache.FlashError, "We encountered an error when trying to list the show.")
		redirect(c, "/")
		return
	}

	middleware.AddFlash(c, cache.FlashSuccess, "The show was successfully listed!")
	redirect(c, "/")
}
