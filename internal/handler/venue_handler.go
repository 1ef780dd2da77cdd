package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"go-gin-booking/internal/cache"
	"go-gin-booking/internal/middleware"
	"go-gin-booking/internal/model"
	"go-gin-booking/internal/service"
	apperrors "go-gin-booking/pkg/app_errors"
	"go-gin-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VenueHandler struct {
	service service.VenueService
}

func NewVenueHandler(service service.VenueService) *VenueHandler {
	return &VenueHandler{service: service}
}

func (h *VenueHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/venues")
	{
		router.GET("", h.ListVenues)
		router.POST("/search", h.SearchVenues)
		router.GET("/create", h.CreateVenueForm)
		router.POST("/create", h.CreateVenue)
		router.GET("/:id", h.ShowVenue)
		router.DELETE("/:id", h.DeleteVenue)
		// HTML forms cannot send DELETE
		router.POST("/:id/delete", h.DeleteVenue)
		router.GET("/:id/edit", h.EditVenueForm)
		router.POST("/:id/edit", h.EditVenue)
	}
}

func (h *VenueHandler) ListVenues(c *gin.Context) {
	areas, err := h.service.Areas(c.Request.Context())
	if err != nil {
		handleError(c, err, "ListVenues")
		return
	}

	render(c, http.StatusOK, "pages/venues.html", gin.H{"Title": "Venues", "Areas": areas})
}

func (h *VenueHandler) SearchVenues(c *gin.Context) {
	term := c.PostForm("search_term")

	results, err := h.service.Search(c.Request.Context(), term)
	if err != nil {
		handleError(c, err, "SearchVenues")
		return
	}

	render(c, http.StatusOK, "pages/search_venues.html", gin.H{
		"Title":      "Venue Search",
		"Results":    results,
		"SearchTerm": term,
	})
}

func (h *VenueHandler) ShowVenue(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		NotFound(c)
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "ShowVenue")
		return
	}

	render(c, http.StatusOK, "pages/show_venue.html", gin.H{"Title": detail.Name, "Venue": detail})
}

func (h *VenueHandler) CreateVenueForm(c *gin.Context) {
	render(c, http.StatusOK, "forms/new_venue.html", gin.H{"Title": "New Venue", "Form": &model.VenueForm{}})
}

func (h *VenueHandler) CreateVenue(c *gin.Context) {
	var form model.VenueForm
	if err := BindForm(c, &form); err != nil {
		middleware.RecordMutation(c, "venue", "create", err)
		flashFieldErrors(c, err)
		redirect(c, "/venues/create")
		return
	}

	_, err := h.service.Create(c.Request.Context(), form.ToVenue())
	middleware.RecordMutation(c, "venue", "create", err)
	if err != nil {
		logger.WithComponent("handler").Error("Failed to create venue",
			zap.String("operation", "CreateVenue"), zap.String("name", form.Name), zap.Error(err))
		middleware.AddFlash(c, cache.FlashError,
			fmt.Sprintf("We encountered an error when trying to list venue %s.", form.Name))
		redirect(c, "/")
		return
	}

	middleware.AddFlash(c, cache.FlashSuccess, fmt.Sprintf("Venue %s was successfully listed!", form.Name))
	redirect(c, "/")
}

func (h *VenueHandler) EditVenueForm(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		NotFound(c)
		return
	}

	venue, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "EditVenueForm")
		return
	}

	render(c, http.StatusOK, "forms/edit_venue.html", gin.H{
		"Title": "Edit Venue",
		"Form":  model.NewVenueForm(venue),
		"Venue": venue,
	})
}

func (h *VenueHandler) EditVenue(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		NotFound(c)
		return
	}
	detailURL := "/venues/" + strconv.Itoa(id)

	var form model.VenueForm
	if err := BindForm(c, &form); err != nil {
		middleware.RecordMutation(c, "venue", "update", err)
		flashFieldErrors(c, err)
		redirect(c, detailURL+"/edit")
		return
	}

	_, err = h.service.Update(c.Request.Context(), id, &form)
	middleware.RecordMutation(c, "venue", "update", err)
	if err != nil {
		if apperrors.IsNotFound(err) {
			handleError(c, err, "EditVenue")
			return
		}
		logger.WithComponent("handler").Error("Failed to update venue",
			zap.String("operation", "EditVenue"), zap.Int("venue_id", id), zap.Error(err))
		middleware.AddFlash(c, cache.FlashError,
			fmt.Sprintf("We encountered an error when trying to update venue %s.", form.Name))
		redirect(c, detailURL)
		return
	}

	middleware.AddFlash(c, cache.FlashSuccess, fmt.Sprintf("Venue %s was successfully updated!", form.Name))
	redirect(c, detailURL)
}

// DeleteVenue removes the venue and its shows, then always returns to the
// venue list. The outcome is reported through a flash.
func (h *VenueHandler) DeleteVenue(c *gin.Context) {
	log := logger.WithComponent("handler").With(zap.String("operation", "DeleteVenue"))

	id, err := parseID(c)
	if err == nil {
		err = h.service.Delete(c.Request.Context(), id)
	} else {
		err = apperrors.ErrVenueNotFound
	}
	middleware.RecordMutation(c, "venue", "delete", err)

	switch {
	case err == nil:
		middleware.AddFlash(c, cache.FlashSuccess, "The venue has been successfully deleted.")
	case apperrors.IsNotFound(err):
		log.Warn("Venue not found", zap.String("venue_id", c.Param("id")))
		middleware.AddFlash(c, cache.FlashError, "The venue could not be found.")
	default:
		log.Error("Failed to delete venue", zap.Int("venue_id", id), zap.Error(err))
		middleware.AddFlash(c, cache.FlashError, "We encountered an error when trying to delete the venue.")
	}

	redirect(c, "/venues")
}
