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

type ArtistHandler struct {
	service service.ArtistService
}

func NewArtistHandler(service service.ArtistService) *ArtistHandler {
	return &ArtistHandler{service: service}
}

func (h *ArtistHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/artists")
	{
		router.GET("", h.ListArtists)
		router.POST("/search", h.SearchArtists)
		router.GET("/create", h.CreateArtistForm)
		router.POST("/create", h.CreateArtist)
		router.GET("/:id", h.ShowArtist)
		router.GET("/:id/edit", h.EditArtistForm)
		router.POST("/:id/edit", h.EditArtist)
	}
}

func (h *ArtistHandler) ListArtists(c *gin.Context) {
	artists, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err, "ListArtists")
		return
	}

	render(c, http.StatusOK, "pages/artists.html", gin.H{"Title": "Artists", "Artists": artists})
}

func (h *ArtistHandler) SearchArtists(c *gin.Context) {
	term := c.PostForm("search_term")

	results, err := h.service.Search(c.Request.Context(), term)
	if err != nil {
		handleError(c, err, "SearchArtists")
		return
	}

	render(c, http.StatusOK, "pages/search_artists.html", gin.H{
		"Title":      "Artist Search",
		"Results":    results,
		"SearchTerm": term,
	})
}

func (h *ArtistHandler) ShowArtist(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		NotFound(c)
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "ShowArtist")
		return
	}

	render(c, http.StatusOK, "pages/show_artist.html", gin.H{"Title": detail.Name, "Artist": detail})
}

func (h *ArtistHandler) CreateArtistForm(c *gin.Context) {
	render(c, http.StatusOK, "forms/new_artist.html", gin.H{"Title": "New Artist", "Form": &model.ArtistForm{}})
}

func (h *ArtistHandler) CreateArtist(c *gin.Context) {
	var form model.ArtistForm
	if err := BindForm(c, &form); err != nil {
		middleware.RecordMutation(c, "artist", "create", err)
		flashFieldErrors(c, err)
		redirect(c, "/artists/create")
		return
	}

	_, err := h.service.Create(c.Request.Context(), form.ToArtist())
	middleware.RecordMutation(c, "artist", "create", err)
	if err != nil {
		logger.WithComponent("handler").Error("Failed to create artist",
			zap.String("operation", "CreateArtist"), zap.String("name", form.Name), zap.Error(err))
		middleware.AddFlash(c, cache.FlashError,
			fmt.Sprintf("We encountered an error when trying to list artist %s.", form.Name))
		redirect(c, "/")
		return
	}

	middleware.AddFlash(c, cache.FlashSuccess, fmt.Sprintf("Artist %s was successfully listed!", form.Name))
	redirect(c, "/")
}

func (h *ArtistHandler) EditArtistForm(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		NotFound(c)
		return
	}

	artist, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "EditArtistForm")
		return
	}

	render(c, http.StatusOK, "forms/edit_artist.html", gin.H{
		"Title":  "Edit Artist",
		"Form":   model.NewArtistForm(artist),
		"Artist": artist,
	})
}

func (h *ArtistHandler) EditArtist(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		NotFound(c)
		return
	}
	detailURL := "/artists/" + strconv.Itoa(id)

	var form model.ArtistForm
	if err := BindForm(c, &form); err != nil {
		middleware.RecordMutation(c, "artist", "update", err)
		flashFieldErrors(c, err)
		redirect(c, detailURL+"/edit")
		return
	}

	_, err = h.service.Update(c.Request.Context(), id, &form)
	middleware.RecordMutation(c, "artist", "update", err)
	if err != nil {
		if apperrors.IsNotFound(err) {
			handleError(c, err, "EditArtist")
			return
		}
		logger.WithComponent("handler").Error("Failed to update artist",
			zap.String("operation", "EditArtist"), zap.Int("artist_id", id), zap.Error(err))
		middleware.AddFlash(c, cache.FlashError,
			fmt.Sprintf("We encountered an error when trying to update artist %s.", form.Name))
		redirect(c, detailURL)
		return
	}

	middleware.AddFlash(c, cache.FlashSuccess, fmt.Sprintf("Artist %s was successfully updated!", form.Name))
	redirect(c, detailURL)
}
