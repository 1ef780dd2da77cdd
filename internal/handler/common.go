package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go-gin-booking/internal/cache"
	"go-gin-booking/internal/middleware"
	apperrors "go-gin-booking/pkg/app_errors"
	"go-gin-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const defaultTitle = "Fyyur"

// BindForm binds the submitted form into obj. Failures come back as a
// *apperrors.ValidationError naming the offending form fields.
func BindForm(c *gin.Context, obj any) error {
	if err := c.ShouldBindWith(obj, binding.Form); err != nil {
		return toValidationError(err)
	}
	return nil
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &apperrors.ValidationError{Fields: []string{"form"}}
	}

	fields := make([]string, 0, len(verrs))
	seen := make(map[string]bool)
	for _, fe := range verrs {
		// genres[2] -> genres
		name := fe.Field()
		if i := strings.IndexByte(name, '['); i >= 0 {
			name = name[:i]
		}
		if !seen[name] {
			seen[name] = true
			fields = append(fields, name)
		}
	}
	return &apperrors.ValidationError{Fields: fields}
}

// flashFieldErrors queues one error flash per invalid field.
func flashFieldErrors(c *gin.Context, err error) {
	var ve *apperrors.ValidationError
	if !errors.As(err, &ve) {
		return
	}
	for _, field := range ve.Fields {
		middleware.AddFlash(c, cache.FlashError, fmt.Sprintf("Error with field %s.", field))
	}
}

func parseID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", c.Param("id"))
	}
	return id, nil
}

// render executes the named template with the session's pending flashes.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Title"]; !ok {
		data["Title"] = defaultTitle
	}
	data["Flashes"] = middleware.Flashes(c)
	c.HTML(status, name, data)
}

// redirect answers with 303 so the browser follows up with a GET.
func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// NotFound renders the 404 page.
func NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "errors/404.html", gin.H{"Title": "Not Found"})
}

func serverError(c *gin.Context) {
	render(c, http.StatusInternalServerError, "errors/500.html", gin.H{"Title": "Server Error"})
}

// handleError maps read failures to the 404 or 500 page.
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	_ = c.Error(err)
	switch {
	case apperrors.IsNotFound(err):
		log.Warn("Entity not found")
		NotFound(c)
	default:
		log.Error("Unexpected error")
		serverError(c)
	}
}
