// Package web holds the embedded HTML templates and their helper functions.
package web

import (
	"embed"
	"html/template"
	"slices"
	"time"

	"go-gin-booking/internal/model"
)

//go:embed templates
var templatesFS embed.FS

const (
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
	fullLayout   = "Monday January, 2, 2006 at 3:04PM"
)

// FormatDatetime renders t in the "medium" or "full" style. Any other format
// falls back to medium. The argument order lets templates pipe a time into
// it: {{.StartTime | datetime "full"}}.
func FormatDatetime(format string, t time.Time) string {
	if format == "full" {
		return t.Format(fullLayout)
	}
	return t.Format(mediumLayout)
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"datetime": FormatDatetime,
		"contains": func(list []string, s string) bool { return slices.Contains(list, s) },
		"genres":   func() []string { return model.Genres },
		"states":   func() []string { return model.States },
	}
}

// Templates parses every embedded template. Each page defines itself under
// its path relative to templates/, e.g. "pages/home.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templatesFS,
		"templates/layouts/*.html",
		"templates/pages/*.html",
		"templates/forms/*.html",
		"templates/errors/*.html",
	)
}
