package server

import (
	"embed"
	"html/template"
	"net/http"

	"MemberHub/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// renderPage executes the named template. Rendering failures after the
// header is written can only be logged.
func renderPage(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("failed to render page", logger.String("template", name), logger.ErrorField(err))
	}
}
