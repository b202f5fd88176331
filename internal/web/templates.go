// Package web packages the HTML templates into the binary so the server has
// no runtime file dependencies.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var embedded embed.FS

// Templates parses the full page set. Panics at startup on a bad template,
// never at request time.
func Templates() *template.Template {
	return template.Must(template.ParseFS(embedded, "templates/*.html"))
}
