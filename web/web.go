// Package web holds the embedded HTML templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"date": formatDate,
}

// Templates parses every page template. Each page is addressed by its file name.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}

// Static serves the files under static/.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.Local().Format("02/01/2006 15:04")
	case *time.Time:
		if t == nil {
			return ""
		}
		return formatDate(*t)
	default:
		return ""
	}
}
