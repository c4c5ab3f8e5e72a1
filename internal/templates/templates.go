package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Must parses the named view from the embedded set and panics on error,
// mirroring template.Must(template.ParseFiles(...)) without depending on
// the working directory.
func Must(names ...string) *template.Template {
	return template.Must(template.ParseFS(files, names...))
}
