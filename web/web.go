// Package web embeds the HTML templates and static assets so the binary
// and the tests render the same pages.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed template static
var files embed.FS

// Templates parses every page and admin template with funcs.
func Templates(funcs template.FuncMap) (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "template/*.html", "template/admin/*.html")
}

// StaticFS is the embedded static directory, rooted at its contents.
func StaticFS() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Static serves the embedded static directory.
func Static() http.FileSystem {
	return http.FS(StaticFS())
}
