// Package views bundles the HTML templates rendered by the recipe pages.
package views

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templates embed.FS

const Layout = "layouts/main"

// NewEngine returns a Fiber view engine reading the embedded templates.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
