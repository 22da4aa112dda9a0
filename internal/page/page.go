// Package page composes the full schedule document: head, selector
// form, and the schedule fragment below it.
package page

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/notmyst33d/schedapi-ssr/internal/layout"
	"github.com/notmyst33d/schedapi-ssr/internal/model"
)

//go:embed templates/*.html
var templates embed.FS

// Data is everything the index template needs for one render. When
// Schedule is nil the terminal Message is shown in its place.
type Data struct {
	ProductName string
	Groups      []model.Group
	SelectedID  string
	WeekValue   string
	Mobile      bool
	Message     string
	Schedule    *layout.Schedule
}

// Renderer renders the page from the embedded templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates once at startup.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces the UTF-8 document; the transport layer transcodes it
// to the legacy charset on the way out.
func (r *Renderer) Render(data Data) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
