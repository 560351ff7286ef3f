package listing

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

// Template names understood by HTMLTemplates.
const (
	DirectoryTemplate = "directory.html"
	ErrorTemplate     = "error.html"
)

// Templates renders a named template with the given bindings.
type Templates interface {
	Render(name string, data any) (string, error)
}

// ErrorPage is the data bound to ErrorTemplate.
type ErrorPage struct {
	Code    int
	Text    string
	Message string
}

//go:embed templates/*.html
var templateFS embed.FS

// HTMLTemplates is the html/template implementation of Templates, backed
// by the templates embedded in the binary.
type HTMLTemplates struct {
	set *template.Template
}

var _ Templates = (*HTMLTemplates)(nil)

func NewHTMLTemplates() (*HTMLTemplates, error) {
	set, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &HTMLTemplates{set: set}, nil
}

func (t *HTMLTemplates) Render(name string, data any) (string, error) {
	var b strings.Builder
	if err := t.set.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return b.String(), nil
}
