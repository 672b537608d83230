package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"time"

	"github.com/heartmarshall/yatube-backend/internal/service/post"
)

//go:embed templates
var templateFS embed.FS

// Renderer writes a named page with its view data.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

// HTMLRenderer renders the embedded html/template pages. Every page is parsed
// together with layout.html and the includes, and executes the "layout" template.
type HTMLRenderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"groupURL":   groupURL,
	"profileURL": profileURL,
	"postURL":    postURL,
	"editURL":    editURL,
	"createURL":  createURL,
	"indexURL":   indexURL,
	"pageURL":    pageURL,
	"date": func(t time.Time) string {
		return t.Format("2 January 2006")
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"isText":   func(f post.Field) bool { return f.Kind == post.KindText },
	"isChoice": func(f post.Field) bool { return f.Kind == post.KindChoice },
}

// NewHTMLRenderer parses every page under templates/.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	pages, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}

	r := &HTMLRenderer{pages: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		name := path.Base(p)
		if name == "layout.html" {
			continue
		}
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/includes/*.html", p)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
	}

	return r, nil
}

// Render executes the page into a buffer first, so a template error never
// leaves a half-written response.
func (r *HTMLRenderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
