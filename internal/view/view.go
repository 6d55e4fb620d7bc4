package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"todolist/internal/core"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Page names accepted by Render.
const (
	Register = "register"
	Login    = "login"
	Todos    = "todo"
	NewTodo  = "newTodo"
	Show     = "show"
	Edit     = "edit"
)

var pageNames = []string{Register, Login, Todos, NewTodo, Show, Edit}

// Page is the data every template receives.
type Page struct {
	Title    string
	Messages []string
	LoggedIn bool
	Todos    []core.TodoRecord
	Todo     core.TodoRecord
}

type Renderer struct {
	pages    map[string]*template.Template
	markdown goldmark.Markdown
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{
		pages:    make(map[string]*template.Template, len(pageNames)),
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}

	funcs := template.FuncMap{
		"date":     formatDate,
		"markdown": r.renderMarkdown,
		"excerpt":  excerpt,
	}

	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, layoutFile, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %q: %w", name, err)
		}
		r.pages[name] = tmpl
	}

	return r, nil
}

// Render executes the named page inside the layout. Nothing is written to w when execution fails.
func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("execute template %q: %w", name, err)
	}

	_, err := buf.WriteTo(w)
	return err
}

// renderMarkdown converts a todo description to HTML. Raw HTML in the source is dropped by goldmark.
func (r *Renderer) renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// excerpt shortens s to n runes for list views.
func excerpt(s string, n int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
