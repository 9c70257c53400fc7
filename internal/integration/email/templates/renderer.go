// Package templates holds the e-mail bodies sent by the service.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

// Name identifies a template pair: <name>.html and <name>.txt.
type Name string

// COGSReminder is the weekly reminder to record food cost.
const COGSReminder Name = "cogs_reminder"

// COGSReminderData fills the COGSReminder templates.
type COGSReminderData struct {
	WeekStart       string
	WeekEnd         string
	DashboardURL    string
	EstimatePercent int
}

// Renderer executes the embedded template pairs. Both halves of a pair must exist.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewRenderer parses every embedded template.
func NewRenderer() (*Renderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	text, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	return &Renderer{html: html, text: text}, nil
}

// Render returns the HTML and plain-text bodies of name.
func (r *Renderer) Render(name Name, data any) (string, string, error) {
	var html, text bytes.Buffer
	if err := r.html.ExecuteTemplate(&html, string(name)+".html", data); err != nil {
		return "", "", fmt.Errorf("render %s.html: %w", name, err)
	}
	if err := r.text.ExecuteTemplate(&text, string(name)+".txt", data); err != nil {
		return "", "", fmt.Errorf("render %s.txt: %w", name, err)
	}
	return html.String(), text.String(), nil
}
