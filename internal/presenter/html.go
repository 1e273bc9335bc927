package presenter

import (
	"bytes"
	"embed"
	"fmt"
	"guildpreview/internal/models"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.html
var templateFS embed.FS

type HTMLPresenterInterface interface {
	RenderTemplate(result *models.TemplateResult) ([]byte, error)
	RenderIndex() ([]byte, error)
}

type HTMLPresenter struct {
	page     *template.Template
	index    *template.Template
	markdown goldmark.Markdown
}

type roleView struct {
	Name  string
	Style template.CSS
}

type pageView struct {
	Title       string
	Name        string
	Description template.HTML
	Roles       []roleView
	Channels    []*models.ChannelNode
}

func NewHTMLPresenter() (HTMLPresenterInterface, error) {
	page, err := template.ParseFS(templateFS, "templates/layout.html", "templates/template.html")
	if err != nil {
		return nil, fmt.Errorf("parse template page: %w", err)
	}
	index, err := template.ParseFS(templateFS, "templates/layout.html", "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse index page: %w", err)
	}
	return &HTMLPresenter{
		page:  page,
		index: index,
		// Without html.WithUnsafe goldmark omits raw HTML from descriptions.
		markdown: goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough)),
	}, nil
}

// RoleColor formats a packed RGB integer as a CSS hex color. Values outside
// 0..0xFFFFFF are not clamped.
func RoleColor(color int64) string {
	return fmt.Sprintf("#%06x", color)
}

func (p *HTMLPresenter) RenderTemplate(result *models.TemplateResult) ([]byte, error) {
	view := pageView{
		Title:    result.Name + " · template preview",
		Name:     result.Name,
		Roles:    make([]roleView, 0, len(result.Roles)),
		Channels: result.Channels,
	}
	for _, role := range result.Roles {
		view.Roles = append(view.Roles, roleView{
			Name:  role.Name,
			Style: template.CSS("color: " + RoleColor(role.Color)),
		})
	}
	if result.Description != "" {
		var buf bytes.Buffer
		if err := p.markdown.Convert([]byte(result.Description), &buf); err != nil {
			return nil, fmt.Errorf("render description: %w", err)
		}
		view.Description = template.HTML(buf.String())
	}

	var out bytes.Buffer
	if err := p.page.ExecuteTemplate(&out, "layout", view); err != nil {
		return nil, fmt.Errorf("render template page: %w", err)
	}
	return out.Bytes(), nil
}

func (p *HTMLPresenter) RenderIndex() ([]byte, error) {
	var out bytes.Buffer
	if err := p.index.ExecuteTemplate(&out, "layout", pageView{Title: "Server template preview"}); err != nil {
		return nil, fmt.Errorf("render index page: %w", err)
	}
	return out.Bytes(), nil
}
