package presenter

import (
	"fmt"
	"guildpreview/internal/models"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/list"
	"github.com/charmbracelet/lipgloss/tree"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	headingStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	categoryStyle = lipgloss.NewStyle().Bold(true)
)

// TerminalPresenter prints a template for a terminal: roles tinted with
// their own color, channels drawn as a tree with every level expanded.
type TerminalPresenter struct{}

func NewTerminalPresenter() *TerminalPresenter {
	return &TerminalPresenter{}
}

func (p *TerminalPresenter) Render(w io.Writer, result *models.TemplateResult) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render(result.Name))
	b.WriteString("\n")
	if result.Description != "" {
		b.WriteString(mutedStyle.Render(result.Description))
		b.WriteString("\n")
	}

	b.WriteString(headingStyle.Render("Roles"))
	b.WriteString("\n")
	if len(result.Roles) > 0 {
		roles := result.Roles
		names := make([]any, 0, len(roles))
		for _, role := range roles {
			names = append(names, role.Name)
		}
		l := list.New(names...).ItemStyleFunc(func(_ list.Items, i int) lipgloss.Style {
			return lipgloss.NewStyle().Foreground(lipgloss.Color(RoleColor(roles[i].Color)))
		})
		b.WriteString(l.String())
		b.WriteString("\n")
	}

	b.WriteString(headingStyle.Render("Channels"))
	b.WriteString("\n")
	if len(result.Channels) > 0 {
		b.WriteString(channelTree(result.Channels).String())
		b.WriteString("\n")
	}

	_, err := fmt.Fprint(w, b.String())
	return err
}

func channelTree(nodes []*models.ChannelNode) *tree.Tree {
	t := tree.New()
	for _, node := range nodes {
		if len(node.Children) == 0 {
			t.Child(node.Name)
			continue
		}
		t.Child(channelTree(node.Children).Root(categoryStyle.Render(node.Name)))
	}
	return t
}
