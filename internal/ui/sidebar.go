package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/saravenpi/sup/internal/models"
)

var navIcons = map[models.NavItem]string{
	models.NavChats:    "💬",
	models.NavStatus:   "◷ ",
	models.NavCalls:    "☏ ",
	models.NavArchived: "🗄 ",
	models.NavSettings: "⚙ ",
}

const sidebarWidth = 14

func renderSidebar(active models.NavItem, height int) string {
	var b strings.Builder
	b.WriteString(selectedStyle.Render(" Sup") + "\n\n")
	for i, item := range models.NavItems {
		line := " " + navIcons[item] + " " + item.String()
		if item == active {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(normalStyle.Render(line))
		}
		b.WriteString(helpStyle.Render(" " + string(rune('1'+i))))
		b.WriteString("\n")
	}

	return paneStyle.
		Width(sidebarWidth).
		Height(height).
		Render(b.String())
}

func placeholderText(item models.NavItem) string {
	return titleStyle.Render(item.String()) + "\n\n" +
		normalStyle.Render("Coming soon.") + "\n\n" +
		helpStyle.Render("1: back to Chats")
}

func placeholderPane(item models.NavItem, width, height int) string {
	return lipgloss.NewStyle().Width(width).Height(height).Padding(1, 2).Render(placeholderText(item))
}
