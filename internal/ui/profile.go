package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/saravenpi/sup/internal/models"
)

func getInitials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

func presence(chat models.Chat) string {
	if chat.Online {
		return "online"
	}
	return "last seen recently"
}

func renderProfile(chat models.Chat, feedback string, width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	avatar := lipgloss.NewStyle().
		Width(7).
		Align(lipgloss.Center).
		Background(border).
		Foreground(lipgloss.Color("#8696a0")).
		Padding(1, 0).
		Render(getInitials(chat.Name))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Contact info") + "\n")
	b.WriteString(center.Render(avatar) + "\n\n")
	b.WriteString(center.Render(normalStyle.Bold(true).Render(chat.Name)) + "\n")
	b.WriteString(center.Render(messageHeaderStyle.Render(chat.Phone)) + "\n")
	b.WriteString(center.Render(statusStyle.Render(presence(chat))) + "\n\n")

	b.WriteString(inputStyle.Render("About") + "\n")
	about := chat.About
	if about == "" {
		about = "—"
	}
	b.WriteString(normalStyle.Render(about) + "\n\n")

	if feedback != "" {
		b.WriteString(inputStyle.Render("Feedback") + "\n")
		b.WriteString(normalStyle.Render(feedback) + "\n\n")
	}

	b.WriteString(helpStyle.Render("e: edit • a: archive • d: delete • esc: close"))
	return b.String()
}

type profileSavedMsg struct {
	chatID int64
	name   string
	about  string
}

// ProfileFormModel edits the name and about text of a contact.
type ProfileFormModel struct {
	chatID     int64
	nameInput  textinput.Model
	aboutInput textinput.Model
	focusIndex int
}

func NewProfileFormModel(chat models.Chat) ProfileFormModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "Contact name"
	nameInput.Focus()
	nameInput.CharLimit = 100
	nameInput.Width = 40
	nameInput.SetValue(chat.Name)

	aboutInput := textinput.New()
	aboutInput.Placeholder = "About (optional)"
	aboutInput.CharLimit = 140
	aboutInput.Width = 40
	aboutInput.SetValue(chat.About)

	return ProfileFormModel{
		chatID:     chat.ID,
		nameInput:  nameInput,
		aboutInput: aboutInput,
	}
}

func (m ProfileFormModel) Update(msg tea.Msg) (ProfileFormModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focusIndex = (m.focusIndex + 1) % 2
			if m.focusIndex == 0 {
				m.nameInput.Focus()
				m.aboutInput.Blur()
			} else {
				m.nameInput.Blur()
				m.aboutInput.Focus()
			}
			return m, nil

		case "enter", "ctrl+s":
			saved := profileSavedMsg{chatID: m.chatID, name: m.nameInput.Value(), about: m.aboutInput.Value()}
			return m, func() tea.Msg { return saved }
		}
	}

	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.aboutInput, cmd = m.aboutInput.Update(msg)
	}
	return m, cmd
}

func (m ProfileFormModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Edit Contact") + "\n\n")

	focusedStyle := lipgloss.NewStyle().Foreground(accent)
	blurredStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	renderInput := func(input textinput.Model, label string, focused bool) {
		style := blurredStyle
		if focused {
			style = focusedStyle
		}
		b.WriteString(style.Render(label) + "\n")
		b.WriteString(input.View() + "\n\n")
	}

	renderInput(m.nameInput, "Name (required):", m.focusIndex == 0)
	renderInput(m.aboutInput, "About:", m.focusIndex == 1)

	if strings.TrimSpace(m.nameInput.Value()) == "" {
		b.WriteString(errorStyle.Render("Error: name is required") + "\n\n")
	}

	b.WriteString(helpStyle.Render("tab: switch field • enter/ctrl+s: save • esc: cancel"))
	return b.String()
}
