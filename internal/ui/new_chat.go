package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type newChatSubmittedMsg struct {
	name  string
	phone string
}

// NewChatModel collects the contact details of a new chat.
type NewChatModel struct {
	nameInput  textinput.Model
	phoneInput textinput.Model
	focusIndex int
}

func NewNewChatModel() NewChatModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "Contact name"
	nameInput.Focus()
	nameInput.CharLimit = 100
	nameInput.Width = 40

	phoneInput := textinput.New()
	phoneInput.Placeholder = "Phone number (e.g., +1234567890)"
	phoneInput.CharLimit = 20
	phoneInput.Width = 40

	return NewChatModel{
		nameInput:  nameInput,
		phoneInput: phoneInput,
	}
}

func (m NewChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m NewChatModel) Update(msg tea.Msg) (NewChatModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focusIndex = (m.focusIndex + 1) % 2
			if m.focusIndex == 0 {
				m.nameInput.Focus()
				m.phoneInput.Blur()
			} else {
				m.nameInput.Blur()
				m.phoneInput.Focus()
			}
			return m, nil

		case "enter":
			submitted := newChatSubmittedMsg{name: m.nameInput.Value(), phone: m.phoneInput.Value()}
			return m, func() tea.Msg { return submitted }
		}
	}

	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.phoneInput, cmd = m.phoneInput.Update(msg)
	}
	return m, cmd
}

func (m NewChatModel) View() string {
	nameLabel := "Name:"
	phoneLabel := "Phone:"
	if m.focusIndex == 0 {
		nameLabel = "> " + nameLabel
		phoneLabel = "  " + phoneLabel
	} else {
		nameLabel = "  " + nameLabel
		phoneLabel = "> " + phoneLabel
	}

	content := titleStyle.Render("New Chat") + "\n\n"
	content += inputStyle.Render(nameLabel) + "\n" + m.nameInput.View() + "\n\n"
	content += inputStyle.Render(phoneLabel) + "\n" + m.phoneInput.View() + "\n\n"
	content += helpStyle.Render("tab: switch field • enter: create • esc: cancel")
	return content
}
