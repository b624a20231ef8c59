package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// confirmResultMsg reports the answer to a ConfirmModel prompt.
type confirmResultMsg struct {
	chatID    int64
	confirmed bool
}

// ConfirmModel asks before a chat is deleted.
type ConfirmModel struct {
	chatID int64
	name   string
}

func NewConfirmModel(chatID int64, name string) ConfirmModel {
	return ConfirmModel{chatID: chatID, name: name}
}

func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		return m, m.answer(true)
	case "n", "N", "esc":
		return m, m.answer(false)
	}
	return m, nil
}

func (m ConfirmModel) answer(confirmed bool) tea.Cmd {
	id := m.chatID
	return func() tea.Msg { return confirmResultMsg{chatID: id, confirmed: confirmed} }
}

func (m ConfirmModel) View() string {
	s := titleStyle.Render("Delete Chat") + "\n\n"
	s += normalStyle.Render(fmt.Sprintf("Are you sure you want to delete chat with %s?", m.name)) + "\n\n"
	s += errorStyle.Render("This action cannot be undone.") + "\n\n"
	s += helpStyle.Render("y: confirm delete • n/esc: cancel")
	return s
}
