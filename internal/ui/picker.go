package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saravenpi/sup/internal/models"
)

type pickerPurpose int

const (
	pickReaction pickerPurpose = iota
	pickFeedback
)

type emojiPickedMsg struct {
	purpose   pickerPurpose
	chatID    int64
	messageID int64
	emoji     string
}

// PickerModel chooses one of the fixed emoji, either to react to a message
// or to rate a conversation.
type PickerModel struct {
	purpose   pickerPurpose
	chatID    int64
	messageID int64
	cursor    int
}

func NewReactionPicker(chatID, messageID int64) PickerModel {
	return PickerModel{purpose: pickReaction, chatID: chatID, messageID: messageID, cursor: 3}
}

func NewFeedbackPicker(chatID int64) PickerModel {
	return PickerModel{purpose: pickFeedback, chatID: chatID, cursor: 3}
}

func (m PickerModel) Update(msg tea.Msg) (PickerModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < len(models.ReactionEmoji)-1 {
			m.cursor++
		}
	case "1", "2", "3", "4", "5":
		m.cursor = int(keyMsg.String()[0] - '1')
	case "enter":
		picked := emojiPickedMsg{
			purpose:   m.purpose,
			chatID:    m.chatID,
			messageID: m.messageID,
			emoji:     models.ReactionEmoji[m.cursor],
		}
		return m, func() tea.Msg { return picked }
	}
	return m, nil
}

func (m PickerModel) View() string {
	var b strings.Builder

	if m.purpose == pickFeedback {
		b.WriteString(titleStyle.Render("Request Feedback") + "\n\n")
		b.WriteString(normalStyle.Render("How would you rate this conversation?") + "\n\n")
	} else {
		b.WriteString(titleStyle.Render("React") + "\n\n")
	}

	for i, emoji := range models.ReactionEmoji {
		if i == m.cursor {
			b.WriteString(activeTabStyle.Render(emoji))
		} else {
			b.WriteString(tabStyle.Render(emoji))
		}
	}
	b.WriteString("\n\n")

	action := "react"
	if m.purpose == pickFeedback {
		action = "submit feedback"
	}
	b.WriteString(helpStyle.Render("←→/hl or 1-5: choose • enter: " + action + " • esc: cancel"))
	return b.String()
}
