package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/saravenpi/sup/internal/models"
)

type chatItem struct {
	chat models.Chat
}

func (i chatItem) Title() string {
	if i.chat.Unread > 0 {
		return fmt.Sprintf("%s %s", i.chat.Name, badgeStyle.Render(fmt.Sprint(i.chat.Unread)))
	}
	return i.chat.Name
}

func (i chatItem) Description() string {
	preview := truncate.StringWithTail(i.chat.LastMessage, 40, "...")
	return fmt.Sprintf("%s • %s", i.chat.Time, preview)
}

func (i chatItem) FilterValue() string {
	return i.chat.Name
}

func newChatList() list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(accent).
		BorderForeground(accent).
		Bold(true)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("8")).
		BorderForeground(accent)

	l := list.New([]list.Item{}, delegate, 36, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return l
}

func chatItems(chats []models.Chat) []list.Item {
	items := make([]list.Item, len(chats))
	for i, chat := range chats {
		items[i] = chatItem{chat: chat}
	}
	return items
}

func renderFilterTabs(active models.FilterType) string {
	tabs := make([]string, 0, len(models.Filters))
	for _, f := range models.Filters {
		if f == active {
			tabs = append(tabs, activeTabStyle.Render(f.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(f.String()))
		}
	}
	return strings.Join(tabs, " ")
}

func emptyListText(filter models.FilterType, search string) string {
	switch {
	case filter == models.FilterGroups:
		return "No groups yet."
	case search != "":
		return fmt.Sprintf("No chats match %q.", search)
	case filter == models.FilterUnread:
		return "No unread chats."
	default:
		return "No chats. Press 'n' to start one."
	}
}
