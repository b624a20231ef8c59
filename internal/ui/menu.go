package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuAction int

const (
	menuArchive menuAction = iota
	menuDelete
	menuFeedback
)

type menuItem struct {
	title  string
	desc   string
	action menuAction
}

func (i menuItem) FilterValue() string { return i.title }
func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }

// menuChosenMsg is emitted when an entry of the conversation menu is picked.
type menuChosenMsg struct {
	action menuAction
}

// MenuModel is the conversation overflow menu.
type MenuModel struct {
	list list.Model
}

func NewMenuModel() MenuModel {
	items := []list.Item{
		menuItem{title: "🗄  Archive", desc: "Move the chat to Archived", action: menuArchive},
		menuItem{title: "🗑  Delete", desc: "Remove the chat and its messages", action: menuDelete},
		menuItem{title: "⭐ Request Feedback", desc: "Ask how the conversation went", action: menuFeedback},
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(accent).
		BorderForeground(accent).
		Bold(true)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("8")).
		BorderForeground(accent)

	l := list.New(items, delegate, 40, 12)
	l.Title = "Chat options"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	return MenuModel{list: l}
}

func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		selectedItem, ok := m.list.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		action := selectedItem.action
		return m, func() tea.Msg { return menuChosenMsg{action: action} }
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m MenuModel) View() string {
	s := m.list.View() + "\n"
	s += helpStyle.Render("↑↓/jk: navigate • enter: select • esc: close")
	return s
}
