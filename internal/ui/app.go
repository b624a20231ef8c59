package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/saravenpi/sup/internal/models"
	"github.com/saravenpi/sup/internal/responder"
	"github.com/saravenpi/sup/internal/session"
)

type focusArea int

const (
	focusList focusArea = iota
	focusSearch
	focusComposer
	focusProfile
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayNewChat
	overlayMenu
	overlayConfirm
	overlayPicker
	overlayProfileForm
)

// replyDueMsg fires when the responder's delay for a ticket has elapsed.
type replyDueMsg struct {
	ticket session.Ticket
	at     time.Time
}

const (
	listWidth    = 38
	profileWidth = 34
	helpHeight   = 1
)

// AppModel is the root model: navigation rail, chat list, conversation and
// profile panel, plus whichever dialog is open on top of them.
type AppModel struct {
	store     *session.Store
	responder *responder.Responder
	logger    *zap.Logger
	now       func() time.Time

	list     list.Model
	search   textinput.Model
	composer textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	focus   focusArea
	overlay overlayKind
	newChat NewChatModel
	menu    MenuModel
	confirm ConfirmModel
	picker  PickerModel
	form    ProfileFormModel

	windowWidth  int
	windowHeight int
	shownChat    int64
	shownCount   int
}

// NewAppModel builds the root model around store, drawing replies from r.
func NewAppModel(store *session.Store, r *responder.Responder, logger *zap.Logger) AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = statusStyle

	search := textinput.New()
	search.Placeholder = "Search or start a new chat"
	search.Prompt = "/ "
	search.CharLimit = 100

	composer := textinput.New()
	composer.Placeholder = "Type a message"
	composer.Prompt = "> "
	composer.CharLimit = 1000

	vp := viewport.New(80, 20)

	m := AppModel{
		store:        store,
		responder:    r,
		logger:       logger,
		now:          time.Now,
		list:         newChatList(),
		search:       search,
		composer:     composer,
		viewport:     vp,
		spinner:      s,
		windowWidth:  120,
		windowHeight: 30,
	}
	m.sync()
	return m
}

func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m AppModel) typing() bool {
	state := m.store.State()
	return state.CurrentID() != 0 && state.PendingReplies(state.CurrentID()) > 0
}

// dispatch applies a to the store, refreshes the derived views and turns the
// resulting effects into commands.
func (m *AppModel) dispatch(a session.Action) tea.Cmd {
	effects := m.store.Dispatch(a)

	var cmds []tea.Cmd
	for _, e := range effects {
		if r, ok := e.(session.ScheduleReply); ok {
			cmds = append(cmds, m.scheduleReply(r.Ticket), m.spinner.Tick)
		}
	}

	m.sync()
	return tea.Batch(cmds...)
}

func (m *AppModel) scheduleReply(t session.Ticket) tea.Cmd {
	return tea.Tick(m.responder.Delay(), func(at time.Time) tea.Msg {
		return replyDueMsg{ticket: t, at: at}
	})
}

func (m *AppModel) sync() {
	m.layout()
	state := m.store.State()

	var chats []models.Chat
	if state.Nav() == models.NavArchived {
		chats = state.Archived()
	} else {
		chats = session.Visible(state)
	}
	m.list.SetItems(chatItems(chats))
	if m.list.Index() >= len(chats) && len(chats) > 0 {
		m.list.Select(len(chats) - 1)
	}
	if id := state.CurrentID(); id != 0 {
		for i, c := range chats {
			if c.ID == id {
				m.list.Select(i)
				break
			}
		}
	}

	current, ok := state.Current()
	if !ok {
		m.shownChat, m.shownCount = 0, 0
		m.viewport.SetContent("")
		if m.focus == focusComposer || m.focus == focusProfile {
			m.composer.Blur()
			m.focus = focusList
		}
		return
	}

	if m.focus == focusProfile && !state.ProfileOpen() {
		m.focus = focusComposer
		m.composer.Focus()
	}

	msgs := state.Messages(current.ID)
	m.viewport.SetContent(renderMessages(current, msgs, m.viewport.Width))
	if current.ID != m.shownChat || len(msgs) != m.shownCount {
		m.viewport.GotoBottom()
	}
	m.shownChat, m.shownCount = current.ID, len(msgs)
}

func (m *AppModel) layout() {
	bodyHeight := max(m.windowHeight-helpHeight, 8)

	m.list.SetSize(listWidth-2, max(bodyHeight-5, 1))
	m.search.Width = listWidth - 6

	convWidth := m.conversationWidth()
	m.viewport.Width = max(convWidth-2, 10)
	m.viewport.Height = max(bodyHeight-6, 1)
	m.composer.Width = max(convWidth-14, 10)
}

func (m AppModel) conversationWidth() int {
	w := m.windowWidth - (sidebarWidth + 1) - (listWidth + 1)
	if m.store.State().ProfileOpen() {
		w -= profileWidth
	}
	return max(w, 20)
}

func (m *AppModel) focusComposer() tea.Cmd {
	m.focus = focusComposer
	m.search.Blur()
	return m.composer.Focus()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		cmd := m.dispatch(session.Resize{Width: msg.Width})
		return m, cmd

	case replyDueMsg:
		cmd := m.dispatch(session.DeliverReply{
			Ticket: msg.ticket,
			Text:   m.responder.Reply(),
			At:     msg.at,
		})
		return m, cmd

	case spinner.TickMsg:
		if !m.typing() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case newChatSubmittedMsg:
		m.overlay = overlayNone
		before := m.store.State().CurrentID()
		cmd := m.dispatch(session.CreateChat{Name: msg.name, Phone: msg.phone, At: m.now()})
		if id := m.store.State().CurrentID(); id != 0 && id != before {
			m.logger.Info("chat created", zap.Int64("chat", id))
			cmd = tea.Batch(cmd, m.focusComposer())
		}
		return m, cmd

	case menuChosenMsg:
		m.overlay = overlayNone
		chat, ok := m.store.State().Current()
		if !ok {
			return m, nil
		}
		switch msg.action {
		case menuArchive:
			cmd := m.dispatch(session.ArchiveChat{ID: chat.ID})
			return m, cmd
		case menuDelete:
			m.confirm = NewConfirmModel(chat.ID, chat.Name)
			m.overlay = overlayConfirm
		case menuFeedback:
			m.picker = NewFeedbackPicker(chat.ID)
			m.overlay = overlayPicker
		}
		return m, nil

	case confirmResultMsg:
		m.overlay = overlayNone
		if !msg.confirmed {
			return m, nil
		}
		m.logger.Info("chat deleted", zap.Int64("chat", msg.chatID))
		cmd := m.dispatch(session.DeleteChat{ID: msg.chatID})
		return m, cmd

	case emojiPickedMsg:
		m.overlay = overlayNone
		if msg.purpose == pickFeedback {
			m.logger.Info("feedback submitted", zap.Int64("chat", msg.chatID), zap.String("rating", msg.emoji))
			cmd := m.dispatch(session.SubmitFeedback{ChatID: msg.chatID, Emoji: msg.emoji})
			return m, cmd
		}
		cmd := m.dispatch(session.React{ChatID: msg.chatID, MessageID: msg.messageID, Emoji: msg.emoji})
		return m, cmd

	case profileSavedMsg:
		m.overlay = overlayNone
		cmd := m.dispatch(session.UpdateContact{ID: msg.chatID, Name: msg.name, About: msg.about})
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.overlay != overlayNone {
			return m.updateOverlay(msg)
		}

		switch m.focus {
		case focusSearch:
			return m.updateSearch(msg)
		case focusComposer:
			return m.updateComposer(msg)
		case focusProfile:
			return m.updateProfile(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.overlay != overlayNone {
		return m.updateOverlay(msg)
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
	case focusComposer:
		m.composer, cmd = m.composer.Update(msg)
	}
	return m, cmd
}

func (m AppModel) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" && m.overlay != overlayConfirm {
		m.overlay = overlayNone
		return m, nil
	}

	var cmd tea.Cmd
	switch m.overlay {
	case overlayNewChat:
		m.newChat, cmd = m.newChat.Update(msg)
	case overlayMenu:
		m.menu, cmd = m.menu.Update(msg)
	case overlayConfirm:
		m.confirm, cmd = m.confirm.Update(msg)
	case overlayPicker:
		m.picker, cmd = m.picker.Update(msg)
	case overlayProfileForm:
		m.form, cmd = m.form.Update(msg)
	}
	return m, cmd
}

func (m AppModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.store.State()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1", "2", "3", "4", "5":
		nav := models.NavItems[msg.String()[0]-'1']
		cmd := m.dispatch(session.SetNav{Nav: nav})
		return m, cmd
	}

	switch state.Nav() {
	case models.NavChats:
		return m.updateChatList(msg)
	case models.NavArchived:
		return m.updateArchivedList(msg)
	}
	return m, nil
}

func (m AppModel) updateChatList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.store.State()

	switch msg.String() {
	case "/":
		m.focus = focusSearch
		cmd := m.search.Focus()
		return m, cmd

	case "tab":
		next := models.Filters[(int(state.Filter())+1)%len(models.Filters)]
		cmd := m.dispatch(session.SetFilter{Filter: next})
		return m, cmd

	case "n":
		m.newChat = NewNewChatModel()
		m.overlay = overlayNewChat
		return m, m.newChat.Init()

	case "esc":
		if state.Search() != "" {
			m.search.Reset()
			cmd := m.dispatch(session.SetSearch{Query: ""})
			return m, cmd
		}
		return m, nil

	case "p":
		if _, ok := state.Current(); ok {
			cmd := m.dispatch(session.OpenProfile{})
			if m.store.State().ProfileOpen() {
				m.composer.Blur()
				m.focus = focusProfile
			}
			return m, cmd
		}
		return m, nil

	case "enter":
		if item, ok := m.list.SelectedItem().(chatItem); ok {
			cmd := m.dispatch(session.SelectChat{ID: item.chat.ID})
			cmd = tea.Batch(cmd, m.focusComposer())
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m AppModel) updateArchivedList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(chatItem)

	switch msg.String() {
	case "u":
		if ok {
			cmd := m.dispatch(session.UnarchiveChat{ID: item.chat.ID})
			return m, cmd
		}
		return m, nil
	case "d":
		if ok {
			m.confirm = NewConfirmModel(item.chat.ID, item.chat.Name)
			m.overlay = overlayConfirm
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m AppModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.search.Blur()
		m.focus = focusList
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	cmd = tea.Batch(cmd, m.dispatch(session.SetSearch{Query: m.search.Value()}))
	return m, cmd
}

func (m AppModel) updateComposer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.store.State()
	current := state.CurrentID()

	switch msg.String() {
	case "esc":
		m.composer.Blur()
		m.focus = focusList
		return m, nil

	case "enter":
		text := strings.TrimSpace(m.composer.Value())
		if text == "" {
			return m, nil
		}
		m.composer.Reset()
		cmd := m.dispatch(session.SendMessage{ChatID: current, Text: text, At: m.now()})
		return m, cmd

	case "ctrl+p":
		cmd := m.dispatch(session.OpenProfile{})
		if m.store.State().ProfileOpen() {
			m.composer.Blur()
			m.focus = focusProfile
		}
		return m, cmd

	case "ctrl+o":
		m.menu = NewMenuModel()
		m.overlay = overlayMenu
		return m, nil

	case "ctrl+e":
		msgs := state.Messages(current)
		if len(msgs) == 0 {
			return m, nil
		}
		m.picker = NewReactionPicker(current, msgs[len(msgs)-1].ID)
		m.overlay = overlayPicker
		return m, nil

	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

func (m AppModel) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	chat, ok := m.store.State().Current()
	if !ok {
		m.focus = focusList
		return m, nil
	}

	switch msg.String() {
	case "esc", "ctrl+p":
		cmd := m.dispatch(session.CloseProfile{})
		cmd = tea.Batch(cmd, m.focusComposer())
		return m, cmd
	case "e":
		m.form = NewProfileFormModel(chat)
		m.overlay = overlayProfileForm
		return m, textinput.Blink
	case "a":
		cmd := m.dispatch(session.ArchiveChat{ID: chat.ID})
		return m, cmd
	case "d":
		m.confirm = NewConfirmModel(chat.ID, chat.Name)
		m.overlay = overlayConfirm
		return m, nil
	}
	return m, nil
}

func (m AppModel) View() string {
	if m.overlay != overlayNone {
		return lipgloss.Place(m.windowWidth, m.windowHeight, lipgloss.Center, lipgloss.Center,
			overlayStyle.Render(m.overlayView()))
	}

	state := m.store.State()
	bodyHeight := max(m.windowHeight-helpHeight, 8)

	panes := []string{renderSidebar(state.Nav(), bodyHeight)}
	switch state.Nav() {
	case models.NavChats, models.NavArchived:
		panes = append(panes, m.listView(state, bodyHeight), m.conversationView(state, bodyHeight))
		if chat, ok := state.Current(); ok && state.ProfileOpen() {
			feedback, _ := state.Feedback(chat.ID)
			panes = append(panes, lipgloss.NewStyle().
				Width(profileWidth).
				Height(bodyHeight).
				Padding(0, 1).
				Render(renderProfile(chat, feedback, profileWidth-2)))
		}
	default:
		panes = append(panes, placeholderPane(state.Nav(), m.windowWidth-sidebarWidth-1, bodyHeight))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, panes...)
	return body + "\n" + helpStyle.Render(m.helpText(state))
}

func (m AppModel) overlayView() string {
	switch m.overlay {
	case overlayNewChat:
		return m.newChat.View()
	case overlayMenu:
		return m.menu.View()
	case overlayConfirm:
		return m.confirm.View()
	case overlayPicker:
		return m.picker.View()
	case overlayProfileForm:
		return m.form.View()
	}
	return ""
}

func (m AppModel) listView(state session.State, height int) string {
	var b strings.Builder

	if state.Nav() == models.NavArchived {
		b.WriteString(titleStyle.Render("Archived") + "\n")
		if len(m.list.Items()) == 0 {
			b.WriteString(normalStyle.Render("  No archived chats.") + "\n")
		} else {
			b.WriteString(m.list.View())
		}
	} else {
		b.WriteString(titleStyle.MarginBottom(0).Render("Chats") + "\n")
		b.WriteString(m.search.View() + "\n")
		b.WriteString(renderFilterTabs(state.Filter()) + "\n\n")
		if len(m.list.Items()) == 0 {
			b.WriteString(normalStyle.Render("  "+emptyListText(state.Filter(), state.Search())) + "\n")
		} else {
			b.WriteString(m.list.View())
		}
	}

	return paneStyle.Width(listWidth).Height(height).Render(b.String())
}

func (m AppModel) conversationView(state session.State, height int) string {
	width := m.conversationWidth()
	chat, ok := state.Current()
	if !ok {
		return renderWelcome(width, height)
	}

	typing := ""
	if state.PendingReplies(chat.ID) > 0 {
		typing = m.spinner.View() + " typing..."
	}

	var b strings.Builder
	b.WriteString(renderConversationHeader(chat, typing) + "\n\n")
	if len(state.Messages(chat.ID)) == 0 {
		b.WriteString(lipgloss.NewStyle().Height(m.viewport.Height).Render(helpStyle.Render("No messages yet. Say hi!")))
	} else {
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n")

	send := helpStyle.Render("[send]")
	if strings.TrimSpace(m.composer.Value()) != "" {
		send = selectedStyle.Render("[send ⏎]")
	}
	b.WriteString(m.composer.View() + " " + send)

	return paneStyle.Width(width).Height(height).Padding(0, 1).Render(b.String())
}

func (m AppModel) helpText(state session.State) string {
	switch m.focus {
	case focusSearch:
		return "type to search • enter/esc: done"
	case focusComposer:
		return "enter: send • ctrl+p: profile • ctrl+o: menu • ctrl+e: react • ↑↓: scroll • esc: chat list"
	case focusProfile:
		return "e: edit • a: archive • d: delete • esc: close profile"
	}

	switch state.Nav() {
	case models.NavChats:
		return "↑↓/jk: navigate • enter: open • /: search • tab: filter • n: new chat • p: profile • 1-5: sections • q: quit"
	case models.NavArchived:
		return "↑↓/jk: navigate • u: unarchive • d: delete • 1-5: sections • q: quit"
	}
	return "1-5: sections • q: quit"
}
