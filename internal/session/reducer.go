package session

import (
	"time"

	"github.com/saravenpi/sup/internal/models"
)

// Action is an event the UI feeds into the store.
type Action interface {
	kind() string
}

type (
	CreateChat struct {
		Name, Phone string
		At          time.Time
	}
	SelectChat        struct{ ID int64 }
	DeleteChat        struct{ ID int64 }
	ArchiveChat       struct{ ID int64 }
	UnarchiveChat     struct{ ID int64 }
	UpdateLastMessage struct {
		ID         int64
		Text, Time string
	}
	UpdateContact struct {
		ID          int64
		Name, About string
	}
	AppendMessage struct {
		ChatID  int64
		Message models.Message
	}
	SendMessage struct {
		ChatID int64
		Text   string
		At     time.Time
	}
	DeliverReply struct {
		Ticket Ticket
		Text   string
		At     time.Time
	}
	CancelReply struct{ Ticket Ticket }
	React       struct {
		ChatID, MessageID int64
		Emoji             string
	}
	SetSearch      struct{ Query string }
	SetFilter      struct{ Filter models.FilterType }
	SetNav         struct{ Nav models.NavItem }
	OpenProfile    struct{}
	CloseProfile   struct{}
	Resize         struct{ Width int }
	SubmitFeedback struct {
		ChatID int64
		Emoji  string
	}
)

func (CreateChat) kind() string        { return "create_chat" }
func (SelectChat) kind() string        { return "select_chat" }
func (DeleteChat) kind() string        { return "delete_chat" }
func (ArchiveChat) kind() string       { return "archive_chat" }
func (UnarchiveChat) kind() string     { return "unarchive_chat" }
func (UpdateLastMessage) kind() string { return "update_last_message" }
func (UpdateContact) kind() string     { return "update_contact" }
func (AppendMessage) kind() string     { return "append_message" }
func (SendMessage) kind() string       { return "send_message" }
func (DeliverReply) kind() string      { return "deliver_reply" }
func (CancelReply) kind() string       { return "cancel_reply" }
func (React) kind() string             { return "react" }
func (SetSearch) kind() string         { return "set_search" }
func (SetFilter) kind() string         { return "set_filter" }
func (SetNav) kind() string            { return "set_nav" }
func (OpenProfile) kind() string       { return "open_profile" }
func (CloseProfile) kind() string      { return "close_profile" }
func (Resize) kind() string            { return "resize" }
func (SubmitFeedback) kind() string    { return "submit_feedback" }

// Effect is work the caller must carry out after a transition.
type Effect interface {
	effect()
}

// ScheduleReply asks the caller to deliver a reply for Ticket later.
type ScheduleReply struct {
	Ticket Ticket
	ChatID int64
}

func (ScheduleReply) effect() {}

// Reduce applies a to prev and returns the resulting state. prev is left
// untouched.
func Reduce(prev State, a Action) (State, []Effect) {
	switch a := a.(type) {
	case CreateChat:
		return prev.Create(a.Name, a.Phone, a.At), nil
	case SelectChat:
		return prev.Select(a.ID), nil
	case DeleteChat:
		return prev.Delete(a.ID), nil
	case ArchiveChat:
		return prev.Archive(a.ID), nil
	case UnarchiveChat:
		return prev.Unarchive(a.ID), nil
	case UpdateLastMessage:
		return prev.UpdateLastMessage(a.ID, a.Text, a.Time), nil
	case UpdateContact:
		return prev.UpdateContact(a.ID, a.Name, a.About), nil
	case AppendMessage:
		return prev.Append(a.ChatID, a.Message), nil
	case SendMessage:
		next, t := prev.Send(a.ChatID, a.Text, a.At)
		if t == 0 {
			return next, nil
		}
		return next, []Effect{ScheduleReply{Ticket: t, ChatID: a.ChatID}}
	case DeliverReply:
		return prev.DeliverReply(a.Ticket, a.Text, a.At), nil
	case CancelReply:
		return prev.CancelReply(a.Ticket), nil
	case React:
		return prev.React(a.ChatID, a.MessageID, a.Emoji), nil
	case SetSearch:
		return prev.SetSearch(a.Query), nil
	case SetFilter:
		return prev.SetFilter(a.Filter), nil
	case SetNav:
		return prev.SetNav(a.Nav), nil
	case OpenProfile:
		return prev.OpenProfile(), nil
	case CloseProfile:
		return prev.CloseProfile(), nil
	case Resize:
		return prev.Resize(a.Width), nil
	case SubmitFeedback:
		return prev.SubmitFeedback(a.ChatID, a.Emoji), nil
	}
	return prev, nil
}
