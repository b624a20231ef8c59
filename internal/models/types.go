package models

type Chat struct {
	ID          int64
	Name        string
	Phone       string
	Avatar      string
	LastMessage string
	Time        string
	Unread      int
	Online      bool
	About       string
}

type Message struct {
	ID        int64
	Text      string
	Sent      bool
	Time      string
	Reactions []Reaction
}

type Reaction struct {
	Emoji string
	Count int
}

// FilterType narrows the chat list beyond the search text.
type FilterType int

const (
	FilterAll FilterType = iota
	FilterUnread
	FilterGroups
)

var Filters = []FilterType{FilterAll, FilterUnread, FilterGroups}

func (f FilterType) String() string {
	switch f {
	case FilterUnread:
		return "Unread"
	case FilterGroups:
		return "Groups"
	default:
		return "All"
	}
}

// NavItem is a section of the navigation rail.
type NavItem int

const (
	NavChats NavItem = iota
	NavStatus
	NavCalls
	NavArchived
	NavSettings
)

var NavItems = []NavItem{NavChats, NavStatus, NavCalls, NavArchived, NavSettings}

func (n NavItem) String() string {
	switch n {
	case NavStatus:
		return "Status"
	case NavCalls:
		return "Calls"
	case NavArchived:
		return "Archived"
	case NavSettings:
		return "Settings"
	default:
		return "Chats"
	}
}

// ReactionEmoji is the fixed picker shown for reactions and feedback.
var ReactionEmoji = []string{"😡", "😢", "😐", "😊", "😍"}
