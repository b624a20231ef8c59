package session

import (
	"strings"

	"github.com/saravenpi/sup/internal/models"
)

// Visible returns the registry chats matching the search text and filter,
// in registry order. Names match case-insensitively, phones literally.
func Visible(s State) []models.Chat {
	if s.filter == models.FilterGroups {
		return []models.Chat{}
	}

	query := strings.ToLower(s.search)
	out := make([]models.Chat, 0, len(s.chats))
	for _, c := range s.chats {
		if !strings.Contains(strings.ToLower(c.Name), query) && !strings.Contains(c.Phone, s.search) {
			continue
		}
		if s.filter == models.FilterUnread && c.Unread <= 0 {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SetSearch sets the chat list search text.
func (s State) SetSearch(query string) State {
	s.search = query
	return s
}

// SetFilter switches the chat list tab. Unknown filters are ignored.
func (s State) SetFilter(f models.FilterType) State {
	switch f {
	case models.FilterAll, models.FilterUnread, models.FilterGroups:
		s.filter = f
	}
	return s
}

// SetNav switches the navigation rail section.
func (s State) SetNav(item models.NavItem) State {
	if item < models.NavChats || item > models.NavSettings {
		return s
	}
	s.nav = item
	return s
}

// OpenProfile shows the profile panel of the selected chat.
func (s State) OpenProfile() State {
	if _, ok := s.Current(); !ok {
		return s
	}
	s.profile = true
	return s
}

// CloseProfile hides the profile panel.
func (s State) CloseProfile() State {
	s.profile = false
	return s
}

// Resize closes the profile panel once the viewport is too narrow to show
// it next to the conversation.
func (s State) Resize(width int) State {
	if width <= s.breakpoint {
		s.profile = false
	}
	return s
}

// SubmitFeedback records the rating chosen in the feedback prompt.
func (s State) SubmitFeedback(id int64, emoji string) State {
	if emoji == "" || s.indexOf(id) < 0 {
		return s
	}
	n := s.clone()
	n.feedback[id] = emoji
	return n
}
