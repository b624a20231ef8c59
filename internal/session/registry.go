package session

import (
	"slices"
	"strings"
	"time"

	"github.com/saravenpi/sup/internal/models"
)

// Create adds a chat at the front of the registry and selects it. Blank
// names or phones leave s unchanged.
func (s State) Create(name, phone string, at time.Time) State {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return s
	}

	n := s.clone()
	chat := models.Chat{
		ID:          n.nextID(at),
		Name:        name,
		Phone:       phone,
		LastMessage: newChatPreview,
		Time:        newChatTime,
		About:       newChatAbout,
	}

	n.chats = slices.Insert(n.chats, 0, chat)
	n.log[chat.ID] = []models.Message{}
	n.current = chat.ID
	n.profile = false
	return n
}

// Select makes id the active chat, clearing its unread counter and closing
// the profile panel.
func (s State) Select(id int64) State {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}

	n := s.clone()
	n.chats[i].Unread = 0
	n.current = id
	n.profile = false
	if _, ok := n.log[id]; !ok {
		n.log[id] = []models.Message{}
	}
	return n
}

// Delete drops a chat, from the registry or the archive, together with its
// log. Deleting an unknown id is a no-op.
func (s State) Delete(id int64) State {
	i := s.indexOf(id)
	a := slices.IndexFunc(s.archived, func(c models.Chat) bool { return c.ID == id })
	if i < 0 && a < 0 {
		return s
	}

	n := s.clone()
	if i >= 0 {
		n.chats = slices.Delete(n.chats, i, i+1)
	}
	if a >= 0 {
		n.archived = slices.Delete(n.archived, a, a+1)
	}
	n.log = n.log.Clear(id)
	delete(n.feedback, id)
	n.cancelFor(id)
	n.deselect(id)
	return n
}

// Archive moves a chat out of the registry into the archived collection.
// Its log stays untouched.
func (s State) Archive(id int64) State {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}

	n := s.clone()
	chat := n.chats[i]
	n.chats = slices.Delete(n.chats, i, i+1)
	n.archived = append(n.archived, chat)
	n.cancelFor(id)
	n.deselect(id)
	return n
}

// Unarchive restores an archived chat to the front of the registry.
func (s State) Unarchive(id int64) State {
	i := slices.IndexFunc(s.archived, func(c models.Chat) bool { return c.ID == id })
	if i < 0 || s.indexOf(id) >= 0 {
		return s
	}

	n := s.clone()
	chat := n.archived[i]
	n.archived = slices.Delete(n.archived, i, i+1)
	n.chats = slices.Insert(n.chats, 0, chat)
	return n
}

func (s State) UpdateLastMessage(id int64, text, label string) State {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}

	n := s.clone()
	n.chats[i].LastMessage = text
	n.chats[i].Time = label
	return n
}

// UpdateContact edits the profile fields shown in the side panel.
func (s State) UpdateContact(id int64, name, about string) State {
	name = strings.TrimSpace(name)
	i := s.indexOf(id)
	if i < 0 || name == "" {
		return s
	}

	n := s.clone()
	n.chats[i].Name = name
	n.chats[i].About = strings.TrimSpace(about)
	return n
}

func (s *State) deselect(id int64) {
	if s.current == id {
		s.current = 0
		s.profile = false
	}
}
