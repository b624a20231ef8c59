package session

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saravenpi/sup/internal/models"
)

var t0 = time.Date(2024, 5, 1, 15, 22, 0, 0, time.UTC)

func fixture() State {
	chats := []models.Chat{
		{ID: 1, Name: "Abhishek Rawat", Phone: "+919707722802", LastMessage: "Thank you", Time: "15:22", Unread: 2, Online: true},
		{ID: 2, Name: "Nurat P", Phone: "+919707474703", LastMessage: "Automation", Time: "15:22"},
	}
	messages := map[int64][]models.Message{
		1: {
			{ID: 1, Text: "Hello Abhishek, how are you?", Sent: true, Time: "15:20"},
			{ID: 2, Text: "Thank you", Time: "15:22"},
		},
		2: {
			{ID: 1, Text: "How is the automation project going?", Sent: true, Time: "15:20"},
		},
	}
	return New(chats, messages)
}

func names(chats []models.Chat) []string {
	out := make([]string, len(chats))
	for i, c := range chats {
		out[i] = c.Name
	}
	return out
}

func TestCreate(t *testing.T) {
	s := fixture().Create("  Sarah Johnson ", " +1234567890 ", t0)

	chats := s.Chats()
	require.Len(t, chats, 3)
	created := chats[0]
	assert.Equal(t, "Sarah Johnson", created.Name)
	assert.Equal(t, "+1234567890", created.Phone)
	assert.Equal(t, t0.UnixMilli(), created.ID)
	assert.Equal(t, 0, created.Unread)
	assert.Equal(t, "No messages yet", created.LastMessage)
	assert.Equal(t, "now", created.Time)
	assert.False(t, created.Online)

	assert.Equal(t, created.ID, s.CurrentID())
	assert.False(t, s.ProfileOpen())
	assert.True(t, s.HasLog(created.ID))
	assert.Empty(t, s.Messages(created.ID))
}

func TestCreate_BlankInputIsNoop(t *testing.T) {
	tests := []struct {
		name  string
		chat  string
		phone string
	}{
		{name: "blank name", chat: " ", phone: "+1234567890"},
		{name: "empty phone", chat: "Sarah", phone: ""},
		{name: "whitespace phone", chat: "Sarah", phone: "\t "},
		{name: "both empty", chat: "", phone: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := fixture()
			after := before.Create(tt.chat, tt.phone, t0)
			assert.Len(t, after.Chats(), len(before.Chats()))
			assert.Zero(t, after.CurrentID())
		})
	}
}

func TestCreate_IDsAreUniqueAndIncreasing(t *testing.T) {
	s := fixture()
	// Same instant for every create: ids must still differ.
	for i := 0; i < 5; i++ {
		s = s.Create("Contact", "+100", t0)
	}
	// A clock that went backwards must not reuse ids either.
	s = s.Create("Late", "+200", t0.Add(-time.Hour))

	seen := make(map[int64]bool)
	var prev int64
	chats := s.Chats()
	for i := len(chats) - 1; i >= 0; i-- {
		c := chats[i]
		assert.False(t, seen[c.ID], "duplicate id %d", c.ID)
		seen[c.ID] = true
		if c.ID > 2 {
			assert.Greater(t, c.ID, prev)
		}
		prev = c.ID
	}
}

func TestSelect(t *testing.T) {
	s := fixture().Select(1).OpenProfile()
	require.True(t, s.ProfileOpen())

	s = s.Select(2)
	assert.Equal(t, int64(2), s.CurrentID())
	assert.False(t, s.ProfileOpen(), "switching chats must close the profile panel")

	s = s.Select(1)
	c, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, 0, c.Unread)
}

func TestSelect_UnknownIDIsNoop(t *testing.T) {
	s := fixture().Select(1).OpenProfile()
	after := s.Select(99)
	assert.Equal(t, int64(1), after.CurrentID())
	assert.True(t, after.ProfileOpen())
}

func TestSelect_DoesNotMutatePrevious(t *testing.T) {
	before := fixture()
	_ = before.Select(1)

	c, ok := before.Chat(1)
	require.True(t, ok)
	assert.Equal(t, 2, c.Unread)
	assert.Zero(t, before.CurrentID())
}

func TestDelete(t *testing.T) {
	s := fixture().Select(1).OpenProfile()
	s = s.Delete(1)

	assert.Equal(t, []string{"Nurat P"}, names(s.Chats()))
	assert.False(t, s.HasLog(1))
	assert.Zero(t, s.CurrentID())
	assert.False(t, s.ProfileOpen())
}

func TestDelete_OtherChatKeepsSelection(t *testing.T) {
	s := fixture().Select(2).OpenProfile().Delete(1)
	assert.Equal(t, int64(2), s.CurrentID())
	assert.True(t, s.ProfileOpen())
}

func TestDelete_Idempotent(t *testing.T) {
	once := fixture().Select(2).Delete(1)
	twice := once.Delete(1)

	if diff := cmp.Diff(once.Chats(), twice.Chats()); diff != "" {
		t.Errorf("chats differ after second delete (-once +twice):\n%s", diff)
	}
	assert.Equal(t, once.CurrentID(), twice.CurrentID())
	assert.Equal(t, once.HasLog(1), twice.HasLog(1))
}

func TestDelete_UnknownIDIsNoop(t *testing.T) {
	before := fixture().Select(1)
	after := before.Delete(42)

	if diff := cmp.Diff(before.Chats(), after.Chats()); diff != "" {
		t.Errorf("chats changed (-before +after):\n%s", diff)
	}
	assert.Equal(t, before.CurrentID(), after.CurrentID())
}

func TestDelete_UnknownIDKeepsOrphanLog(t *testing.T) {
	before := fixture().Append(77, models.Message{ID: 1, Text: "orphan"})
	after := before.Delete(77)

	assert.True(t, after.HasLog(77))
	if diff := cmp.Diff(before.Messages(77), after.Messages(77)); diff != "" {
		t.Errorf("orphan log changed (-before +after):\n%s", diff)
	}
}

func TestDelete_ArchivedChat(t *testing.T) {
	s := fixture().Archive(2).Delete(2)
	assert.Empty(t, s.Archived())
	assert.False(t, s.HasLog(2))
}

func TestArchive(t *testing.T) {
	before := fixture().Select(2).OpenProfile()
	logBefore := before.Messages(2)

	s := before.Archive(2)
	assert.Equal(t, []string{"Abhishek Rawat"}, names(s.Chats()))
	assert.Equal(t, []string{"Nurat P"}, names(s.Archived()))
	assert.Zero(t, s.CurrentID())
	assert.False(t, s.ProfileOpen())

	if diff := cmp.Diff(logBefore, s.Messages(2)); diff != "" {
		t.Errorf("archived chat log changed (-want +got):\n%s", diff)
	}

	again := s.Archive(2)
	assert.Len(t, again.Archived(), 1, "archiving twice must not duplicate")
}

func TestUnarchive(t *testing.T) {
	s := fixture().Archive(2).Unarchive(2)
	assert.Equal(t, []string{"Nurat P", "Abhishek Rawat"}, names(s.Chats()))
	assert.Empty(t, s.Archived())
	assert.Len(t, s.Messages(2), 1)

	assert.Equal(t, s.Chats(), s.Unarchive(2).Chats())
}

func TestUpdateLastMessage(t *testing.T) {
	s := fixture().UpdateLastMessage(2, "See you", "16:01")
	c, ok := s.Chat(2)
	require.True(t, ok)
	assert.Equal(t, "See you", c.LastMessage)
	assert.Equal(t, "16:01", c.Time)

	assert.Equal(t, s.Chats(), s.UpdateLastMessage(7, "x", "y").Chats())
}

func TestUpdateContact(t *testing.T) {
	s := fixture().UpdateContact(1, " Abhi ", " Busy ")
	c, _ := s.Chat(1)
	assert.Equal(t, "Abhi", c.Name)
	assert.Equal(t, "Busy", c.About)

	unchanged := s.UpdateContact(1, "  ", "Away")
	c, _ = unchanged.Chat(1)
	assert.Equal(t, "Abhi", c.Name)
	assert.Equal(t, "Busy", c.About)
}
