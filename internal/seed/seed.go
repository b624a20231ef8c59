// Package seed provides the chats a session starts with.
package seed

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/saravenpi/sup/internal/models"
)

//go:embed seed.yml
var builtin string

type file struct {
	Chats []chat `yaml:"chats"`
}

type chat struct {
	ID          int64     `yaml:"id"`
	Name        string    `yaml:"name"`
	Phone       string    `yaml:"phone"`
	Avatar      string    `yaml:"avatar,omitempty"`
	LastMessage string    `yaml:"last_message"`
	Time        string    `yaml:"time"`
	Unread      int       `yaml:"unread,omitempty"`
	Online      bool      `yaml:"online,omitempty"`
	About       string    `yaml:"about,omitempty"`
	Messages    []message `yaml:"messages,omitempty"`
}

type message struct {
	ID   int64  `yaml:"id"`
	Text string `yaml:"text"`
	Sent bool   `yaml:"sent"`
	Time string `yaml:"time"`
}

// Data is a decoded seed: registry order plus each chat's log.
type Data struct {
	Chats    []models.Chat
	Messages map[int64][]models.Message
}

// Default returns the built-in demo chats.
func Default() (Data, error) {
	return Decode(strings.NewReader(builtin))
}

// LoadFile reads a seed from a YAML file.
func LoadFile(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses seed YAML. Chat ids must be positive and unique, and message
// ids unique within their chat.
func Decode(r io.Reader) (Data, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if err == io.EOF {
			return Data{Messages: map[int64][]models.Message{}}, nil
		}
		return Data{}, fmt.Errorf("failed to parse seed: %w", err)
	}

	data := Data{
		Chats:    make([]models.Chat, 0, len(f.Chats)),
		Messages: make(map[int64][]models.Message, len(f.Chats)),
	}

	for _, c := range f.Chats {
		if c.ID <= 0 {
			return Data{}, fmt.Errorf("chat %q: id must be positive", c.Name)
		}
		if _, dup := data.Messages[c.ID]; dup {
			return Data{}, fmt.Errorf("chat %q: duplicate id %d", c.Name, c.ID)
		}
		if c.Unread < 0 {
			return Data{}, fmt.Errorf("chat %q: unread must not be negative", c.Name)
		}

		data.Chats = append(data.Chats, models.Chat{
			ID:          c.ID,
			Name:        c.Name,
			Phone:       c.Phone,
			Avatar:      c.Avatar,
			LastMessage: c.LastMessage,
			Time:        c.Time,
			Unread:      c.Unread,
			Online:      c.Online,
			About:       c.About,
		})

		msgs := make([]models.Message, 0, len(c.Messages))
		seen := make(map[int64]bool, len(c.Messages))
		for _, m := range c.Messages {
			if seen[m.ID] {
				return Data{}, fmt.Errorf("chat %q: duplicate message id %d", c.Name, m.ID)
			}
			seen[m.ID] = true
			msgs = append(msgs, models.Message{ID: m.ID, Text: m.Text, Sent: m.Sent, Time: m.Time})
		}
		data.Messages[c.ID] = msgs
	}

	return data, nil
}
