package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/saravenpi/sup/internal/models"
)

func renderMessages(chat models.Chat, messages []models.Message, width int) string {
	if width <= 0 {
		width = 80
	}
	right := lipgloss.NewStyle().Align(lipgloss.Right).Width(width)
	bubbleWidth := max(width*2/3, 20)

	var content strings.Builder
	for i, message := range messages {
		if i > 0 {
			content.WriteString("\n")
		}

		sender := chat.Name
		style := messageFromOtherStyle
		if message.Sent {
			sender = "You"
			style = messageFromMeStyle
		}

		header := messageHeaderStyle.Render(fmt.Sprintf("%s • %s", sender, message.Time))
		body := style.Render(wordwrap.String(message.Text, bubbleWidth))
		reactions := renderReactions(message.Reactions)

		if message.Sent {
			content.WriteString(right.Render(header) + "\n")
			content.WriteString(right.Render(body) + "\n")
			if reactions != "" {
				content.WriteString(right.Render(reactions) + "\n")
			}
		} else {
			content.WriteString(header + "\n")
			content.WriteString(body + "\n")
			if reactions != "" {
				content.WriteString(reactions + "\n")
			}
		}
	}

	return content.String()
}

func renderReactions(reactions []models.Reaction) string {
	if len(reactions) == 0 {
		return ""
	}
	badges := make([]string, len(reactions))
	for i, r := range reactions {
		badges[i] = reactionStyle.Render(fmt.Sprintf("%s %d", r.Emoji, r.Count))
	}
	return strings.Join(badges, " ")
}

func renderConversationHeader(chat models.Chat, typing string) string {
	status := presence(chat)
	if typing != "" {
		status = typing
	}
	return titleStyle.MarginBottom(0).Render(fmt.Sprintf("%s  %s", getInitials(chat.Name), chat.Name)) + "\n" +
		statusStyle.Render(status)
}

func renderWelcome(width, height int) string {
	text := titleStyle.Render("Sup for terminal") + "\n\n" +
		normalStyle.Render("Send and receive messages without keeping your phone online.") + "\n\n" +
		helpStyle.Render("enter: open a chat • n: start a new chat")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}
