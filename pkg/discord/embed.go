package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"dojocrm/internal/domain/entities"
)

const (
	embedColor = 0xC8102E
	embedTitle = "🥋 New event at the academy"
)

// BuildEventAnnouncementEmbed builds the announcement posted to the
// community channel when an event is created.
func BuildEventAnnouncementEmbed(event *entities.Event, loc *time.Location) *discordgo.MessageEmbed {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("**%s**\n", event.Name))
	if event.Description != "" {
		b.WriteString("\n" + event.Description + "\n")
	}
	b.WriteString(fmt.Sprintf("\n**When:** %s", event.Date.In(loc).Format("02/01/2006 at 15:04")))
	b.WriteString(fmt.Sprintf("\n**Where:** %s", event.Location))

	return &discordgo.MessageEmbed{
		Title:       embedTitle,
		Description: b.String(),
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Check in at the front desk up to 2h around start time"},
	}
}
