package discord

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"dojocrm/internal/domain/entities"
	"dojocrm/internal/ports/output"
	pkgdiscord "dojocrm/pkg/discord"
)

var _ output.Announcer = (*Announcer)(nil)

// Announcer posts event announcements to the academy's community channel.
// It uses the Discord REST API only; no gateway connection is opened.
type Announcer struct {
	session   *discordgo.Session
	channelID string
	loc       *time.Location
}

// NewAnnouncer builds an Announcer, or a no-op one when token/channel are
// not configured so callers never have to nil-check.
func NewAnnouncer(token, channelID string, loc *time.Location) (output.Announcer, error) {
	if token == "" || channelID == "" {
		log.Println("discord announcer disabled (no token/channel configured)")
		return noopAnnouncer{}, nil
	}
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	return &Announcer{
		session:   session,
		channelID: channelID,
		loc:       loc,
	}, nil
}

func (a *Announcer) EventCreated(_ context.Context, event *entities.Event) error {
	embed := pkgdiscord.BuildEventAnnouncementEmbed(event, a.loc)
	if _, err := a.session.ChannelMessageSendEmbed(a.channelID, embed); err != nil {
		return fmt.Errorf("send announcement: %w", err)
	}
	return nil
}

type noopAnnouncer struct{}

func (noopAnnouncer) EventCreated(context.Context, *entities.Event) error {
	return nil
}
