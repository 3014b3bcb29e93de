// Package bot provides the Discord front end.
//
// The bot watches messages for platform content URLs and saves them to
// the library, replying with a summary embed. Coaching metadata is
// added afterwards through the API or CLI.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/creaselab/crease/application/service"
	"github.com/creaselab/crease/domain/content"
	"github.com/creaselab/crease/domain/ingest"
)

const saveTimeout = 30 * time.Second

// Bot is a Discord session wired to the content library.
type Bot struct {
	session *discordgo.Session
	library *service.Library
	logger  *slog.Logger
}

// New creates a Bot with the given bot token.
func New(token string, library *service.Library, logger *slog.Logger) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("discord bot token is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	b := &Bot{session: session, library: library, logger: logger}
	session.AddHandler(b.onReady)
	session.AddHandler(b.onMessage)
	return b, nil
}

// Start opens the Discord connection. It returns once connected; the
// session keeps running until Stop is called.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	return nil
}

// Stop closes the Discord connection.
func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("bot connected",
		slog.String("username", r.User.Username),
		slog.Int("guilds", len(r.Guilds)),
	)
}

func (b *Bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	url, source, ok := ingest.DetectURL(m.Content)
	if !ok {
		return
	}

	b.logger.Info("content URL detected",
		slog.String("source", string(source)),
		slog.String("url", url),
	)

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	item, err := b.library.SaveFromURL(ctx, service.SaveParams{Source: source, URL: url})
	if err != nil {
		b.logger.Error("failed to save detected content",
			slog.String("url", url),
			slog.String("error", err.Error()),
		)
		b.reply(m, fmt.Sprintf("Could not save that %s link: %v", source, err))
		return
	}

	embed := saveEmbed(item)
	if _, err := s.ChannelMessageSendEmbedReply(m.ChannelID, embed, m.Reference()); err != nil {
		b.logger.Warn("failed to send reply embed", slog.String("error", err.Error()))
	}
}

func (b *Bot) reply(m *discordgo.MessageCreate, text string) {
	if _, err := b.session.ChannelMessageSendReply(m.ChannelID, text, m.Reference()); err != nil {
		b.logger.Warn("failed to send reply", slog.String("error", err.Error()))
	}
}

func saveEmbed(item content.Item) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "Saved to library",
		Description: item.Title(),
		URL:         item.URL(),
		Color:       0x2e8b57,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Source", Value: item.Source().String(), Inline: true},
		},
	}
	if item.Author() != "" {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Author", Value: item.Author(), Inline: true})
	}
	if item.ThumbnailURL() != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: item.ThumbnailURL()}
	}
	return embed
}
