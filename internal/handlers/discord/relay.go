// Package discord relays announcements to a Discord channel.
package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/announcer/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Sender is the part of the Discord session the relay uses
//
//go:generate mockgen -package=mocks -destination=mocks/mock_sender.go github.com/KirkDiggler/announcer/internal/handlers/discord Sender
type Sender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Config holds the configuration for the relay
type Config struct {
	// Discord bot token, used when Sender is nil
	Token string

	// ChannelID announcements are posted to
	ChannelID string

	// Sender overrides the session built from Token (optional)
	Sender Sender

	// Logger (optional)
	Logger *slog.Logger
}

// Relay posts every announcement to one channel
type Relay struct {
	sender    Sender
	channelID string
	logger    *slog.Logger
}

// New creates a new Discord relay
func New(cfg *Config) (*Relay, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	sender := cfg.Sender
	if sender == nil {
		if cfg.Token == "" {
			return nil, errors.New("token cannot be empty")
		}

		// Posting only needs the REST API, so the gateway is never opened
		session, err := discordgo.New("Bot " + cfg.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to create Discord session: %w", err)
		}
		sender = session
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Relay{
		sender:    sender,
		channelID: cfg.ChannelID,
		logger:    logger,
	}, nil
}

// Notify posts the announcement to the channel
func (r *Relay) Notify(ctx context.Context, announcement *models.Announcement) error {
	if announcement == nil {
		return errors.New("announcement cannot be nil")
	}

	_, err := r.sender.ChannelMessageSendEmbed(
		r.channelID,
		renderAnnouncement(announcement),
		discordgo.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to post announcement to channel %s: %w", r.channelID, err)
	}

	r.logger.Debug("announcement relayed",
		"request_id", announcement.ID,
		"channel_id", r.channelID,
		"cue", announcement.Cue,
	)

	return nil
}
