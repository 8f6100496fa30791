package tracker

import (
	"log/slog"

	"github.com/KirkDiggler/announcer/internal/common/clock"
	"github.com/KirkDiggler/announcer/internal/models"
	"github.com/KirkDiggler/announcer/internal/repositories/player"
	"github.com/KirkDiggler/announcer/internal/services/announcer"
	"github.com/KirkDiggler/announcer/internal/services/messaging"
	"github.com/KirkDiggler/announcer/internal/streak"
)

// Config holds configuration for the tracker service
type Config struct {
	// PlayerRepo holds the single player record
	PlayerRepo player.Repository

	// Classifier maps transitions to cues
	Classifier streak.Classifier

	// Announcer plays cues
	Announcer announcer.Service

	// Clock stamps announcements
	Clock clock.Clock

	// MessagingService writes announcement text (optional)
	MessagingService messaging.Service

	// Notifiers receive every announcement (optional)
	Notifiers []Notifier

	// Logger (optional)
	Logger *slog.Logger
}

// UpdateInput is one player update as received from the game
type UpdateInput struct {
	// RequestID ties log lines and announcements to the request (optional)
	RequestID string

	// Name of the player
	Name string

	// Kills as reported, validated against [0, models.MaxKills]
	Kills int64
}

// UpdateOutput describes what the update did
type UpdateOutput struct {
	Previous   models.PlayerState
	Current    models.PlayerState
	Transition models.Transition

	// Cue is models.CueNone when nothing was announced
	Cue models.Cue
}

// GetPlayerInput contains parameters for reading the tracked player
type GetPlayerInput struct{}

// GetPlayerOutput contains the tracked player
type GetPlayerOutput struct {
	Player models.PlayerState
}
