package messaging

import (
	"github.com/KirkDiggler/announcer/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneHype is the arena announcer voice
	ToneHype MessageTone = "hype"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"
)

// GetCueMessageInput contains parameters for getting a cue message
type GetCueMessageInput struct {
	// PlayerName is the player the cue is about
	PlayerName string

	// Cue that fired
	Cue models.Cue

	// Kills is the new kill count
	Kills uint16

	// Delta is the number of kills gained in the update
	Delta int

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetCueMessageOutput contains the announcement text
type GetCueMessageOutput struct {
	// Title is the headline, usually the shouted cue name
	Title string

	// Message is the full announcement line
	Message string

	// Tone the message was written in
	Tone MessageTone
}

// GetTransitionMessageInput contains parameters for a transition without a cue
type GetTransitionMessageInput struct {
	// Previous state of the player slot
	Previous models.PlayerState

	// Current state of the player slot
	Current models.PlayerState

	// Transition that was classified
	Transition models.Transition
}

// GetTransitionMessageOutput contains the transition line
type GetTransitionMessageOutput struct {
	Message string
}
