package models

import (
	"time"
)

// Announcement records a cue that fired for an accepted update
type Announcement struct {
	// ID is the request ID of the update that produced the announcement
	ID string

	// Player is the state after the update
	Player PlayerState

	// Previous is the state before the update
	Previous PlayerState

	// Cue is the tier that fired
	Cue Cue

	// Message is the human readable announcement line
	Message string

	// CreatedAt is when the update was accepted
	CreatedAt time.Time
}

// Delta returns how many kills the update added, 0 when a different player
// took over
func (a *Announcement) Delta() int {
	if !a.Player.SamePlayer(a.Previous) {
		return 0
	}
	return int(a.Player.Kills) - int(a.Previous.Kills)
}
