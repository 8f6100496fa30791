package models

// MaxKills is the largest kill count a player record can hold
const MaxKills = 65535

// PlayerState is the last known state of the tracked player
type PlayerState struct {
	// Name is the in-game name of the player. Empty means no player is tracked yet.
	Name string

	// Kills is the player's current kill count
	Kills uint16
}

// IsIdle returns true if no player has been recorded yet
func (p PlayerState) IsIdle() bool {
	return p.Name == ""
}

// SamePlayer returns true if both states belong to the same player name
func (p PlayerState) SamePlayer(other PlayerState) bool {
	return p.Name == other.Name
}
