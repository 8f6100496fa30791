package player

import "github.com/KirkDiggler/announcer/internal/models"

// SwapPlayerInput contains the state to store
type SwapPlayerInput struct {
	Player models.PlayerState
}

// SwapPlayerOutput contains the state that was in effect before the swap
type SwapPlayerOutput struct {
	Previous models.PlayerState
}

// GetPlayerInput contains parameters for reading the stored player
type GetPlayerInput struct{}
