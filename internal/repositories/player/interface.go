package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/announcer/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/announcer/internal/models"
)

// Repository holds the single tracked player record
type Repository interface {
	// SwapPlayer atomically replaces the stored player and returns the one it replaced
	SwapPlayer(ctx context.Context, input *SwapPlayerInput) (*SwapPlayerOutput, error)

	// GetPlayer returns a copy of the stored player
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.PlayerState, error)
}
