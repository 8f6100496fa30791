package player

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/announcer/internal/models"
)

// memoryRepository keeps the player record in process memory
type memoryRepository struct {
	mu     sync.Mutex
	player models.PlayerState
}

// NewMemory creates an in-memory player repository starting from the idle state
func NewMemory() *memoryRepository {
	return &memoryRepository{}
}

// SwapPlayer replaces the stored player under the lock and returns the previous one
func (r *memoryRepository) SwapPlayer(ctx context.Context, input *SwapPlayerInput) (*SwapPlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	// Honor cancellation before taking the lock, never after a committed swap
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	previous := r.player
	r.player = input.Player
	r.mu.Unlock()

	return &SwapPlayerOutput{
		Previous: previous,
	}, nil
}

// GetPlayer returns a copy of the stored player
func (r *memoryRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.PlayerState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	player := r.player
	return &player, nil
}
