package tracker

import (
	"context"

	"github.com/KirkDiggler/announcer/internal/models"
)

// Service accepts player updates and decides what gets announced
//
//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/announcer/internal/services/tracker Service,Notifier
type Service interface {
	// Update validates the incoming state, swaps it into the store and
	// dispatches any cue the transition earns
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)

	// GetPlayer returns the currently tracked player
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)
}

// Notifier receives every announcement. Implementations must not block for long;
// they run detached from the request.
type Notifier interface {
	Notify(ctx context.Context, announcement *models.Announcement) error
}
