package messaging

import "context"

// Service is the interface for the messaging service
//
//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/announcer/internal/services/messaging Service
type Service interface {
	// GetCueMessage returns the announcement text for a cue
	GetCueMessage(ctx context.Context, input *GetCueMessageInput) (*GetCueMessageOutput, error)

	// GetTransitionMessage returns a short line for transitions without a cue
	GetTransitionMessage(ctx context.Context, input *GetTransitionMessageInput) (*GetTransitionMessageOutput, error)
}
