package announcer

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/announcer/internal/services/announcer Service

import "github.com/KirkDiggler/announcer/internal/models"

// Service plays announcer cues. Implementations handle all errors internally,
// Play is fire-and-forget.
type Service interface {
	// Play starts the clip for the cue and returns without waiting for playback.
	// Unknown cues, unreadable or undecodable clips are logged, never returned.
	Play(cue models.Cue)
}

// NoopService is a Service that does nothing. Use it when audio is muted.
type NoopService struct{}

// Play does nothing. Safe to call with any input.
func (NoopService) Play(models.Cue) {}
