package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/announcer/internal/common/clock"
	"github.com/KirkDiggler/announcer/internal/models"
	"github.com/KirkDiggler/announcer/internal/repositories/player"
	"github.com/KirkDiggler/announcer/internal/services/announcer"
	"github.com/KirkDiggler/announcer/internal/services/messaging"
	"github.com/KirkDiggler/announcer/internal/streak"
)

// notifyTimeout bounds a single notifier call
const notifyTimeout = 10 * time.Second

// service implements the Service interface
type service struct {
	playerRepo       player.Repository
	classifier       streak.Classifier
	announcer        announcer.Service
	clock            clock.Clock
	messagingService messaging.Service
	notifiers        []Notifier
	logger           *slog.Logger

	notifying sync.WaitGroup
}

// New creates a new tracker service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.Classifier == nil {
		return nil, ErrNilClassifier
	}

	if cfg.Announcer == nil {
		return nil, ErrNilAnnouncer
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		playerRepo:       cfg.PlayerRepo,
		classifier:       cfg.Classifier,
		announcer:        cfg.Announcer,
		clock:            cfg.Clock,
		messagingService: cfg.MessagingService,
		notifiers:        cfg.Notifiers,
		logger:           logger,
	}, nil
}

// Update validates the incoming state, swaps it into the store and dispatches
// any cue the transition earns. Audio and notifiers never hold up the return.
func (s *service) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	next, err := validate(input)
	if err != nil {
		return nil, err
	}

	swapped, err := s.playerRepo.SwapPlayer(ctx, &player.SwapPlayerInput{
		Player: next,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store player: %w", err)
	}
	previous := swapped.Previous

	result := s.classifier.Classify(previous, next)

	logger := s.logger.With(
		"request_id", input.RequestID,
		"name", next.Name,
		"kills", next.Kills,
		"previous_kills", previous.Kills,
		"transition", result.Transition,
	)

	if !result.HasCue() {
		logger.Debug("player updated", "message", s.transitionMessage(ctx, previous, next, result.Transition))
		return &UpdateOutput{
			Previous:   previous,
			Current:    next,
			Transition: result.Transition,
		}, nil
	}

	s.announcer.Play(result.Cue)

	announcement := &models.Announcement{
		ID:        input.RequestID,
		Player:    next,
		Previous:  previous,
		Cue:       result.Cue,
		CreatedAt: s.clock.Now(),
	}
	announcement.Message = s.cueMessage(ctx, announcement)

	logger.Info("announcing", "cue", result.Cue, "message", announcement.Message)

	s.notify(announcement)

	return &UpdateOutput{
		Previous:   previous,
		Current:    next,
		Transition: result.Transition,
		Cue:        result.Cue,
	}, nil
}

// GetPlayer returns the currently tracked player
func (s *service) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	current, err := s.playerRepo.GetPlayer(ctx, &player.GetPlayerInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return &GetPlayerOutput{
		Player: *current,
	}, nil
}

// Wait blocks until detached notifier calls have finished
func (s *service) Wait() {
	s.notifying.Wait()
}

func validate(input *UpdateInput) (models.PlayerState, error) {
	if input == nil {
		return models.PlayerState{}, ErrNilInput
	}

	if strings.TrimSpace(input.Name) == "" {
		return models.PlayerState{}, ErrEmptyName
	}

	if input.Kills < 0 || input.Kills > models.MaxKills {
		return models.PlayerState{}, fmt.Errorf("%w: %d not in [0, %d]", ErrKillsOutOfRange, input.Kills, models.MaxKills)
	}

	return models.PlayerState{
		Name:  input.Name,
		Kills: uint16(input.Kills),
	}, nil
}

func (s *service) cueMessage(ctx context.Context, announcement *models.Announcement) string {
	if s.messagingService == nil {
		return announcement.Cue.String()
	}

	output, err := s.messagingService.GetCueMessage(ctx, &messaging.GetCueMessageInput{
		PlayerName: announcement.Player.Name,
		Cue:        announcement.Cue,
		Kills:      announcement.Player.Kills,
		Delta:      announcement.Delta(),
	})
	if err != nil {
		s.logger.Warn("failed to get cue message", "cue", announcement.Cue, "error", err)
		return announcement.Cue.String()
	}

	return output.Message
}

func (s *service) transitionMessage(ctx context.Context, previous, current models.PlayerState, transition models.Transition) string {
	if s.messagingService == nil {
		return string(transition)
	}

	output, err := s.messagingService.GetTransitionMessage(ctx, &messaging.GetTransitionMessageInput{
		Previous:   previous,
		Current:    current,
		Transition: transition,
	})
	if err != nil {
		return string(transition)
	}

	return output.Message
}

// notify fans the announcement out to every notifier on its own goroutine. The
// request context is not used so a finished request does not cancel delivery.
func (s *service) notify(announcement *models.Announcement) {
	for _, notifier := range s.notifiers {
		s.notifying.Add(1)
		go func(n Notifier) {
			defer s.notifying.Done()
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error("notifier panicked", "request_id", announcement.ID, "panic", r)
				}
			}()

			ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()

			if err := n.Notify(ctx, announcement); err != nil {
				s.logger.Warn("failed to notify",
					"request_id", announcement.ID,
					"cue", announcement.Cue,
					"error", err,
				)
			}
		}(notifier)
	}
}
