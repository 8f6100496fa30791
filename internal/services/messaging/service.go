package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/announcer/internal/models"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Seed for message selection, zero seeds from the clock
	Seed int64

	// DefaultTone when the input does not ask for one (optional, defaults to hype)
	DefaultTone MessageTone
}

// service implements the Service interface
type service struct {
	defaultTone MessageTone

	// Random number generator for selecting random messages
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	if config == nil {
		config = &ServiceConfig{}
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	tone := config.DefaultTone
	if tone == "" {
		tone = ToneHype
	}

	return &service{
		defaultTone: tone,
		rand:        rand.New(rand.NewSource(seed)),
	}, nil
}

// cueTitles is what the announcer shouts for each cue
var cueTitles = map[models.Cue]string{
	models.CueSessionStart:  "Prepare to fight!",
	models.CueDoubleKill:    "Double Kill!",
	models.CueKillingSpree:  "Killing Spree!",
	models.CueTripleKill:    "Triple Kill!",
	models.CueDominating:    "Dominating!",
	models.CueMegaKill:      "Mega Kill!",
	models.CueUltraKill:     "Ultra Kill!",
	models.CueUnstoppable:   "Unstoppable!",
	models.CueWickedSick:    "Wicked Sick!",
	models.CueMonsterKill:   "Monster Kill!",
	models.CueRampage:       "Rampage!",
	models.CueGodlike:       "Godlike!",
	models.CueBeyondGodlike: "Beyond Godlike!",
}

// GetCueMessage returns the announcement text for a cue
func (s *service) GetCueMessage(ctx context.Context, input *GetCueMessageInput) (*GetCueMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Cue.IsNone() {
		return nil, ErrNoCue
	}

	title, ok := cueTitles[input.Cue]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCue, input.Cue)
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = s.defaultTone
	}

	name := input.PlayerName
	if name == "" {
		name = "Someone"
	}

	var messages []string

	switch {
	case input.Cue == models.CueSessionStart:
		messages = []string{
			fmt.Sprintf("%s has entered the arena.", name),
			fmt.Sprintf("%s is locked and loaded.", name),
			fmt.Sprintf("Fresh match for %s. Make it count.", name),
		}
	case input.Cue.IsMultiKill():
		switch tone {
		case ToneSarcastic:
			messages = []string{
				fmt.Sprintf("%s took out %d at once. Were they standing in a line?", name, input.Delta),
				fmt.Sprintf("%d in one go, %s. Try not to let it go to your head.", input.Delta, name),
			}
		case ToneNeutral:
			messages = []string{
				fmt.Sprintf("%s: %d kills in one update, %d total.", name, input.Delta, input.Kills),
			}
		default:
			messages = []string{
				fmt.Sprintf("%s just dropped %d in one burst!", name, input.Delta),
				fmt.Sprintf("%d down in a heartbeat. %s is not messing around!", input.Delta, name),
				fmt.Sprintf("Did everyone see that? %s with %d at once!", name, input.Delta),
			}
		}
	case input.Cue == models.CueGodlike || input.Cue == models.CueBeyondGodlike:
		switch tone {
		case ToneSarcastic:
			messages = []string{
				fmt.Sprintf("%d kills, %s. Somebody check their config.", input.Kills, name),
				fmt.Sprintf("%s is at %d. Please leave some for the rest of the lobby.", name, input.Kills),
			}
		case ToneNeutral:
			messages = []string{
				fmt.Sprintf("%s: %d kills.", name, input.Kills),
			}
		default:
			messages = []string{
				fmt.Sprintf("%s has ascended. %d kills and counting!", name, input.Kills),
				fmt.Sprintf("Somebody stop %s! %d and no end in sight!", name, input.Kills),
				fmt.Sprintf("%d kills! %s is playing a different game!", input.Kills, name),
			}
		}
	default:
		switch tone {
		case ToneSarcastic:
			messages = []string{
				fmt.Sprintf("%s is on %d. The bar was low, but still.", name, input.Kills),
				fmt.Sprintf("Look at %s go. %d whole kills.", name, input.Kills),
			}
		case ToneNeutral:
			messages = []string{
				fmt.Sprintf("%s: %d kills.", name, input.Kills),
			}
		default:
			messages = []string{
				fmt.Sprintf("%s is on fire with %d kills!", name, input.Kills),
				fmt.Sprintf("%d and counting for %s!", input.Kills, name),
				fmt.Sprintf("Nobody can touch %s right now. %d kills!", name, input.Kills),
			}
		}
	}

	message := s.pick(messages)

	return &GetCueMessageOutput{
		Title:   title,
		Message: strings.Join([]string{title, message}, " "),
		Tone:    tone,
	}, nil
}

// GetTransitionMessage returns a short line for transitions without a cue
func (s *service) GetTransitionMessage(ctx context.Context, input *GetTransitionMessageInput) (*GetTransitionMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := input.Current.Name

	var messages []string

	switch input.Transition {
	case models.TransitionStart:
		messages = []string{
			fmt.Sprintf("Tracking %s.", name),
		}
	case models.TransitionNameChange:
		messages = []string{
			fmt.Sprintf("%s tags out, %s tags in.", input.Previous.Name, name),
			fmt.Sprintf("New player: %s.", name),
		}
	case models.TransitionReset:
		messages = []string{
			fmt.Sprintf("%s went back to %d. Streak over.", name, input.Current.Kills),
			fmt.Sprintf("And the streak ends for %s.", name),
			fmt.Sprintf("New match for %s.", name),
		}
	case models.TransitionIncrease:
		messages = []string{
			fmt.Sprintf("%s is on %d.", name, input.Current.Kills),
		}
	default:
		messages = []string{
			fmt.Sprintf("No change for %s.", name),
		}
	}

	return &GetTransitionMessageOutput{
		Message: s.pick(messages),
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}
