// Package streak decides which announcer cue, if any, a player update earns.
package streak

import (
	"github.com/KirkDiggler/announcer/internal/models"
)

// firstMilestone is the lowest kill count with a streak announcement
const firstMilestone = 3

// milestones maps absolute kill counts to streak tiers. Counts past the
// last entry keep announcing beyondMilestone.
var milestones = map[uint16]models.Cue{
	3: models.CueKillingSpree,
	4: models.CueDominating,
	5: models.CueMegaKill,
	6: models.CueUnstoppable,
	7: models.CueWickedSick,
	8: models.CueMonsterKill,
	9: models.CueGodlike,
}

const (
	lastMilestone   = 9
	beyondMilestone = models.CueBeyondGodlike
)

// multiKills maps the number of kills in one update to a multi-kill tier.
// Bursts past the last entry announce maxMultiKill.
var multiKills = map[int]models.Cue{
	2: models.CueDoubleKill,
	3: models.CueTripleKill,
	4: models.CueUltraKill,
}

const (
	lastMultiKill = 4
	maxMultiKill  = models.CueRampage
)

// Classifier maps a state transition to an optional cue
type Classifier interface {
	Classify(prev, next models.PlayerState) Result
}

// Result is the outcome of classifying one update
type Result struct {
	Transition models.Transition
	Cue        models.Cue
}

// HasCue returns true if the update should be announced
func (r Result) HasCue() bool {
	return !r.Cue.IsNone()
}

// Config for the classifier
type Config struct {
	// AnnounceSessionStart plays models.CueSessionStart when a new player is
	// first seen instead of staying silent
	AnnounceSessionStart bool
}

type classifier struct {
	announceSessionStart bool
}

// New creates a classifier. A nil config uses the defaults.
func New(cfg *Config) *classifier {
	c := &classifier{}
	if cfg != nil {
		c.announceSessionStart = cfg.AnnounceSessionStart
	}
	return c
}

// Classify compares the stored state with the incoming one
func (c *classifier) Classify(prev, next models.PlayerState) Result {
	switch {
	case prev.IsIdle():
		return c.sessionStart(models.TransitionStart)
	case !prev.SamePlayer(next):
		return c.sessionStart(models.TransitionNameChange)
	case next.Kills < prev.Kills:
		return Result{Transition: models.TransitionReset}
	case next.Kills == prev.Kills:
		return Result{Transition: models.TransitionUnchanged}
	}

	delta := int(next.Kills) - int(prev.Kills)

	return Result{
		Transition: models.TransitionIncrease,
		Cue:        models.HigherCue(MilestoneCue(next.Kills), MultiKillCue(delta)),
	}
}

func (c *classifier) sessionStart(transition models.Transition) Result {
	result := Result{Transition: transition}
	if c.announceSessionStart {
		result.Cue = models.CueSessionStart
	}
	return result
}

// MilestoneCue returns the streak tier for an absolute kill count
func MilestoneCue(kills uint16) models.Cue {
	if kills < firstMilestone {
		return models.CueNone
	}
	if kills > lastMilestone {
		return beyondMilestone
	}
	return milestones[kills]
}

// MultiKillCue returns the multi-kill tier for kills earned in one update
func MultiKillCue(delta int) models.Cue {
	if delta < 2 {
		return models.CueNone
	}
	if delta > lastMultiKill {
		return maxMultiKill
	}
	return multiKills[delta]
}
