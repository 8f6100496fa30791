package models

// Transition describes how an update moved the player state
type Transition string

const (
	// TransitionStart is the first update after the process started
	TransitionStart Transition = "start"

	// TransitionNameChange means a different player took over, tracking resets
	TransitionNameChange Transition = "name_change"

	// TransitionReset means the kill count went down, tracking resets
	TransitionReset Transition = "reset"

	// TransitionUnchanged means the update repeated the stored state
	TransitionUnchanged Transition = "unchanged"

	// TransitionIncrease means the kill count went up
	TransitionIncrease Transition = "increase"
)

// IsReset returns true if the transition starts tracking from scratch
func (t Transition) IsReset() bool {
	return t == TransitionStart || t == TransitionNameChange || t == TransitionReset
}

// IsIncrease returns true if the transition added kills
func (t Transition) IsIncrease() bool {
	return t == TransitionIncrease
}
