package models

// Cue identifies an announcer clip
type Cue string

const (
	// CueNone means no announcement
	CueNone Cue = ""

	// CueSessionStart is played when a new player session begins (opt-in)
	CueSessionStart Cue = "session_start"

	// Multi-kill tiers, picked by how many kills arrived in a single update
	CueDoubleKill Cue = "double_kill"
	CueTripleKill Cue = "triple_kill"
	CueUltraKill  Cue = "ultra_kill"
	CueRampage    Cue = "rampage"

	// Streak tiers, picked by the absolute kill count
	CueKillingSpree  Cue = "killing_spree"
	CueDominating    Cue = "dominating"
	CueMegaKill      Cue = "mega_kill"
	CueUnstoppable   Cue = "unstoppable"
	CueWickedSick    Cue = "wicked_sick"
	CueMonsterKill   Cue = "monster_kill"
	CueGodlike       Cue = "godlike"
	CueBeyondGodlike Cue = "beyond_godlike"
)

// cueRanks orders the escalating tiers. Multi-kill and streak tiers share one scale
// so a burst can be compared against the milestone it reached.
var cueRanks = map[Cue]int{
	CueSessionStart:  0,
	CueDoubleKill:    1,
	CueKillingSpree:  2,
	CueTripleKill:    3,
	CueDominating:    4,
	CueMegaKill:      5,
	CueUltraKill:     6,
	CueUnstoppable:   7,
	CueWickedSick:    8,
	CueMonsterKill:   9,
	CueRampage:       10,
	CueGodlike:       11,
	CueBeyondGodlike: 12,
}

// AllCues returns every playable cue, lowest rank first
func AllCues() []Cue {
	return []Cue{
		CueSessionStart,
		CueDoubleKill,
		CueKillingSpree,
		CueTripleKill,
		CueDominating,
		CueMegaKill,
		CueUltraKill,
		CueUnstoppable,
		CueWickedSick,
		CueMonsterKill,
		CueRampage,
		CueGodlike,
		CueBeyondGodlike,
	}
}

// Rank returns the tier of the cue. Unknown cues and CueNone rank -1.
func (c Cue) Rank() int {
	rank, ok := cueRanks[c]
	if !ok {
		return -1
	}
	return rank
}

// IsValid returns true if the cue is a known, playable cue
func (c Cue) IsValid() bool {
	_, ok := cueRanks[c]
	return ok
}

// IsNone returns true if the cue means no announcement
func (c Cue) IsNone() bool {
	return c == CueNone
}

// IsMultiKill returns true for tiers triggered by several kills in one update
func (c Cue) IsMultiKill() bool {
	switch c {
	case CueDoubleKill, CueTripleKill, CueUltraKill, CueRampage:
		return true
	}
	return false
}

// IsStreak returns true for tiers triggered by the absolute kill count
func (c Cue) IsStreak() bool {
	return c.IsValid() && c != CueSessionStart && !c.IsMultiKill()
}

// String returns the cue identifier
func (c Cue) String() string {
	return string(c)
}

// HigherCue returns whichever cue has the higher rank, preferring a on ties
func HigherCue(a, b Cue) Cue {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}
