package burst

import "github.com/vovakirdan/bubble-burst/internal/core"

// Event is something the host may want to react to (sound, logging,
// banners). The set of events is closed.
type Event interface {
	burstEvent()
}

// LossCause says why a life was lost.
type LossCause int

const (
	CauseBubble LossCause = iota
	CauseTimeout
)

// String returns the cause name.
func (c LossCause) String() string {
	if c == CauseTimeout {
		return "timeout"
	}
	return "bubble"
}

// LevelChanged is raised whenever a level is (re)initialized.
type LevelChanged struct {
	Level int
	Theme string
}

// BubblePopped is raised for every projectile hit.
type BubblePopped struct {
	Size       Size
	Points     int
	Multiplier int
	At         core.Vec
}

// LifeLost is raised when the player is hit or the countdown expires.
type LifeLost struct {
	Cause     LossCause
	LivesLeft int
}

// LevelCleared is raised once when the last bubble of a level is popped.
type LevelCleared struct {
	Level     int
	TimeBonus int
	Bonus     int // Total awarded, time bonus included
}

// GameOver is raised when the session ends. Cleared is set when the player
// advanced past the final level.
type GameOver struct {
	Score   int
	Level   int
	Cleared bool
}

func (LevelChanged) burstEvent() {}
func (BubblePopped) burstEvent() {}
func (LifeLost) burstEvent()     {}
func (LevelCleared) burstEvent() {}
func (GameOver) burstEvent()     {}

// Frame is the result of one engine update.
type Frame struct {
	Events []Event
	Phase  Phase
}
