package burst

import (
	"github.com/vovakirdan/bubble-burst/internal/config"
)

// Split returns the children spawned when b is popped.
// Large bubbles yield two mediums, mediums yield two smalls, and smalls
// yield nothing. Children start at the parent's position, moving apart.
func Split(b Bubble, cfg config.BubbleConfig) []Bubble {
	var child Size
	var factor float64

	switch b.Size {
	case SizeLarge:
		child, factor = SizeMedium, cfg.MediumSpeed
	case SizeMedium:
		child, factor = SizeSmall, cfg.SmallSpeed
	default:
		return nil
	}

	speed := cfg.Speed * factor
	return []Bubble{
		NewBubble(cfg, child, b.Pos, speed),
		NewBubble(cfg, child, b.Pos, -speed),
	}
}
