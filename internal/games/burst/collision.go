package burst

import (
	"github.com/vovakirdan/bubble-burst/internal/config"
	"github.com/vovakirdan/bubble-burst/internal/core"
)

// BubbleHitsPlayer tests the bubble against a circle inscribed in the
// player's width, centred on the player's body.
func BubbleHitsPlayer(b Bubble, p Player, cfg config.PlayerConfig) bool {
	body := core.Circle{Center: p.Center(cfg), R: cfg.Width / 2}
	return b.Circle().Overlaps(body)
}

// BeamHitsBubble tests the bubble against the whole beam, from its tip down
// to the ground line.
func BeamHitsBubble(pr Projectile, b Bubble, stage config.StageConfig) bool {
	return b.Circle().Touches(pr.Beam(stage))
}
