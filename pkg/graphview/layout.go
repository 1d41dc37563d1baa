package graphview

import (
	"math"
	"math/rand"
)

// Ring layout bounds. Jitter scales the base radius so nodes do not sit
// on a perfect circle; depth offsets are constant regardless of viewport.
const (
	ringRadiusFactor = 0.35
	jitterMin        = 0.7
	jitterMax        = 1.0
	depthRange       = 100.0
)

// GenerateLayout places the i-th of N entities at angle 2π·i/N on a ring
// whose base radius is a fraction of the smaller viewport dimension, with
// a bounded random radial jitter and a random depth offset. The angle is
// deterministic; only the magnitudes are stochastic, so callers that need
// reproducible layouts inject a seeded rng. This is a presentation
// layout, not a physics simulation: there is no iterative relaxation.
func GenerateLayout(entities []Entity, vp Viewport, rng *rand.Rand) []Node {
	if len(entities) == 0 {
		return []Node{}
	}

	base := ringRadiusFactor * math.Min(float64(vp.Width), float64(vp.Height))
	angleStep := 2 * math.Pi / float64(len(entities))

	nodes := make([]Node, len(entities))
	for i, e := range entities {
		angle := float64(i) * angleStep
		radius := base * (jitterMin + rng.Float64()*(jitterMax-jitterMin))
		nodes[i] = Node{
			ID:    e.ID,
			Label: e.Label,
			Type:  e.Type,
			Position: Vec3{
				X: radius * math.Cos(angle),
				Y: radius * math.Sin(angle),
				Z: -depthRange + rng.Float64()*2*depthRange,
			},
		}
	}
	return nodes
}
