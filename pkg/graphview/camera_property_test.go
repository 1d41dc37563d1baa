package graphview

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestProjectionProperties uses property-based testing to verify
// invariants that must hold for any point and any rotation
func TestProjectionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	coord := gen.Float64Range(-500, 500)
	angle := gen.Float64Range(-4*math.Pi, 4*math.Pi)
	vp := Viewport{Width: 300, Height: 200}

	// Projection has no hidden randomness: same inputs, same outputs
	properties.Property("projection is deterministic", prop.ForAll(
		func(x, y, z, rx, ry float64) bool {
			cam := Camera{RotationX: rx, RotationY: ry, ThreeD: true}
			p := Vec3{X: x, Y: y, Z: z}
			a := cam.Project(p, vp)
			b := cam.Project(p, vp)
			return a == b
		},
		coord, coord, coord, angle, angle,
	))

	// 2D mode pins scale at 1 for every point and rotation
	properties.Property("flat mode forces scale 1", prop.ForAll(
		func(x, y, z, rx, ry float64) bool {
			cam := Camera{RotationX: rx, RotationY: ry}
			return cam.Project(Vec3{X: x, Y: y, Z: z}, vp).Scale == 1
		},
		coord, coord, coord, angle, angle,
	))

	// Rotation preserves distance from the rotation origin, so depth
	// can never exceed the point's norm
	properties.Property("depth is bounded by the point norm", prop.ForAll(
		func(x, y, z, rx, ry float64) bool {
			cam := Camera{RotationX: rx, RotationY: ry, ThreeD: true}
			depth := cam.Project(Vec3{X: x, Y: y, Z: z}, vp).Depth
			norm := math.Sqrt(x*x + y*y + z*z)
			return math.Abs(depth) <= norm+1e-6
		},
		coord, coord, coord, angle, angle,
	))

	// Zero rotation in flat mode is centering plus identity
	properties.Property("flat zero rotation round-trips", prop.ForAll(
		func(x, y, z float64) bool {
			cam := Camera{}
			p := cam.Project(Vec3{X: x, Y: y, Z: z}, vp)
			return p.X == float64(vp.Width)/2+x && p.Y == float64(vp.Height)/2+y
		},
		coord, coord, coord,
	))

	properties.TestingRun(t)
}
