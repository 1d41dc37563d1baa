package graphview

import "math"

// FocalLength is the perspective divide constant D in scale = D/(D+z)
const FocalLength = 800.0

// Camera holds the rotation state used to project scene points.
// Angles are radians. ThreeD toggles the perspective divide; when it is
// off the rotation math still applies, so the flattened view keeps
// turning. That matches the observed behavior this renderer reproduces
// and is intentional, not a bug.
type Camera struct {
	RotationX float64
	RotationY float64
	ThreeD    bool
}

// Rotate adds deltas to both rotation angles, wrapping modulo 2π so the
// values stay bounded over long sessions
func (c *Camera) Rotate(dx, dy float64) {
	c.RotationX = wrapAngle(c.RotationX + dx)
	c.RotationY = wrapAngle(c.RotationY + dy)
}

func wrapAngle(a float64) float64 {
	return math.Mod(a, 2*math.Pi)
}

// Project maps a scene point onto the surface. The rotation order is
// fixed: vertical axis first (RotationY), then horizontal (RotationX),
// then the perspective divide and centering. Depth is the post-rotation
// z; larger means farther from the camera.
func (c Camera) Project(p Vec3, vp Viewport) Projected {
	sinY, cosY := math.Sincos(c.RotationY)
	x1 := p.X*cosY - p.Z*sinY
	z1 := p.X*sinY + p.Z*cosY

	sinX, cosX := math.Sincos(c.RotationX)
	y1 := p.Y*cosX - z1*sinX
	z2 := p.Y*sinX + z1*cosX

	scale := 1.0
	if c.ThreeD {
		scale = FocalLength / (FocalLength + z2)
	}

	return Projected{
		X:     float64(vp.Width)/2 + x1*scale,
		Y:     float64(vp.Height)/2 + y1*scale,
		Scale: scale,
		Depth: z2,
	}
}
