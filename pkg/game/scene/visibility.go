package scene

import (
	"math"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/flashlight"
)

// Viewer is everything visibility depends on
type Viewer struct {
	Position  world.Vector2
	Direction float64 // beam heading in radians, shake already applied
	Light     flashlight.State
	HeartRate float64
	Sanity    float64
	Scene     Type
}

// Visibility describes what the player can see this frame
type Visibility struct {
	Origin world.Vector2
	Radius float64 // always-visible circle

	ConeOn        bool
	ConeDirection float64 // radians
	ConeHalfAngle float64 // radians
	ConeRange     float64

	Darkness         float64 // 0-1 global fog of the scene
	HeartRateFog     float64 // extra fog from panic
	SanityDistortion float64 // 0-1, grows as sanity drops below the distortion start
}

// ComputeVisibility derives the visible area and fog levels for a viewer
func ComputeVisibility(v Viewer, fog config.FogConfig, sanity config.SanityConfig) Visibility {
	vis := Visibility{
		Origin:   v.Position,
		Radius:   fog.UnlitRadius,
		Darkness: Describe(v.Scene).Darkness,
	}

	if v.Light.IsOn {
		vis.Radius = fog.LitRadius
		vis.ConeOn = true
		vis.ConeDirection = v.Direction
		vis.ConeHalfAngle = v.Light.Angle / 2 * math.Pi / 180
		vis.ConeRange = v.Light.Range
	}

	if v.HeartRate > fog.HeartRateStart && fog.HeartRateBand > 0 {
		intensity := math.Min(1, (v.HeartRate-fog.HeartRateStart)/fog.HeartRateBand)
		vis.HeartRateFog = intensity * fog.HeartRateMaxFog
	}

	if v.Sanity < sanity.DistortionStart && sanity.DistortionStart > 0 {
		vis.SanityDistortion = math.Max(0, 1-v.Sanity/sanity.DistortionStart)
	}

	return vis
}

// Visible reports whether p is inside the visible circle or the beam
func (vis Visibility) Visible(p world.Vector2) bool {
	d := vis.Origin.Dist(p)
	if d <= vis.Radius {
		return true
	}
	if !vis.ConeOn || d > vis.ConeRange {
		return false
	}
	return math.Abs(angleDiff(p.Sub(vis.Origin).Angle(), vis.ConeDirection)) <= vis.ConeHalfAngle
}

// angleDiff returns a-b wrapped to (-π, π]
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
