package entity

const (
	// MarkerLifetimeTicks is how long a floating score marker stays visible.
	MarkerLifetimeTicks = 60

	// markerDrift is the marker's upward drift per tick, in pixels.
	markerDrift = 0.3
)

// ScoreMarker is a transient floating score shown where a ghost was captured
// or a fruit collected. Markers are owned by the session and dropped when
// their lifetime reaches zero.
type ScoreMarker struct {
	X, Y     float64
	Points   int
	Lifetime int
}

// NewScoreMarker creates a marker at the given pixel position.
func NewScoreMarker(x, y float64, points int) ScoreMarker {
	return ScoreMarker{X: x, Y: y, Points: points, Lifetime: MarkerLifetimeTicks}
}

// Update ages the marker by one tick and drifts it upward.
func (m *ScoreMarker) Update() {
	m.Lifetime--
	m.Y -= markerDrift
}

// Alive reports whether the marker should still be shown.
func (m *ScoreMarker) Alive() bool {
	return m.Lifetime > 0
}
