// pkg/route/path.go
package route

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrTooFewWaypoints is returned when a path has fewer than two waypoints.
	ErrTooFewWaypoints = errors.New("path needs at least two waypoints")
	// ErrDegenerateSegment is returned when two consecutive waypoints coincide.
	ErrDegenerateSegment = errors.New("path segment has zero length")
	// ErrNonFiniteWaypoint is returned when a waypoint coordinate is NaN or infinite.
	ErrNonFiniteWaypoint = errors.New("waypoint coordinate is not finite")
)

// Waypoint is a fixed point on the enemy route.
type Waypoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Path is an immutable polyline that enemies follow from the first waypoint to the last.
type Path struct {
	points []Waypoint
	length float64
}

// New validates the waypoints and builds a Path from a private copy of them.
func New(points []Waypoint) (*Path, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewWaypoints, len(points))
	}

	p := &Path{points: make([]Waypoint, len(points))}
	copy(p.points, points)

	for i, w := range p.points {
		if !w.finite() {
			return nil, fmt.Errorf("%w: waypoint %d at (%v, %v)", ErrNonFiniteWaypoint, i, w.X, w.Y)
		}
	}

	for i := 1; i < len(p.points); i++ {
		seg := p.points[i-1].DistanceTo(p.points[i])
		if seg == 0 {
			return nil, fmt.Errorf("%w: waypoints %d and %d at (%.1f, %.1f)",
				ErrDegenerateSegment, i-1, i, p.points[i].X, p.points[i].Y)
		}
		p.length += seg
	}
	return p, nil
}

// Len returns the number of waypoints.
func (p *Path) Len() int {
	return len(p.points)
}

// At returns the i-th waypoint. ok is false when i is out of range.
func (p *Path) At(i int) (Waypoint, bool) {
	if i < 0 || i >= len(p.points) {
		return Waypoint{}, false
	}
	return p.points[i], true
}

// Start returns the spawn waypoint.
func (p *Path) Start() Waypoint {
	return p.points[0]
}

// Waypoints returns a copy of the waypoints, safe for the caller to keep.
func (p *Path) Waypoints() []Waypoint {
	out := make([]Waypoint, len(p.points))
	copy(out, p.points)
	return out
}

// Length returns the total length of the polyline.
func (p *Path) Length() float64 {
	return p.length
}

// DistanceTo returns the Euclidean distance between two waypoints.
func (w Waypoint) DistanceTo(o Waypoint) float64 {
	return math.Hypot(o.X-w.X, o.Y-w.Y)
}

func (w Waypoint) finite() bool {
	return !math.IsNaN(w.X) && !math.IsNaN(w.Y) && !math.IsInf(w.X, 0) && !math.IsInf(w.Y, 0)
}
