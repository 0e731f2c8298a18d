// Package series holds the rolling time-window buffers behind the dashboard
// charts. Buffers are append-only at the back and evict only from the front,
// so timestamps stay sorted and pruning is a single re-slice.
package series

import (
	"sort"

	"github.com/chrisangelothomas/OpenLCH/src/telemetry"
)

// Point is one retained (timestamp, value) pair.
type Point struct {
	T float64
	V float64
}

// Rolling is a scalar series ordered by time.
type Rolling struct {
	pts []Point
}

// Append adds a point at the back. Points whose timestamp would break the
// non-decreasing order are rejected and the method reports false.
func (r *Rolling) Append(t, v float64) bool {
	if n := len(r.pts); n > 0 && t < r.pts[n-1].T {
		return false
	}
	r.pts = append(r.pts, Point{T: t, V: v})
	return true
}

// PruneOlderThan evicts leading points older than window seconds before now
// and returns how many were removed.
func (r *Rolling) PruneOlderThan(now, window float64) int {
	cut := sort.Search(len(r.pts), func(i int) bool {
		return now-r.pts[i].T <= window
	})
	if cut == 0 {
		return 0
	}
	r.pts = append(r.pts[:0], r.pts[cut:]...)
	return cut
}

// Len returns the number of retained points.
func (r *Rolling) Len() int { return len(r.pts) }

// Points returns the retained points, oldest first. The slice is a view;
// callers must not mutate it.
func (r *Rolling) Points() []Point { return r.pts }

// Last returns the most recent point.
func (r *Rolling) Last() (Point, bool) {
	if len(r.pts) == 0 {
		return Point{}, false
	}
	return r.pts[len(r.pts)-1], true
}

// MinMax returns the smallest and largest retained values.
func (r *Rolling) MinMax() (min, max float64, ok bool) {
	if len(r.pts) == 0 {
		return 0, 0, false
	}
	min, max = r.pts[0].V, r.pts[0].V
	for _, p := range r.pts[1:] {
		if p.V < min {
			min = p.V
		}
		if p.V > max {
			max = p.V
		}
	}
	return min, max, true
}

// Vector is one retained sample across all joints.
type Vector = [telemetry.NumJoints]float64

// VectorRolling is a joint-vector series ordered by time. One entry holds the
// values for every joint at a single timestamp.
type VectorRolling struct {
	ts   []float64
	vals []Vector
}

// Append adds a vector at the back, rejecting out-of-order timestamps.
func (r *VectorRolling) Append(t float64, v Vector) bool {
	if n := len(r.ts); n > 0 && t < r.ts[n-1] {
		return false
	}
	r.ts = append(r.ts, t)
	r.vals = append(r.vals, v)
	return true
}

// PruneOlderThan evicts leading entries older than window seconds before now.
func (r *VectorRolling) PruneOlderThan(now, window float64) int {
	cut := sort.Search(len(r.ts), func(i int) bool {
		return now-r.ts[i] <= window
	})
	if cut == 0 {
		return 0
	}
	r.ts = append(r.ts[:0], r.ts[cut:]...)
	r.vals = append(r.vals[:0], r.vals[cut:]...)
	return cut
}

// Len returns the number of retained entries.
func (r *VectorRolling) Len() int { return len(r.ts) }

// Times returns the retained timestamps, oldest first, as a view.
func (r *VectorRolling) Times() []float64 { return r.ts }

// Column copies out the series for a single joint.
func (r *VectorRolling) Column(joint int) []float64 {
	out := make([]float64, len(r.vals))
	for i, v := range r.vals {
		out[i] = v[joint]
	}
	return out
}

// MinMax returns the smallest and largest values across all joints and entries.
func (r *VectorRolling) MinMax() (min, max float64, ok bool) {
	if len(r.vals) == 0 {
		return 0, 0, false
	}
	min, max = r.vals[0][0], r.vals[0][0]
	for _, v := range r.vals {
		for _, x := range v {
			if x < min {
				min = x
			}
			if x > max {
				max = x
			}
		}
	}
	return min, max, true
}
