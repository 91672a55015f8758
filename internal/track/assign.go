package track

import (
	"errors"
	"fmt"
)

// DefaultMaxTracks is the track pool size when none is configured.
const DefaultMaxTracks = 10

// ErrExhausted is wrapped by ExhaustionError.
var ErrExhausted = errors.New("no free track")

// ExhaustionError reports a feature left uncoloured because every track was
// taken by one of its neighbours.
type ExhaustionError struct {
	ID        string
	MaxTracks int
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("%s: all %d tracks used by overlapping features", e.ID, e.MaxTracks)
}

func (e *ExhaustionError) Unwrap() error { return ErrExhausted }

// Assignment maps a feature id to its 0-based track.
type Assignment map[string]int

// Width is one more than the highest assigned track, 0 when empty.
func (a Assignment) Width() int {
	w := 0
	for _, t := range a {
		if t+1 > w {
			w = t + 1
		}
	}
	return w
}

// Assign colours g greedily in node order. Each node takes the lowest track
// not held by an already coloured neighbour. Nodes for which all maxTracks
// are held are left out of the assignment and reported.
func Assign(g *Graph, maxTracks int) (Assignment, []error) {
	if maxTracks < 1 {
		return Assignment{}, []error{fmt.Errorf("failed to assign tracks: max tracks is %d", maxTracks)}
	}

	tracks := make([]int, len(g.Nodes))
	for i := range tracks {
		tracks[i] = -1
	}

	var diagnostics []error
	used := make([]bool, maxTracks)
	assignment := make(Assignment, len(g.Nodes))
	for i, n := range g.Nodes {
		for t := range used {
			used[t] = false
		}
		for _, j := range g.Neighbours(i) {
			if t := tracks[j]; t >= 0 {
				used[t] = true
			}
		}

		for t, taken := range used {
			if !taken {
				tracks[i] = t
				break
			}
		}

		if tracks[i] < 0 {
			diagnostics = append(diagnostics, &ExhaustionError{ID: n.Feature.ID, MaxTracks: maxTracks})
			continue
		}
		assignment[n.Feature.ID] = tracks[i]
	}

	return assignment, diagnostics
}
