package annotate

import (
	"fmt"
	"strings"
	"time"

	"github.com/montanaflynn/stats"
)

// Summary counts what a run did.
type Summary struct {
	RunID string

	Bases    int
	Features int

	// Covered is the number of bases under at least one feature
	Covered int

	// Excluded are features of category Other left out of the tracks
	Excluded int

	Placed      int
	Tracks      int
	Diagnostics int

	// span lengths of placed features, in bases
	MeanSpan   float64
	MedianSpan float64
	MaxSpan    float64

	// PerTrack is the number of features on each track
	PerTrack []int

	Elapsed time.Duration
}

func summarize(res *Result, bases, features, excluded int, elapsed time.Duration) Summary {
	s := Summary{
		RunID:       res.RunID,
		Bases:       bases,
		Features:    features,
		Excluded:    excluded,
		Placed:      len(res.Placements),
		Tracks:      res.Grid.Width(),
		Diagnostics: len(res.Diagnostics),
		PerTrack:    make([]int, res.Grid.Width()),
		Elapsed:     elapsed,
	}

	for pos := 0; pos < res.Grid.Len(); pos++ {
		if !res.Grid.Empty(pos) {
			s.Covered++
		}
	}

	lengths := make([]float64, 0, len(res.Placements))
	for _, p := range res.Placements {
		lengths = append(lengths, float64(p.Span.Len()))
		s.PerTrack[p.Track]++
	}

	if len(lengths) > 0 {
		s.MeanSpan, _ = stats.Mean(lengths)
		s.MedianSpan, _ = stats.Median(lengths)
		s.MaxSpan, _ = stats.Max(lengths)
	}
	return s
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s: %d bases, %d features, %d placed on %d tracks", s.RunID, s.Bases, s.Features, s.Placed, s.Tracks)
	if s.Excluded > 0 {
		fmt.Fprintf(&b, ", %d of category Other left out", s.Excluded)
	}
	fmt.Fprintf(&b, ", %d warnings\n", s.Diagnostics)
	fmt.Fprintf(&b, "covered: %d of %d bases\n", s.Covered, s.Bases)
	fmt.Fprintf(&b, "span length: mean %.1f, median %.1f, max %.0f\n", s.MeanSpan, s.MedianSpan, s.MaxSpan)
	fmt.Fprintf(&b, "features per track: %v\n", s.PerTrack)
	fmt.Fprintf(&b, "elapsed: %s", s.Elapsed.Round(time.Millisecond))
	return b.String()
}
