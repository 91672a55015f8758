package genome

import "fmt"

// Range is a chromosome-relative, 1-based, inclusive interval.
type Range struct {
	Chromosome Chromosome
	Start      int
	End        int
}

// NewRange returns a Range with start and end swapped when given in reverse order,
// as they are for features on the minus strand.
func NewRange(c Chromosome, from, to int) Range {
	if from > to {
		from, to = to, from
	}
	return Range{Chromosome: c, Start: from, End: to}
}

func (r Range) String() string {
	return fmt.Sprintf("chr%s:%d-%d", r.Chromosome, r.Start, r.End)
}

// Span is an absolute, 0-based, inclusive interval of the concatenated genome.
type Span struct {
	Start int
	End   int
}

// Len is the number of bases covered by the span.
func (s Span) Len() int {
	return s.End - s.Start + 1
}

// Merge extends s to also cover o.
func (s Span) Merge(o Span) Span {
	if o.Start < s.Start {
		s.Start = o.Start
	}
	if o.End > s.End {
		s.End = o.End
	}
	return s
}

// Clip returns the part of s inside bounds. ok is false if they don't intersect.
func (s Span) Clip(bounds Span) (clipped Span, ok bool) {
	if s.Start < bounds.Start {
		s.Start = bounds.Start
	}
	if s.End > bounds.End {
		s.End = bounds.End
	}
	return s, s.Start <= s.End
}

// Intersects reports whether a and b share at least one base.
func Intersects(a, b Span) bool {
	return a.Start <= b.End && b.Start <= a.End
}

// Overlaps reports whether an endpoint of one span lies strictly inside the other.
//
// Spans that only touch at an endpoint are not overlapping, and neither are two
// spans with identical start and end: no endpoint is strictly interior to the other.
func Overlaps(a, b Span) bool {
	return (a.Start < b.Start && b.Start < a.End) ||
		(a.Start < b.End && b.End < a.End) ||
		(b.Start < a.Start && a.Start < b.End) ||
		(b.Start < a.End && a.End < b.End)
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d]", s.Start, s.End)
}
