package grid

import (
	"fmt"

	"github.com/tzok/sgd-annotator/internal/genome"
)

// Translator maps chromosome ranges to genome spans.
type Translator interface {
	TranslateRange(r genome.Range) (genome.Span, error)
}

// Classifier decides a feature's category by name.
type Classifier interface {
	Category(name string) genome.Category
}

// Placement is a coloured feature: its extended genome span and its track.
type Placement struct {
	Feature *genome.Feature
	Span    genome.Span
	Track   int
}

// Op is one paint of a feature onto its track.
type Op struct {
	Span    genome.Span
	Label   *Label
	Subtype Subtype
}

// Plan returns the ordered paints of a placed feature: the labelled extended
// span, then 5' UTR, 3' UTR, exons and introns, each clipped to the extended
// span. Sub-ranges that fail to translate are skipped and reported.
func Plan(p Placement, tr Translator, classify Classifier) ([]Op, []error) {
	f := p.Feature
	label := &Label{
		Type:           classify.Category(f.SystematicName).String(),
		SystematicName: f.SystematicName,
		StandardName:   f.StandardName,
	}
	ops := []Op{{Span: p.Span, Label: label, Subtype: Unknown}}

	var diagnostics []error
	add := func(r genome.Range, subtype Subtype) {
		span, err := tr.TranslateRange(r)
		if err != nil {
			diagnostics = append(diagnostics, fmt.Errorf("%s %s %s: %w", f.ID, subtype, r, err))
			return
		}
		if span, ok := span.Clip(p.Span); ok {
			ops = append(ops, Op{Span: span, Subtype: subtype})
		}
	}

	// the extended span of an Other feature excludes its UTRs
	if f.Category != genome.Other {
		if f.UTR5 != nil {
			add(*f.UTR5, UTR5)
		}
		if f.UTR3 != nil {
			add(*f.UTR3, UTR3)
		}
	}
	for _, r := range f.Coding {
		add(r, Exon)
	}
	for _, r := range f.Noncoding() {
		add(r, Intron)
	}

	return ops, diagnostics
}

// Compose paints every placement, in order, onto a new grid of the given
// length. The grid is one track wider than the highest placed track.
func Compose(length int, placements []Placement, tr Translator, classify Classifier) (*Grid, []error) {
	width := 0
	for _, p := range placements {
		if p.Track+1 > width {
			width = p.Track + 1
		}
	}

	g := New(length, width)
	var diagnostics []error
	for _, p := range placements {
		ops, errs := Plan(p, tr, classify)
		diagnostics = append(diagnostics, errs...)
		for _, op := range ops {
			g.Paint(p.Track, op.Span, op.Label, op.Subtype)
		}
	}
	return g, diagnostics
}
