package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tzok/sgd-annotator/internal/anchor"
	"github.com/tzok/sgd-annotator/internal/genome"
)

// classifier is a fixed name to category mapping.
type classifier map[string]genome.Category

func (c classifier) Category(name string) genome.Category { return c[name] }

func rng(start, end int) genome.Range {
	return genome.Range{Chromosome: genome.ChrI, Start: start, End: end}
}

func rngp(start, end int) *genome.Range {
	r := rng(start, end)
	return &r
}

func TestCompose_singleExon(t *testing.T) {
	const offset = 3
	tr := anchor.NewTranslator(anchor.Table{genome.ChrI: {Offset: offset, Length: 8}})

	f := &genome.Feature{
		ID:             "YAL001C",
		Category:       genome.ORF,
		Range:          rng(2, 5),
		Coding:         []genome.Range{rng(2, 5)},
		SystematicName: "YAL001C",
		StandardName:   "TFC3",
	}
	span, err := tr.TranslateRange(f.Range)
	require.NoError(t, err)

	g, diagnostics := Compose(offset+8, []Placement{{Feature: f, Span: span, Track: 0}}, tr, classifier{"YAL001C": genome.ORF})
	assert.Empty(t, diagnostics)
	assert.Equal(t, 1, g.Width())

	want := Cell{Label: Label{Type: "ORF", SystematicName: "YAL001C", StandardName: "TFC3"}, Subtype: Exon}
	for pos := offset + 1; pos <= offset+4; pos++ {
		assert.Equal(t, want, g.Cell(pos, 0), "position %d", pos)
	}
	assert.Equal(t, Cell{}, g.Cell(offset, 0))
	assert.Equal(t, Cell{}, g.Cell(offset+5, 0))

	for pos := 0; pos < g.Len(); pos++ {
		assert.NotEqual(t, Intron, g.Cell(pos, 0).Subtype, "single exon has no intron")
	}
}

func TestPlan(t *testing.T) {
	tr := anchor.NewTranslator(anchor.Table{genome.ChrI: {Offset: 100, Length: 1000}})

	f := &genome.Feature{
		ID:             "YAL003W",
		Category:       genome.ORF,
		Range:          rng(20, 80),
		Coding:         []genome.Range{rng(20, 30), rng(50, 80)},
		UTR5:           rngp(10, 19),
		UTR3:           rngp(81, 2000),
		SystematicName: "YAL003W",
		StandardName:   "EFB1",
	}
	extended := genome.Span{Start: 109, End: 179}

	ops, diagnostics := Plan(Placement{Feature: f, Span: extended}, tr, classifier{"YAL003W": genome.ORF})
	require.Len(t, diagnostics, 1, "3' UTR runs off the chromosome")

	label := &Label{Type: "ORF", SystematicName: "YAL003W", StandardName: "EFB1"}
	assert.Equal(t, []Op{
		{Span: extended, Label: label, Subtype: Unknown},
		{Span: genome.Span{Start: 109, End: 118}, Subtype: UTR5},
		{Span: genome.Span{Start: 119, End: 129}, Subtype: Exon},
		{Span: genome.Span{Start: 149, End: 179}, Subtype: Exon},
		{Span: genome.Span{Start: 129, End: 149}, Subtype: Intron},
	}, ops)
}

func TestPlan_otherHasNoUTRs(t *testing.T) {
	tr := anchor.NewTranslator(anchor.Table{genome.ChrI: {Offset: 0, Length: 100}})

	f := &genome.Feature{
		ID:             "CEN1",
		Category:       genome.Other,
		Range:          rng(21, 30),
		UTR5:           rngp(11, 20),
		UTR3:           rngp(31, 5000),
		SystematicName: "CEN1",
		StandardName:   "CEN1",
	}
	span := genome.Span{Start: 20, End: 29}

	ops, diagnostics := Plan(Placement{Feature: f, Span: span}, tr, classifier{})
	assert.Empty(t, diagnostics, "UTRs of an Other feature are not translated")
	assert.Equal(t, []Op{
		{Span: span, Label: &Label{Type: "Other", SystematicName: "CEN1", StandardName: "CEN1"}, Subtype: Unknown},
	}, ops)
}

func TestCompose_precedence(t *testing.T) {
	tr := anchor.NewTranslator(anchor.Table{genome.ChrI: {Offset: 0, Length: 100}})

	f := &genome.Feature{
		ID:             "A",
		Category:       genome.ORF,
		Range:          rng(11, 40),
		Coding:         []genome.Range{rng(11, 20), rng(31, 40)},
		UTR5:           rngp(1, 12),
		SystematicName: "A",
		StandardName:   "a",
	}
	extended := genome.Span{Start: 0, End: 39}
	g, diagnostics := Compose(100, []Placement{{Feature: f, Span: extended, Track: 1}}, tr, classifier{"A": genome.ORF})
	assert.Empty(t, diagnostics)
	assert.Equal(t, 2, g.Width())

	tests := []struct {
		pos  int
		want Subtype
	}{
		{0, UTR5},
		{10, Exon},
		{11, Exon},
		{19, Intron},
		{25, Intron},
		{30, Intron},
		{31, Exon},
		{39, Exon},
		{40, None},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.Cell(tt.pos, 1).Subtype, "position %d", tt.pos)
	}

	for pos := 0; pos <= 39; pos++ {
		c := g.Cell(pos, 1)
		assert.Equal(t, "ORF", c.Type, "every covered base carries the category")
		assert.Equal(t, "A", c.SystematicName)
		assert.Equal(t, Cell{}, g.Cell(pos, 0))
	}
}
