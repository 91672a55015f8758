// Package grid composes the per-base, per-track annotation grid.
package grid

import (
	"fmt"

	"github.com/tzok/sgd-annotator/internal/genome"
)

// Subtype is the finest label of a cell.
type Subtype uint8

const (
	// None marks a cell no feature covers
	None Subtype = iota
	// Unknown marks a feature base not refined by any UTR, exon or intron paint
	Unknown
	UTR5
	UTR3
	Exon
	Intron
)

// String is the label written to the "Subtype N" column.
func (s Subtype) String() string {
	switch s {
	case None:
		return ""
	case Unknown:
		return "?"
	case UTR5:
		return "UTR 5'"
	case UTR3:
		return "UTR 3'"
	case Exon:
		return "Exon"
	case Intron:
		return "Intron"
	}
	return fmt.Sprintf("Subtype(%d)", uint8(s))
}

// Label is the feature-level part of a cell.
type Label struct {
	Type           string
	SystematicName string
	StandardName   string
}

// Cell is one position of one track.
type Cell struct {
	Label
	Subtype Subtype
}

// Grid is a genome length by track count matrix of cells, all empty when created.
//
// Cells are stored as an index into a table of distinct labels and a subtype,
// so a whole genome fits in a few bytes per cell.
type Grid struct {
	length int
	width  int

	labels   []Label
	index    map[Label]uint32
	cells    []uint32
	subtypes []Subtype
}

// New returns an empty grid.
func New(length, width int) *Grid {
	if length < 0 {
		length = 0
	}
	if width < 0 {
		width = 0
	}
	return &Grid{
		length:   length,
		width:    width,
		labels:   []Label{{}},
		index:    map[Label]uint32{{}: 0},
		cells:    make([]uint32, length*width),
		subtypes: make([]Subtype, length*width),
	}
}

// Len is the number of positions.
func (g *Grid) Len() int { return g.length }

// Width is the number of tracks.
func (g *Grid) Width() int { return g.width }

// Cell returns the cell at a 0-based position and track.
func (g *Grid) Cell(pos, track int) Cell {
	i := pos*g.width + track
	return Cell{Label: g.labels[g.cells[i]], Subtype: g.subtypes[i]}
}

// Empty reports whether no feature covers the position on any track.
func (g *Grid) Empty(pos int) bool {
	for t := 0; t < g.width; t++ {
		if g.subtypes[pos*g.width+t] != None {
			return false
		}
	}
	return true
}

func (g *Grid) intern(l Label) uint32 {
	if i, ok := g.index[l]; ok {
		return i
	}
	i := uint32(len(g.labels))
	g.labels = append(g.labels, l)
	g.index[l] = i
	return i
}

// Paint writes a subtype, and the label when label is non-nil, to every
// position of span on track. The span is clipped to the grid.
func (g *Grid) Paint(track int, span genome.Span, label *Label, subtype Subtype) {
	if track < 0 || track >= g.width {
		return
	}
	span, ok := span.Clip(genome.Span{Start: 0, End: g.length - 1})
	if !ok {
		return
	}

	var li uint32
	if label != nil {
		li = g.intern(*label)
	}
	for pos := span.Start; pos <= span.End; pos++ {
		i := pos*g.width + track
		if label != nil {
			g.cells[i] = li
		}
		g.subtypes[i] = subtype
	}
}
