package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tzok/sgd-annotator/internal/genome"
)

func TestSubtype_String(t *testing.T) {
	tests := []struct {
		subtype Subtype
		want    string
	}{
		{None, ""},
		{Unknown, "?"},
		{UTR5, "UTR 5'"},
		{UTR3, "UTR 3'"},
		{Exon, "Exon"},
		{Intron, "Intron"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.subtype.String())
	}
}

func TestGrid_Paint(t *testing.T) {
	g := New(10, 2)
	assert.Equal(t, 10, g.Len())
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, Cell{}, g.Cell(3, 1), "new cells are empty")

	label := &Label{Type: "ORF", SystematicName: "YAL001C", StandardName: "TFC3"}
	g.Paint(1, genome.Span{Start: 2, End: 5}, label, Unknown)
	g.Paint(1, genome.Span{Start: 4, End: 20}, nil, Exon)

	assert.Equal(t, Cell{}, g.Cell(1, 1))
	assert.Equal(t, Cell{Label: *label, Subtype: Unknown}, g.Cell(2, 1))
	assert.Equal(t, Cell{Label: *label, Subtype: Exon}, g.Cell(5, 1))
	assert.Equal(t, Cell{Subtype: Exon}, g.Cell(9, 1), "subtype paints leave the label alone")
	assert.Equal(t, Cell{}, g.Cell(2, 0), "other tracks untouched")

	assert.True(t, g.Empty(0))
	assert.False(t, g.Empty(2))

	g.Paint(5, genome.Span{Start: 0, End: 9}, label, Unknown)
	g.Paint(0, genome.Span{Start: 30, End: 40}, label, Unknown)
	assert.True(t, g.Empty(0), "out of range paints are dropped")
}

func TestNew_empty(t *testing.T) {
	g := New(5, 0)
	assert.Equal(t, 0, g.Width())
	assert.True(t, g.Empty(4))
}
