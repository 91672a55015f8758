package genome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"partial overlap", Span{10, 20}, Span{15, 25}, true},
		{"contained", Span{10, 20}, Span{12, 18}, true},
		{"disjoint", Span{10, 20}, Span{30, 40}, false},
		{"touching endpoints", Span{10, 20}, Span{20, 30}, false},
		{"identical spans are not connected", Span{10, 20}, Span{10, 20}, false},
		{"shared start, shorter end", Span{10, 20}, Span{10, 15}, true},
		{"single base inside", Span{10, 20}, Span{15, 15}, true},
		{"single base on the boundary", Span{10, 20}, Span{20, 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "predicate must be symmetric")
		})
	}
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"partial overlap", Span{10, 20}, Span{15, 25}, true},
		{"touching endpoints", Span{10, 20}, Span{20, 30}, true},
		{"identical", Span{10, 20}, Span{10, 20}, true},
		{"adjacent", Span{10, 20}, Span{21, 30}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Intersects(tt.a, tt.b))
			assert.Equal(t, tt.want, Intersects(tt.b, tt.a))
		})
	}
}

func TestNewRange_normalizes(t *testing.T) {
	r := NewRange(ChrI, 2169, 1807)
	assert.Equal(t, Range{Chromosome: ChrI, Start: 1807, End: 2169}, r)
}

func TestSpan_Clip(t *testing.T) {
	clipped, ok := Span{5, 30}.Clip(Span{10, 20})
	assert.True(t, ok)
	assert.Equal(t, Span{10, 20}, clipped)

	_, ok = Span{21, 30}.Clip(Span{10, 20})
	assert.False(t, ok)
}

func TestParseChromosome(t *testing.T) {
	tests := []struct {
		in      string
		want    Chromosome
		wantErr bool
	}{
		{"I", ChrI, false},
		{"XVI", ChrXVI, false},
		{"iv", ChrIV, false},
		{"Mito", ChrMito, false},
		{"mt", ChrMito, false},
		{"XVII", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseChromosome(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}

	assert.Len(t, Chromosomes(), 17)
}

func mustParse(t *testing.T, s string) Chromosome {
	c, err := ParseChromosome(s)
	if err != nil {
		t.Fatal(err)
	}
	return c
}
