package track

import (
	"math/rand"
	"testing"

	"github.com/biogo/store/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tzok/sgd-annotator/internal/genome"
)

func nodes(spans ...genome.Span) []Node {
	ns := make([]Node, len(spans))
	for i, s := range spans {
		ns[i] = Node{Feature: &genome.Feature{ID: string(rune('A' + i))}, Span: s}
	}
	return ns
}

func TestBuildGraph(t *testing.T) {
	tests := []struct {
		name  string
		spans []genome.Span
		want  [][]int
	}{
		{
			"two overlap, one apart",
			[]genome.Span{{Start: 10, End: 20}, {Start: 15, End: 25}, {Start: 30, End: 40}},
			[][]int{{1}, {0}, nil},
		},
		{
			"identical spans are not adjacent",
			[]genome.Span{{Start: 10, End: 20}, {Start: 10, End: 20}},
			[][]int{nil, nil},
		},
		{
			"touching endpoints are not adjacent",
			[]genome.Span{{Start: 10, End: 20}, {Start: 20, End: 30}},
			[][]int{nil, nil},
		},
		{
			"containment",
			[]genome.Span{{Start: 0, End: 100}, {Start: 40, End: 60}, {Start: 50, End: 200}},
			[][]int{{1, 2}, {0, 2}, {0, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := BuildGraph(nodes(tt.spans...))
			require.NoError(t, err)
			for i := range tt.spans {
				assert.Equal(t, tt.want[i], g.Neighbours(i), "neighbours of %d", i)
			}
		})
	}
}

// the tree-backed graph matches a pairwise comparison
func TestBuildGraph_bruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	spans := make([]genome.Span, 300)
	for i := range spans {
		start := r.Intn(2000)
		spans[i] = genome.Span{Start: start, End: start + r.Intn(60)}
	}

	g, err := BuildGraph(nodes(spans...))
	require.NoError(t, err)

	edges := 0
	for i := range spans {
		var want []int
		for j := range spans {
			if i != j && genome.Overlaps(spans[i], spans[j]) {
				want = append(want, j)
			}
		}
		edges += len(want)
		assert.Equal(t, want, g.Neighbours(i), "neighbours of %d", i)
	}
	assert.Equal(t, edges/2, g.Edges())
}

func TestSpanInterval_Overlap(t *testing.T) {
	i := spanInterval{span: genome.Span{Start: 10, End: 20}}
	assert.True(t, i.Overlap(interval.IntRange{Start: 20, End: 31}), "shared end base")
	assert.True(t, i.Overlap(interval.IntRange{Start: 0, End: 11}), "shared start base")
	assert.False(t, i.Overlap(interval.IntRange{Start: 21, End: 30}))
	assert.False(t, i.Overlap(interval.IntRange{Start: 0, End: 10}))
}
