package annotate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tzok/sgd-annotator/internal/anchor"
	"github.com/tzok/sgd-annotator/internal/catalog"
	"github.com/tzok/sgd-annotator/internal/genome"
)

func Test_extendedSpan(t *testing.T) {
	tr := anchor.NewTranslator(anchor.Table{genome.ChrI: {Offset: 100, Length: 50}})
	rng := func(start, end int) *genome.Range {
		return &genome.Range{Chromosome: genome.ChrI, Start: start, End: end}
	}

	tests := []struct {
		name    string
		feature genome.Feature
		want    genome.Span
		wantErr error
	}{
		{
			"primary only",
			genome.Feature{Category: genome.ORF, Range: *rng(10, 20)},
			genome.Span{Start: 109, End: 119},
			nil,
		},
		{
			"merged with both UTRs",
			genome.Feature{Category: genome.ORF, Range: *rng(10, 20), UTR5: rng(5, 9), UTR3: rng(21, 30)},
			genome.Span{Start: 104, End: 129},
			nil,
		},
		{
			"untranslatable UTR is ignored",
			genome.Feature{Category: genome.RNA, Range: *rng(10, 20), UTR3: rng(45, 60)},
			genome.Span{Start: 109, End: 119},
			nil,
		},
		{
			"other features keep the primary span",
			genome.Feature{Category: genome.Other, Range: *rng(10, 20), UTR3: rng(21, 30)},
			genome.Span{Start: 109, End: 119},
			nil,
		},
		{
			"primary out of range",
			genome.Feature{Category: genome.ORF, Range: *rng(40, 51)},
			genome.Span{},
			anchor.ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extendedSpan(&tt.feature, tr)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_missing(t *testing.T) {
	chromosomes := []catalog.Chromosome{{Chromosome: genome.ChrI}, {Chromosome: genome.ChrII}}
	diagnostics := missing(anchor.Table{genome.ChrI: {}}, chromosomes)
	assert.Len(t, diagnostics, 1)
	assert.True(t, errors.Is(diagnostics[0], anchor.ErrMissing))
}
