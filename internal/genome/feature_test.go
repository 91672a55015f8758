package genome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeature_Noncoding(t *testing.T) {
	tests := []struct {
		name   string
		coding []Range
		want   []Range
	}{
		{
			"no coding ranges",
			nil,
			nil,
		},
		{
			"single exon has no intron",
			[]Range{{ChrI, 1807, 2169}},
			nil,
		},
		{
			"two exons",
			[]Range{{ChrI, 142174, 142253}, {ChrI, 142620, 143160}},
			[]Range{{ChrI, 142253, 142620}},
		},
		{
			"three exons",
			[]Range{{ChrII, 10, 20}, {ChrII, 30, 40}, {ChrII, 50, 60}},
			[]Range{{ChrII, 20, 30}, {ChrII, 40, 50}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Feature{Coding: tt.coding}
			got := f.Noncoding()
			assert.Equal(t, tt.want, got)
			if len(tt.coding) >= 2 {
				assert.Len(t, got, len(tt.coding)-1)
			}
		})
	}
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "ORF", ORF.String())
	assert.Equal(t, "RNA", RNA.String())
	assert.Equal(t, "Other", Other.String())
}
