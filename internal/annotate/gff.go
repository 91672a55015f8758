package annotate

import (
	"fmt"
	"io"
	"strconv"

	"github.com/biogo/biogo/feat"
	"github.com/biogo/biogo/io/featio/gff"
	"github.com/tzok/sgd-annotator/internal/anchor"
	"github.com/tzok/sgd-annotator/internal/fileio"
	"github.com/tzok/sgd-annotator/internal/grid"
)

const gffSource = "sgd-annotator"

// WriteGFF writes one GFF record per placement with its extended range in
// chromosome coordinates and its 1-based track.
func WriteGFF(path string, placements []grid.Placement, anchors anchor.Table) error {
	wc, err := fileio.Create(path)
	if err != nil {
		return err
	}

	if err := writeGFF(wc, placements, anchors); err != nil {
		wc.Close()
		return fmt.Errorf("failed to write GFF %s: %w", path, err)
	}
	return wc.Close()
}

func writeGFF(wc io.Writer, placements []grid.Placement, anchors anchor.Table) error {
	w := gff.NewWriter(wc, 60, true)
	for _, p := range placements {
		f := p.Feature
		a, ok := anchors[f.Range.Chromosome]
		if !ok {
			return fmt.Errorf("%s: chr%s: %w", f.ID, f.Range.Chromosome, anchor.ErrUnavailable)
		}

		_, err := w.Write(&gff.Feature{
			SeqName:    "chr" + f.Range.Chromosome.String(),
			Source:     gffSource,
			Feature:    f.Category.String(),
			FeatStart:  feat.OneToZero(p.Span.Start - a.Offset + 1),
			FeatEnd:    p.Span.End - a.Offset + 1,
			FeatStrand: f.Strand,
			FeatFrame:  gff.NoFrame,
			FeatAttributes: gff.Attributes{
				{Tag: "ID", Value: f.SystematicName},
				{Tag: "Name", Value: f.StandardName},
				{Tag: "Track", Value: strconv.Itoa(p.Track + 1)},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
