package genome

import (
	"fmt"

	"github.com/biogo/biogo/seq"
)

// Category is the coarse class of a feature, decided by which catalog lists it.
type Category int

const (
	// Other features: centromeres, ARS, telomeres, LTRs...
	Other Category = iota
	// ORF is an open reading frame from the ORF catalog
	ORF
	// RNA is a non-coding RNA gene from the RNA catalog
	RNA
)

// String is the label written to the "Type N" column.
func (c Category) String() string {
	switch c {
	case ORF:
		return "ORF"
	case RNA:
		return "RNA"
	case Other:
		return "Other"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Feature is a gene or other annotated element with its chromosome-relative ranges.
type Feature struct {
	// ID is the unique key of the feature; SGD catalogs key by systematic name
	ID string

	Category Category

	// Range is the primary genomic range from the *_genomic catalogs
	Range Range

	// Coding are the exon ranges, ascending by start
	Coding []Range

	// UTR5 and UTR3 are nil when no UTR is annotated
	UTR5 *Range
	UTR3 *Range

	SystematicName string
	StandardName   string

	Strand seq.Strand
}

// Noncoding returns the intronic ranges between consecutive coding ranges.
//
// There are exactly len(Coding)-1 of them; each runs from the end of one exon
// to the start of the next, both bases included.
func (f *Feature) Noncoding() []Range {
	if len(f.Coding) < 2 {
		return nil
	}

	introns := make([]Range, 0, len(f.Coding)-1)
	for i := 1; i < len(f.Coding); i++ {
		introns = append(introns, NewRange(f.Coding[i].Chromosome, f.Coding[i-1].End, f.Coding[i].Start))
	}
	return introns
}

// UTRs returns the present UTR ranges, 5' first.
func (f *Feature) UTRs() []Range {
	var utrs []Range
	if f.UTR5 != nil {
		utrs = append(utrs, *f.UTR5)
	}
	if f.UTR3 != nil {
		utrs = append(utrs, *f.UTR3)
	}
	return utrs
}
