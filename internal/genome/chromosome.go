// Package genome holds the coordinate and feature model shared by the
// annotation pipeline: yeast chromosomes, chromosome-relative ranges,
// absolute spans in the concatenated genome and the features placed on them.
package genome

import (
	"fmt"
	"strings"
)

// Chromosome is one of the sixteen nuclear chromosomes or the mitochondrial genome.
type Chromosome int

// the zero value is not a chromosome
const (
	ChrI Chromosome = iota + 1
	ChrII
	ChrIII
	ChrIV
	ChrV
	ChrVI
	ChrVII
	ChrVIII
	ChrIX
	ChrX
	ChrXI
	ChrXII
	ChrXIII
	ChrXIV
	ChrXV
	ChrXVI
	ChrMito
)

var chromosomeNames = [...]string{
	"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII",
	"IX", "X", "XI", "XII", "XIII", "XIV", "XV", "XVI", "Mito",
}

// Chromosomes returns every chromosome in karyotype order, mitochondrion last.
func Chromosomes() []Chromosome {
	all := make([]Chromosome, 0, len(chromosomeNames)-1)
	for c := ChrI; c <= ChrMito; c++ {
		all = append(all, c)
	}
	return all
}

// String returns the Roman numeral of a nuclear chromosome or "Mito".
func (c Chromosome) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Chromosome(%d)", int(c))
	}
	return chromosomeNames[c]
}

// Valid reports whether c is one of the enumerated chromosomes.
func (c Chromosome) Valid() bool {
	return c >= ChrI && c <= ChrMito
}

// ParseChromosome reads a Roman numeral (I..XVI) or one of the
// mitochondrial spellings used by SGD and UCSC (Mito, mt, M).
func ParseChromosome(s string) (Chromosome, error) {
	switch s {
	case "Mito", "mito", "mt", "M", "MT":
		return ChrMito, nil
	}

	upper := strings.ToUpper(s)
	for _, c := range Chromosomes() {
		if c != ChrMito && chromosomeNames[c] == upper {
			return c, nil
		}
	}

	return 0, fmt.Errorf("failed to parse chromosome %q", s)
}
