// Package anchor places each chromosome within the concatenated genome and
// translates chromosome-relative coordinates into genome offsets.
package anchor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tzok/sgd-annotator/internal/catalog"
	"github.com/tzok/sgd-annotator/internal/genome"
	"golang.org/x/sync/errgroup"
)

// ErrMissing is wrapped by the diagnostics of chromosomes absent from the genome.
var ErrMissing = errors.New("chromosome sequence not found in genome")

// Anchor is where a chromosome starts in the genome and how long it is.
type Anchor struct {
	// Offset is the 0-based genome index of the chromosome's first base
	Offset int

	// Length is the chromosome's length in bases
	Length int
}

// Table maps each resolved chromosome to its anchor. It is read-only once built.
type Table map[genome.Chromosome]Anchor

// Chromosomes returns the resolved chromosomes in enumeration order.
func (t Table) Chromosomes() []genome.Chromosome {
	chromosomes := make([]genome.Chromosome, 0, len(t))
	for c := range t {
		chromosomes = append(chromosomes, c)
	}
	sort.Slice(chromosomes, func(i, j int) bool { return chromosomes[i] < chromosomes[j] })
	return chromosomes
}

// Resolve finds each chromosome's first exact occurrence in the genome.
//
// Searches run concurrently on at most workers goroutines (unbounded when
// workers < 1). A chromosome that is not found is left out of the table and
// reported in the returned diagnostics, one per chromosome, in input order.
func Resolve(ctx context.Context, g string, chromosomes []catalog.Chromosome, workers int) (Table, []error) {
	offsets := make([]int, len(chromosomes))

	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, chr := range chromosomes {
		i, chr := i, chr
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			offsets[i] = strings.Index(g, chr.Seq)
			return nil
		})
	}

	var diagnostics []error
	if err := eg.Wait(); err != nil {
		return Table{}, []error{fmt.Errorf("failed to resolve anchors: %w", err)}
	}

	table := make(Table, len(chromosomes))
	for i, chr := range chromosomes {
		if offsets[i] < 0 || chr.Seq == "" {
			diagnostics = append(diagnostics, fmt.Errorf("chr%s: %w", chr.Chromosome, ErrMissing))
			continue
		}
		table[chr.Chromosome] = Anchor{Offset: offsets[i], Length: len(chr.Seq)}
	}
	return table, diagnostics
}
