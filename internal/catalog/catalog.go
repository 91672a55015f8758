// Package catalog loads the SGD reference catalogs (chromosome assemblies,
// ORF/RNA/other feature FASTA and UTR FASTA) into genome.Feature records.
package catalog

import (
	"fmt"

	"github.com/tzok/sgd-annotator/internal/genome"
)

// Paths locates the reference files. Empty paths are skipped.
type Paths struct {
	Chromosomes []string

	ORFGenomic   string
	ORFCoding    string
	RNAGenomic   string
	RNACoding    string
	OtherGenomic string

	UTR5 string
	UTR3 string
}

// Chromosome is a chromosome's full reference sequence.
type Chromosome struct {
	Chromosome genome.Chromosome
	Seq        string
}

// Catalog is every feature known to the run in discovery order:
// ORFs, then RNAs, then other features, each in file order.
type Catalog struct {
	Chromosomes []Chromosome
	Features    []*genome.Feature

	// Duplicates are names listed in more than one category; only the first is kept
	Duplicates []string

	orfs map[string]bool
	rnas map[string]bool
}

// Category classifies a feature name by membership in the ORF and RNA catalogs.
func (c *Catalog) Category(name string) genome.Category {
	if c.orfs[name] {
		return genome.ORF
	}
	if c.rnas[name] {
		return genome.RNA
	}
	return genome.Other
}

// Load reads every catalog in p. A malformed header or a duplicate name within
// a file aborts the load with an error naming the file and record.
func Load(p Paths) (*Catalog, error) {
	c := &Catalog{
		orfs: make(map[string]bool),
		rnas: make(map[string]bool),
	}

	seen := make(map[genome.Chromosome]string)
	for _, path := range p.Chromosomes {
		if path == "" {
			continue
		}
		chromosomes, err := readChromosomes(path)
		if err != nil {
			return nil, err
		}
		for _, chr := range chromosomes {
			if other, dup := seen[chr.Chromosome]; dup {
				return nil, fmt.Errorf("failed to load chromosomes: chr%s in both %s and %s", chr.Chromosome, other, path)
			}
			seen[chr.Chromosome] = path
			c.Chromosomes = append(c.Chromosomes, chr)
		}
	}

	orfs, err := readGenes(p.ORFGenomic)
	if err != nil {
		return nil, err
	}
	rnas, err := readGenes(p.RNAGenomic)
	if err != nil {
		return nil, err
	}
	others, err := readGenes(p.OtherGenomic)
	if err != nil {
		return nil, err
	}

	orfCoding, err := readCoding(p.ORFCoding)
	if err != nil {
		return nil, err
	}
	rnaCoding, err := readCoding(p.RNACoding)
	if err != nil {
		return nil, err
	}

	utr5, err := readUTRs(p.UTR5)
	if err != nil {
		return nil, err
	}
	utr3, err := readUTRs(p.UTR3)
	if err != nil {
		return nil, err
	}

	for _, f := range orfs {
		c.orfs[f.ID] = true
	}
	for _, f := range rnas {
		c.rnas[f.ID] = true
	}

	ids := make(map[string]bool)
	add := func(features []*genome.Feature, coding map[string][]genome.Range) {
		for _, f := range features {
			if ids[f.ID] {
				c.Duplicates = append(c.Duplicates, f.ID)
				continue
			}
			ids[f.ID] = true

			f.Category = c.Category(f.ID)
			if coding != nil {
				f.Coding = coding[f.ID]
			}
			if r, ok := utr5[f.ID]; ok {
				r := r
				f.UTR5 = &r
			}
			if r, ok := utr3[f.ID]; ok {
				r := r
				f.UTR3 = &r
			}
			c.Features = append(c.Features, f)
		}
	}
	add(orfs, orfCoding)
	add(rnas, rnaCoding)
	add(others, nil)

	return c, nil
}

func readChromosomes(path string) ([]Chromosome, error) {
	records, err := ReadFASTA(path)
	if err != nil {
		return nil, err
	}

	chromosomes := make([]Chromosome, 0, len(records))
	for _, r := range records {
		chr, err := parseChromosomeHeader(r.Desc)
		if err != nil {
			return nil, &HeaderError{Path: path, Record: r.ID, Header: r.Header(), Grammar: ChromosomeGrammar, Err: err}
		}
		chromosomes = append(chromosomes, Chromosome{Chromosome: chr, Seq: r.Seq})
	}
	return chromosomes, nil
}

// readGenes reads a *_genomic catalog into features in file order.
func readGenes(path string) ([]*genome.Feature, error) {
	if path == "" {
		return nil, nil
	}

	records, err := ReadFASTA(path)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(records))
	features := make([]*genome.Feature, 0, len(records))
	for _, r := range records {
		h, err := parseGeneHeader(r)
		if err != nil {
			return nil, &HeaderError{Path: path, Record: r.ID, Header: r.Header(), Grammar: GeneGrammar, Err: err}
		}
		if seen[h.systematic] {
			return nil, fmt.Errorf("failed to load %s: duplicate record %s", path, h.systematic)
		}
		seen[h.systematic] = true

		features = append(features, &genome.Feature{
			ID:             h.systematic,
			Range:          h.rng,
			SystematicName: h.systematic,
			StandardName:   h.standard,
			Strand:         h.strand,
		})
	}
	return features, nil
}

// readCoding reads a *_coding catalog into a map from systematic name to exon ranges.
func readCoding(path string) (map[string][]genome.Range, error) {
	if path == "" {
		return nil, nil
	}

	records, err := ReadFASTA(path)
	if err != nil {
		return nil, err
	}

	coding := make(map[string][]genome.Range, len(records))
	for _, r := range records {
		h, err := parseGeneHeader(r)
		if err != nil {
			return nil, &HeaderError{Path: path, Record: r.ID, Header: r.Header(), Grammar: GeneGrammar, Err: err}
		}
		if _, dup := coding[h.systematic]; dup {
			return nil, fmt.Errorf("failed to load %s: duplicate record %s", path, h.systematic)
		}
		coding[h.systematic] = h.coding
	}
	return coding, nil
}

// readUTRs reads a UTR catalog into a map from systematic name to UTR range.
func readUTRs(path string) (map[string]genome.Range, error) {
	if path == "" {
		return nil, nil
	}

	records, err := ReadFASTA(path)
	if err != nil {
		return nil, err
	}

	utrs := make(map[string]genome.Range, len(records))
	for _, r := range records {
		h, err := parseUTRHeader(r)
		if err != nil {
			return nil, &HeaderError{Path: path, Record: r.ID, Header: r.Header(), Grammar: UTRGrammar, Err: err}
		}
		if _, dup := utrs[h.systematic]; dup {
			return nil, fmt.Errorf("failed to load %s: duplicate record %s", path, h.systematic)
		}
		utrs[h.systematic] = h.rng
	}
	return utrs, nil
}
