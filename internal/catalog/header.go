package catalog

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/biogo/biogo/seq"
	"github.com/tzok/sgd-annotator/internal/genome"
)

// Grammar names a header format.
type Grammar string

const (
	// ChromosomeGrammar is the NCBI assembly header, "[chromosome=IV]"
	ChromosomeGrammar Grammar = "chromosome"

	// GeneGrammar is the SGD ORF/RNA/other feature header, "Chr IV from 100-200,300-400,"
	GeneGrammar Grammar = "gene"

	// UTRGrammar is the UCSC-style UTR header, "range=chrIV:100-200 strand=-"
	UTRGrammar Grammar = "UTR"
)

// HeaderError is returned when a record's header does not match the grammar
// expected for the catalog it was read from.
type HeaderError struct {
	Path    string
	Record  string
	Header  string
	Grammar Grammar
	Err     error
}

func (e *HeaderError) Error() string {
	msg := fmt.Sprintf("failed to parse %s header of %s in %s: %q", e.Grammar, e.Record, e.Path, e.Header)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *HeaderError) Unwrap() error { return e.Err }

var (
	chromosomeRegex = regexp.MustCompile(`\[chromosome=([IVX]+|Mito|mt)\]`)
	mitoRegex       = regexp.MustCompile(`\[location=mitochondrion\]`)
	geneRegex       = regexp.MustCompile(`Chr ([IVX]+|Mito) from (\d+)-(\d+)`)
	codingRegex     = regexp.MustCompile(`Chr ([IVX]+|Mito) from ((\d+-\d+,)+)`)
	pairRegex       = regexp.MustCompile(`(\d+)-(\d+)`)
)

// parseChromosomeHeader returns the chromosome named by an assembly header.
func parseChromosomeHeader(header string) (genome.Chromosome, error) {
	if m := chromosomeRegex.FindStringSubmatch(header); m != nil {
		return genome.ParseChromosome(m[1])
	}
	if mitoRegex.MatchString(header) {
		return genome.ChrMito, nil
	}
	return 0, fmt.Errorf("no [chromosome=...] tag")
}

// geneHeader is what an SGD feature header tells about the feature.
type geneHeader struct {
	systematic string
	standard   string
	rng        genome.Range
	coding     []genome.Range
	strand     seq.Strand
}

// parseGeneHeader reads an SGD feature header, eg:
//
//	>YAL003W EFB1 SGDID:S000000003, Chr I from 142174-142253,142620-143160, Genome Release 64-3-1, Verified ORF, "..."
//
// The primary range is the first from-to pair. Coding ranges are every
// comma-terminated pair in the list, normalized and sorted by start.
func parseGeneHeader(r Record) (h geneHeader, err error) {
	h.systematic = r.ID
	h.standard = r.ID
	if fields := strings.Fields(r.Desc); len(fields) > 0 {
		h.standard = fields[0]
	}

	m := geneRegex.FindStringSubmatch(r.Desc)
	if m == nil {
		return h, fmt.Errorf("no 'Chr <chromosome> from <start>-<end>' location")
	}

	c, err := genome.ParseChromosome(m[1])
	if err != nil {
		return h, err
	}
	from, err := strconv.Atoi(m[2])
	if err != nil {
		return h, err
	}
	to, err := strconv.Atoi(m[3])
	if err != nil {
		return h, err
	}
	h.rng = genome.NewRange(c, from, to)

	if cm := codingRegex.FindStringSubmatch(r.Desc); cm != nil {
		for _, pair := range pairRegex.FindAllStringSubmatch(cm[2], -1) {
			from, err := strconv.Atoi(pair[1])
			if err != nil {
				return h, err
			}
			to, err := strconv.Atoi(pair[2])
			if err != nil {
				return h, err
			}
			h.coding = append(h.coding, genome.NewRange(c, from, to))
		}
		sort.SliceStable(h.coding, func(i, j int) bool {
			return h.coding[i].Start < h.coding[j].Start
		})
	}

	h.strand = seq.Plus
	if strings.Contains(r.Desc, "reverse complement") {
		h.strand = seq.Minus
	}
	return h, nil
}

// utrHeader is what a UTR header tells about the UTR.
type utrHeader struct {
	systematic string
	rng        genome.Range
	strand     seq.Strand
}

// parseUTRHeader reads a UTR header, eg:
//
//	>sacCer3_ct_UTR5_chrI_YAL067C_id001 range=chrI:9016-9049 5'pad=0 3'pad=0 strand=- repeatMasking=none
//
// The systematic name is the fifth underscore-separated field of the record id.
func parseUTRHeader(r Record) (h utrHeader, err error) {
	const (
		rangeField  = "range="
		strandField = "strand="
	)

	idFields := strings.Split(r.ID, "_")
	if len(idFields) < 5 || idFields[4] == "" {
		return h, fmt.Errorf("no systematic name in record id")
	}
	h.systematic = idFields[4]

	h.strand = seq.Plus
	found := false
	for _, f := range strings.Fields(r.Desc) {
		switch {
		case strings.HasPrefix(f, rangeField):
			rf := strings.FieldsFunc(f[len(rangeField):], func(r rune) bool { return r == ':' || r == '-' })
			if len(rf) != 3 || !strings.HasPrefix(rf[0], "chr") {
				return h, fmt.Errorf("malformed %s", f)
			}
			c, err := genome.ParseChromosome(strings.TrimPrefix(rf[0], "chr"))
			if err != nil {
				return h, err
			}
			from, err := strconv.Atoi(rf[1])
			if err != nil {
				return h, err
			}
			to, err := strconv.Atoi(rf[2])
			if err != nil {
				return h, err
			}
			h.rng = genome.NewRange(c, from, to)
			found = true
		case strings.HasPrefix(f, strandField):
			if st := f[len(strandField):]; st == "-" {
				h.strand = seq.Minus
			}
		}
	}

	if !found {
		return h, fmt.Errorf("no range=chr<chromosome>:<start>-<end> field")
	}
	return h, nil
}
