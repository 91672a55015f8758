package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/tzok/sgd-annotator/internal/fileio"
	"github.com/tzok/sgd-annotator/internal/genome"
)

// Record is a single FASTA entry with its sequence transcribed to RNA letters.
type Record struct {
	// ID is the first word of the header
	ID string

	// Desc is the rest of the header after the first space
	Desc string

	// Seq is uppercased with T replaced by U, in the orientation of the file
	Seq string
}

// Header returns the header line as it appeared in the file.
func (r Record) Header() string {
	if r.Desc == "" {
		return ">" + r.ID
	}
	return ">" + r.ID + " " + r.Desc
}

// ReadFASTA reads every record of a plain or gzip compressed FASTA file.
func ReadFASTA(path string) ([]Record, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	records, err := readFASTA(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read FASTA %s: %w", path, err)
	}
	return records, nil
}

func readFASTA(r io.Reader) (records []Record, err error) {
	template := linear.NewSeq("", nil, alphabet.DNAredundant)
	sc := seqio.NewScanner(fasta.NewReader(r, template))

	for sc.Next() {
		s := sc.Seq().(*linear.Seq)

		letters := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			letters[i] = byte(l)
		}

		records = append(records, Record{
			ID:   s.ID,
			Desc: strings.TrimSpace(s.Desc),
			Seq:  genome.Transcribe(string(letters)),
		})
	}

	return records, sc.Error()
}
