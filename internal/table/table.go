// Package table reads the per-base genome profile table and writes it back
// out with one block of annotation columns per track.
package table

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tzok/sgd-annotator/internal/fileio"
	"github.com/tzok/sgd-annotator/internal/genome"
	"github.com/tzok/sgd-annotator/internal/grid"
)

// maxLine bounds the length of a single table row.
const maxLine = 1 << 20

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return sc
}

// ReadGenome concatenates the nucleotide column of every data row of a plain
// or gzip compressed table into an RNA string. The header row is skipped.
func ReadGenome(path string) (string, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	g, err := readGenome(rc)
	if err != nil {
		return "", fmt.Errorf("failed to read genome from %s: %w", path, err)
	}
	return g, nil
}

func readGenome(r io.Reader) (string, error) {
	var b strings.Builder
	sc := newScanner(r)
	for line := 1; sc.Scan(); line++ {
		if line == 1 {
			continue
		}

		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			return "", fmt.Errorf("line %d: %d columns, need at least 2", line, len(fields))
		}
		if len(fields[1]) != 1 {
			return "", fmt.Errorf("line %d: nucleotide column is %q, not a single base", line, fields[1])
		}
		b.WriteString(fields[1])
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return genome.Transcribe(b.String()), nil
}

// WriteAnnotated re-reads the table at input and writes each of its lines to
// output followed by the grid's columns for that row. Output is gzip
// compressed when its name ends in ".gz".
func WriteAnnotated(input, output string, g *grid.Grid) error {
	rc, err := fileio.Open(input)
	if err != nil {
		return err
	}
	defer rc.Close()

	wc, err := fileio.Create(output)
	if err != nil {
		return err
	}

	if err := writeAnnotated(rc, wc, g); err != nil {
		wc.Close()
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", output, err)
	}
	return nil
}

func writeAnnotated(r io.Reader, w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	sc := newScanner(r)

	for line := 0; sc.Scan(); line++ {
		bw.WriteString(sc.Text())

		if line == 0 {
			for t := 1; t <= g.Width(); t++ {
				fmt.Fprintf(bw, "\tType %d\tSubtype %d\tSystematic name %d\tStandard name %d", t, t, t, t)
			}
		} else {
			pos := line - 1
			if pos >= g.Len() {
				return fmt.Errorf("line %d: table has more rows than the genome's %d bases", line+1, g.Len())
			}
			for t := 0; t < g.Width(); t++ {
				c := g.Cell(pos, t)
				bw.WriteByte('\t')
				bw.WriteString(c.Type)
				bw.WriteByte('\t')
				bw.WriteString(c.Subtype.String())
				bw.WriteByte('\t')
				bw.WriteString(c.SystematicName)
				bw.WriteByte('\t')
				bw.WriteString(c.StandardName)
			}
		}

		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return bw.Flush()
}
