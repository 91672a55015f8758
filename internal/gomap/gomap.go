// Package gomap joins the SGD GO slim mapping with translational
// efficiency measurements into one row per ORF.
package gomap

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tzok/sgd-annotator/internal/fileio"
)

// Aspect is the GO namespace of a term.
type Aspect byte

const (
	Component Aspect = 'C'
	Function  Aspect = 'F'
	Process   Aspect = 'P'
)

// ParseAspect accepts the one letter aspect codes of the slim mapping.
func ParseAspect(s string) (Aspect, error) {
	if len(s) == 1 {
		switch a := Aspect(s[0]); a {
		case Component, Function, Process:
			return a, nil
		}
	}
	return 0, fmt.Errorf("invalid aspect %q", s)
}

// Slim is one line of go_slim_mapping.tab.
type Slim struct {
	ORF    string
	Gene   string
	Aspect Aspect
	Term   string
}

// Efficiency is one ORF's translational efficiency measurement.
type Efficiency struct {
	MRNA      float64
	Footprint float64
	TE        float64
}

// missing fills the columns of an ORF without a measurement.
var missing = Efficiency{MRNA: math.NaN(), Footprint: math.NaN(), TE: math.NaN()}

// ReadSlim reads a tab separated GO slim mapping: ORF, gene, SGDID, aspect, term, ...
func ReadSlim(path string) ([]Slim, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	slims, err := readSlim(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read GO slim mapping %s: %w", path, err)
	}
	return slims, nil
}

func readSlim(r io.Reader) (slims []Slim, err error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	for line := 1; ; line++ {
		fields, err := cr.Read()
		if err == io.EOF {
			return slims, nil
		}
		if err != nil {
			return nil, err
		}
		if len(fields) < 5 {
			return nil, fmt.Errorf("line %d: %d columns, need at least 5", line, len(fields))
		}

		aspect, err := ParseAspect(fields[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		slims = append(slims, Slim{ORF: fields[0], Gene: fields[1], Aspect: aspect, Term: fields[4]})
	}
}

// ReadEfficiency reads a translational efficiency CSV with a header row:
// ORF, mRNA abundance, ribosome footprint density, translational efficiency.
func ReadEfficiency(path string) (map[string]Efficiency, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	te, err := readEfficiency(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read translational efficiency %s: %w", path, err)
	}
	return te, nil
}

func readEfficiency(r io.Reader) (map[string]Efficiency, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	te := make(map[string]Efficiency)
	for line := 1; ; line++ {
		fields, err := cr.Read()
		if err == io.EOF {
			return te, nil
		}
		if err != nil {
			return nil, err
		}
		if line == 1 {
			continue
		}
		if len(fields) < 4 {
			return nil, fmt.Errorf("line %d: %d columns, need at least 4", line, len(fields))
		}

		var values [3]float64
		for i := range values {
			if values[i], err = strconv.ParseFloat(strings.TrimSpace(fields[i+1]), 64); err != nil {
				return nil, fmt.Errorf("line %d: failed to parse %q", line, fields[i+1])
			}
		}
		te[fields[0]] = Efficiency{MRNA: values[0], Footprint: values[1], TE: values[2]}
	}
}

// Row is one ORF of the mapper output.
type Row struct {
	SystematicName string
	StandardName   string

	// terms of each aspect, in file order, joined by "; "
	Process   string
	Function  string
	Component string

	Csardi   Efficiency
	Weinberg Efficiency
}

// Header names the output columns.
var Header = []string{
	"Systematic name",
	"Standard name",
	"GO-P (Process)",
	"GO-F (Function)",
	"GO-C (Component)",
	"mRNA abundance (Csardi)",
	"Ribosome footprint density (Csardi)",
	"Translational efficiency (Csardi)",
	"mRNA abundance (Weinberg)",
	"Ribosome footprint density (Weinberg)",
	"Translational efficiency (Weinberg)",
}

// Combine makes one row per ORF in order of first appearance in slims.
func Combine(slims []Slim, csardi, weinberg map[string]Efficiency) []Row {
	terms := make(map[Aspect]map[string][]string, 3)
	for _, a := range []Aspect{Component, Function, Process} {
		terms[a] = make(map[string][]string)
	}
	for _, s := range slims {
		terms[s.Aspect][s.ORF] = append(terms[s.Aspect][s.ORF], s.Term)
	}

	lookup := func(m map[string]Efficiency, orf string) Efficiency {
		if e, ok := m[orf]; ok {
			return e
		}
		return missing
	}

	var rows []Row
	seen := make(map[string]bool)
	for _, s := range slims {
		if seen[s.ORF] {
			continue
		}
		seen[s.ORF] = true

		rows = append(rows, Row{
			SystematicName: s.ORF,
			StandardName:   s.Gene,
			Process:        strings.Join(terms[Process][s.ORF], "; "),
			Function:       strings.Join(terms[Function][s.ORF], "; "),
			Component:      strings.Join(terms[Component][s.ORF], "; "),
			Csardi:         lookup(csardi, s.ORF),
			Weinberg:       lookup(weinberg, s.ORF),
		})
	}
	return rows
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Write writes the header and rows as CSV.
func Write(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		err := cw.Write([]string{
			r.SystematicName,
			r.StandardName,
			r.Process,
			r.Function,
			r.Component,
			formatFloat(r.Csardi.MRNA),
			formatFloat(r.Csardi.Footprint),
			formatFloat(r.Csardi.TE),
			formatFloat(r.Weinberg.MRNA),
			formatFloat(r.Weinberg.Footprint),
			formatFloat(r.Weinberg.TE),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Map reads the three inputs and writes the joined CSV to out.
func Map(slimPath, csardiPath, weinbergPath, out string) (int, error) {
	slims, err := ReadSlim(slimPath)
	if err != nil {
		return 0, err
	}
	csardi, err := ReadEfficiency(csardiPath)
	if err != nil {
		return 0, err
	}
	weinberg, err := ReadEfficiency(weinbergPath)
	if err != nil {
		return 0, err
	}

	rows := Combine(slims, csardi, weinberg)

	wc, err := fileio.Create(out)
	if err != nil {
		return 0, err
	}
	if err := Write(wc, rows); err != nil {
		wc.Close()
		return 0, fmt.Errorf("failed to write %s: %w", out, err)
	}
	return len(rows), wc.Close()
}
