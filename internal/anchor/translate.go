package anchor

import (
	"errors"
	"fmt"

	"github.com/tzok/sgd-annotator/internal/genome"
)

var (
	// ErrUnavailable is returned when a chromosome has no anchor.
	ErrUnavailable = errors.New("no anchor for chromosome")

	// ErrOutOfRange is returned for a position outside 1..length of its chromosome.
	ErrOutOfRange = errors.New("position outside chromosome")
)

// Translator converts chromosome-relative 1-based positions to 0-based genome offsets.
type Translator struct {
	table Table
}

// NewTranslator returns a Translator reading from t.
func NewTranslator(t Table) *Translator {
	return &Translator{table: t}
}

// Translate returns offset(c) + local - 1. Positions are never clamped.
func (t *Translator) Translate(c genome.Chromosome, local int) (int, error) {
	a, ok := t.table[c]
	if !ok {
		return 0, fmt.Errorf("chr%s: %w", c, ErrUnavailable)
	}
	if local < 1 || local > a.Length {
		return 0, fmt.Errorf("chr%s:%d of %d: %w", c, local, a.Length, ErrOutOfRange)
	}
	return a.Offset + local - 1, nil
}

// TranslateRange translates both ends of r. It fails if either end fails.
func (t *Translator) TranslateRange(r genome.Range) (genome.Span, error) {
	start, err := t.Translate(r.Chromosome, r.Start)
	if err != nil {
		return genome.Span{}, err
	}
	end, err := t.Translate(r.Chromosome, r.End)
	if err != nil {
		return genome.Span{}, err
	}
	return genome.Span{Start: start, End: end}, nil
}
