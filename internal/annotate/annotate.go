// Package annotate runs the whole annotation pipeline: it reads the genome
// table and reference catalogs, places features on tracks, composes the
// annotation grid and writes the annotated table.
package annotate

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/tzok/sgd-annotator/internal/anchor"
	"github.com/tzok/sgd-annotator/internal/catalog"
	"github.com/tzok/sgd-annotator/internal/grid"
	"github.com/tzok/sgd-annotator/internal/table"
	"github.com/tzok/sgd-annotator/internal/track"
)

// Options are the inputs and settings of one run.
type Options struct {
	// Input is the genome profile table, Output the annotated copy of it
	Input  string
	Output string

	// GFF, when set, receives one record per placed feature
	GFF string

	Reference catalog.Paths

	MaxTracks    int
	IncludeOther bool

	// Workers bounds concurrent anchor searches, 0 for no bound
	Workers int

	// AnchorCache is a bolt database of resolved anchors, empty to disable
	AnchorCache string

	// Logger receives diagnostics and the run summary; nil discards them
	Logger  *log.Logger
	Verbose bool
}

// Result is what a run produced.
type Result struct {
	RunID string

	Anchors    anchor.Table
	Graph      *track.Graph
	Tracks     track.Assignment
	Placements []grid.Placement
	Grid       *grid.Grid

	// Diagnostics are the per-feature problems the run continued past
	Diagnostics []error

	Summary Summary
}

// Run annotates opts.Input into opts.Output. A returned error means no
// complete output was written; per-feature problems are in Result.Diagnostics.
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	progress := func(format string, v ...interface{}) {
		if opts.Verbose {
			logger.Printf(format, v...)
		}
	}
	if opts.MaxTracks == 0 {
		opts.MaxTracks = track.DefaultMaxTracks
	}

	res := &Result{RunID: uuid.New().String()}
	progress("run %s: annotating %s", res.RunID, opts.Input)

	g, err := table.ReadGenome(opts.Input)
	if err != nil {
		return nil, err
	}
	progress("read genome of %d bases", len(g))

	cat, err := catalog.Load(opts.Reference)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference catalogs: %w", err)
	}
	progress("loaded %d chromosomes and %d features", len(cat.Chromosomes), len(cat.Features))
	for _, name := range cat.Duplicates {
		logger.Printf("warning: %s is listed in more than one catalog, keeping the first", name)
	}

	anchors, diagnostics := resolveAnchors(ctx, g, cat.Chromosomes, opts, logger)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res.Anchors = anchors
	res.Diagnostics = append(res.Diagnostics, diagnostics...)
	progress("anchored %d of %d chromosomes", len(anchors), len(cat.Chromosomes))

	tr := anchor.NewTranslator(anchors)
	nodes, excluded, diagnostics := resolveSpans(cat, tr, opts.IncludeOther)
	res.Diagnostics = append(res.Diagnostics, diagnostics...)
	progress("resolved %d features, %d of category Other left out", len(nodes), excluded)

	if res.Graph, err = track.BuildGraph(nodes); err != nil {
		return nil, err
	}
	progress("overlap graph has %d edges", res.Graph.Edges())

	res.Tracks, diagnostics = track.Assign(res.Graph, opts.MaxTracks)
	res.Diagnostics = append(res.Diagnostics, diagnostics...)

	for _, n := range res.Graph.Nodes {
		if t, ok := res.Tracks[n.Feature.ID]; ok {
			res.Placements = append(res.Placements, grid.Placement{Feature: n.Feature, Span: n.Span, Track: t})
		}
	}
	progress("placed %d features on %d tracks", len(res.Placements), res.Tracks.Width())

	res.Grid, diagnostics = grid.Compose(len(g), res.Placements, tr, cat)
	res.Diagnostics = append(res.Diagnostics, diagnostics...)

	if err := table.WriteAnnotated(opts.Input, opts.Output, res.Grid); err != nil {
		return nil, err
	}
	progress("wrote %s", opts.Output)

	if opts.GFF != "" {
		if err := WriteGFF(opts.GFF, res.Placements, anchors); err != nil {
			return nil, err
		}
		progress("wrote %s", opts.GFF)
	}

	for _, d := range res.Diagnostics {
		logger.Printf("warning: %v", d)
	}

	res.Summary = summarize(res, len(g), len(cat.Features), excluded, time.Since(start))
	logger.Print(res.Summary)
	return res, nil
}
