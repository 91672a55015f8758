package annotate

import (
	"context"
	"fmt"
	"log"

	"github.com/tzok/sgd-annotator/internal/anchor"
	"github.com/tzok/sgd-annotator/internal/catalog"
	"github.com/tzok/sgd-annotator/internal/genome"
	"github.com/tzok/sgd-annotator/internal/track"
)

// resolveAnchors returns the anchor table, from the cache when one is
// configured and holds it. Cache problems are logged and the search runs.
func resolveAnchors(ctx context.Context, g string, chromosomes []catalog.Chromosome, opts Options, logger *log.Logger) (anchor.Table, []error) {
	if opts.AnchorCache == "" {
		return anchor.Resolve(ctx, g, chromosomes, opts.Workers)
	}

	cache, err := anchor.OpenCache(opts.AnchorCache)
	if err != nil {
		logger.Printf("warning: %v", err)
		return anchor.Resolve(ctx, g, chromosomes, opts.Workers)
	}
	defer cache.Close()

	key := anchor.Key(g, chromosomes)
	if t, ok, err := cache.Get(key); err != nil {
		logger.Printf("warning: %v", err)
	} else if ok {
		return t, missing(t, chromosomes)
	}

	t, diagnostics := anchor.Resolve(ctx, g, chromosomes, opts.Workers)
	if ctx.Err() == nil {
		if err := cache.Put(key, t); err != nil {
			logger.Printf("warning: %v", err)
		}
	}
	return t, diagnostics
}

// missing reports the chromosomes a cached table has no anchor for.
func missing(t anchor.Table, chromosomes []catalog.Chromosome) (diagnostics []error) {
	for _, chr := range chromosomes {
		if _, ok := t[chr.Chromosome]; !ok {
			diagnostics = append(diagnostics, fmt.Errorf("chr%s: %w", chr.Chromosome, anchor.ErrMissing))
		}
	}
	return diagnostics
}

// extendedSpan is the feature's primary span merged with every UTR span
// that translates.
func extendedSpan(f *genome.Feature, tr *anchor.Translator) (genome.Span, error) {
	span, err := tr.TranslateRange(f.Range)
	if err != nil {
		return genome.Span{}, err
	}
	if f.Category == genome.Other {
		return span, nil
	}

	for _, r := range f.UTRs() {
		if utr, err := tr.TranslateRange(r); err == nil {
			span = span.Merge(utr)
		}
	}
	return span, nil
}

// resolveSpans turns catalog features into graph nodes in discovery order.
// Features of category Other are counted and left out unless includeOther.
func resolveSpans(cat *catalog.Catalog, tr *anchor.Translator, includeOther bool) (nodes []track.Node, excluded int, diagnostics []error) {
	for _, f := range cat.Features {
		if f.Category == genome.Other && !includeOther {
			excluded++
			continue
		}

		span, err := extendedSpan(f, tr)
		if err != nil {
			diagnostics = append(diagnostics, fmt.Errorf("%s at %s: %w", f.ID, f.Range, err))
			continue
		}
		nodes = append(nodes, track.Node{Feature: f, Span: span})
	}
	return nodes, excluded, diagnostics
}
