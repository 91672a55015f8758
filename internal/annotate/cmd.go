package annotate

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tzok/sgd-annotator/config"
	"github.com/tzok/sgd-annotator/internal/catalog"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// AnnotateCmd takes a cobra command (with its flags) and runs Run.
func AnnotateCmd(cmd *cobra.Command, args []string) {
	conf, err := config.New()
	if err != nil {
		stderr.Fatalln(err)
	}

	opts, err := parseCmdFlags(cmd, conf)
	if err != nil {
		cmd.Help()
		stderr.Fatalln(err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := Run(ctx, opts); err != nil {
		stderr.Fatalln(err)
	}
}

// parseCmdFlags gathers the in and out paths from a cobra cmd and
// everything else from the settings.
func parseCmdFlags(cmd *cobra.Command, conf *config.Config) (opts Options, err error) {
	if opts.Input, err = cmd.Flags().GetString("in"); err != nil || opts.Input == "" {
		return opts, fmt.Errorf("no input table, set --in")
	}
	if opts.Output, err = cmd.Flags().GetString("out"); err != nil || opts.Output == "" {
		return opts, fmt.Errorf("no output path, set --out")
	}
	if opts.GFF, err = cmd.Flags().GetString("gff"); err != nil {
		return opts, err
	}

	opts.Reference = ReferencePaths(conf.Reference)
	opts.MaxTracks = conf.Tracks.Max
	opts.IncludeOther = conf.Tracks.IncludeOther
	opts.Workers = conf.Anchors.Workers
	opts.AnchorCache = conf.Anchors.Cache
	opts.Verbose = conf.Verbose
	opts.Logger = stderr
	return opts, nil
}

// ReferencePaths resolves the configured reference files.
func ReferencePaths(r config.ReferenceConfig) catalog.Paths {
	p := catalog.Paths{
		ORFGenomic:   r.Path(r.ORFGenomic),
		ORFCoding:    r.Path(r.ORFCoding),
		RNAGenomic:   r.Path(r.RNAGenomic),
		RNACoding:    r.Path(r.RNACoding),
		OtherGenomic: r.Path(r.OtherGenomic),
		UTR5:         r.Path(r.UTR5),
		UTR3:         r.Path(r.UTR3),
	}
	for _, c := range r.Chromosomes {
		p.Chromosomes = append(p.Chromosomes, r.Path(c))
	}
	return p
}
