package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tzok/sgd-annotator/internal/annotate"
)

// annotateCmd is for annotating a genome profile table.
var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Run:   annotate.AnnotateCmd,
	Short: "Annotate a genome profile table with SGD features",
	Long: `Annotate a genome profile table with SGD features

1. Each chromosome of the reference is located in the genome by exact search
2. ORF and RNA features, extended by their UTRs, are translated to genome offsets
3. Overlapping features are greedily placed onto at most --max-tracks tracks
4. Every base of every track is labelled with the feature's type and names,
   then refined to UTR 5', UTR 3', Exon or Intron

Features that cannot be placed are logged and left out.`,
	Example:                    "  sgd-annotator annotate -i profile.tsv.gz -o annotated.tsv.gz",
	SuggestionsMinimumDistance: 3,
}

// set flags
func init() {
	annotateCmd.Flags().StringP("in", "i", "", "genome profile table, plain or gzip")
	annotateCmd.Flags().StringP("out", "o", "", "output file name, gzip compressed if it ends in .gz")
	annotateCmd.Flags().String("gff", "", "also write the placed features to a GFF file")
	annotateCmd.Flags().IntP("max-tracks", "t", 10, "maximum number of parallel tracks")
	annotateCmd.Flags().Bool("include-other", false, "place features outside the ORF and RNA catalogs too")
	annotateCmd.Flags().IntP("workers", "w", 0, "concurrent chromosome searches, 0 for one per chromosome")
	annotateCmd.Flags().String("anchor-cache", "", "database of chromosome offsets reused between runs")

	viper.BindPFlag("tracks.max", annotateCmd.Flags().Lookup("max-tracks"))
	viper.BindPFlag("tracks.include-other", annotateCmd.Flags().Lookup("include-other"))
	viper.BindPFlag("anchors.workers", annotateCmd.Flags().Lookup("workers"))
	viper.BindPFlag("anchors.cache", annotateCmd.Flags().Lookup("anchor-cache"))

	RootCmd.AddCommand(annotateCmd)
}
