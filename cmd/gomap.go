package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tzok/sgd-annotator/internal/gomap"
)

// gomapCmd joins GO slim terms with translational efficiency per ORF.
var gomapCmd = &cobra.Command{
	Use:   "gomap",
	Run:   gomap.MapCmd,
	Short: "Join GO slim terms and translational efficiency per ORF",
	Long: `Join GO slim terms and translational efficiency per ORF

Reads the SGD GO slim mapping and the Csardi and Weinberg translational
efficiency tables from the data directory and writes one CSV row per ORF.
Missing measurements are written as NaN.`,
	Example: "  sgd-annotator gomap -o go_mapper.csv",
}

// set flags
func init() {
	gomapCmd.Flags().StringP("out", "o", "go_mapper.csv", "output CSV file name")
	gomapCmd.Flags().String("slim", "go_slim_mapping.tab", "GO slim mapping <TSV>")
	gomapCmd.Flags().String("csardi", "translational-efficiency-csardi.csv", "Csardi translational efficiency <CSV>")
	gomapCmd.Flags().String("weinberg", "translational-efficiency-weinberg.csv", "Weinberg translational efficiency <CSV>")

	viper.BindPFlag("gomap.slim", gomapCmd.Flags().Lookup("slim"))
	viper.BindPFlag("gomap.csardi", gomapCmd.Flags().Lookup("csardi"))
	viper.BindPFlag("gomap.weinberg", gomapCmd.Flags().Lookup("weinberg"))

	RootCmd.AddCommand(gomapCmd)
}
