// Package cmd is for command line interactions with the sgd-annotator application
package cmd

import (
	"fmt"
	"log"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tzok/sgd-annotator/config"
)

// profiler is running when --profile is cpu or mem.
var profiler interface{ Stop() }

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "sgd-annotator",
	Short: "Annotate a yeast genome profile table with SGD features",
	Long: `Annotate a yeast genome profile table with SGD features

The profile table has one row per base of the concatenated S. cerevisiae
genome. Genes, RNAs and their UTRs, exons and introns from the SGD
reference catalogs are placed onto as few parallel tracks as overlaps
allow, and four columns per track are appended to every row.`,
	Version:           "0.1.0",
	PersistentPreRunE: startProfile,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(readSettings)

	// settings is an optional settings file that overrides the defaults in config
	RootCmd.PersistentFlags().StringP("settings", "s", "", "settings file <YAML>")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log the progress of each stage")
	RootCmd.PersistentFlags().StringP("data", "d", "data", "directory with the SGD reference files")
	RootCmd.PersistentFlags().String("profile", "off", "write a profile of the run: cpu, mem or off")

	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("reference.dir", RootCmd.PersistentFlags().Lookup("data"))
}

// readSettings reads the settings file, if one was given, and the environment.
func readSettings() {
	config.BindEnv(viper.GetViper())

	if settings := viper.GetString("settings"); settings != "" {
		viper.SetConfigFile(settings)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("failed to read settings %s: %v", settings, err)
		}
	}
}

// startProfile starts the profiler named by --profile.
func startProfile(cmd *cobra.Command, args []string) error {
	mode := "off"
	if f := cmd.Flag("profile"); f != nil {
		mode = f.Value.String()
	}

	switch mode {
	case "cpu":
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "", "off":
	default:
		return fmt.Errorf("unknown profile %q, want cpu, mem or off", mode)
	}
	return nil
}
