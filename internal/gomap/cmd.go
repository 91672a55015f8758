package gomap

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tzok/sgd-annotator/config"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// MapCmd writes the GO slim and translational efficiency table named by --out.
func MapCmd(cmd *cobra.Command, args []string) {
	conf, err := config.New()
	if err != nil {
		stderr.Fatalln(err)
	}

	out, err := cmd.Flags().GetString("out")
	if err != nil || out == "" {
		cmd.Help()
		stderr.Fatalln("no output path, set --out")
	}

	ref := conf.Reference
	n, err := Map(ref.Path(conf.GoMap.Slim), ref.Path(conf.GoMap.Csardi), ref.Path(conf.GoMap.Weinberg), out)
	if err != nil {
		stderr.Fatalln(err)
	}

	if conf.Verbose {
		stderr.Printf("wrote %d ORFs to %s", n, out)
	}
}
