// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override settings,
// eg SGDANNOT_TRACKS_MAX=8
const EnvPrefix = "SGDANNOT"

// ReferenceConfig locates the SGD reference catalogs. Relative file
// names are resolved against Dir.
type ReferenceConfig struct {
	// the directory holding the downloaded reference files
	Dir string `mapstructure:"dir"`

	// chromosome assemblies, one or more chromosomes per file
	Chromosomes []string `mapstructure:"chromosomes"`

	ORFGenomic   string `mapstructure:"orf-genomic"`
	ORFCoding    string `mapstructure:"orf-coding"`
	RNAGenomic   string `mapstructure:"rna-genomic"`
	RNACoding    string `mapstructure:"rna-coding"`
	OtherGenomic string `mapstructure:"other-genomic"`

	UTR5 string `mapstructure:"utr5"`
	UTR3 string `mapstructure:"utr3"`
}

// Path resolves a reference file name against the reference directory.
// An empty name stays empty.
func (r ReferenceConfig) Path(name string) string {
	if name == "" || r.Dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(r.Dir, name)
}

// TracksConfig is settings about track assignment
type TracksConfig struct {
	// the number of parallel tracks features may be spread over
	Max int `mapstructure:"max"`

	// whether features outside the ORF and RNA catalogs get tracks
	IncludeOther bool `mapstructure:"include-other"`
}

// AnchorsConfig is settings about locating chromosomes in the genome
type AnchorsConfig struct {
	// concurrent chromosome searches, 0 for one per chromosome
	Workers int `mapstructure:"workers"`

	// path to a bolt database of resolved anchors, empty to disable
	Cache string `mapstructure:"cache"`
}

// GoMapConfig locates the inputs of the GO slim mapper
type GoMapConfig struct {
	Slim     string `mapstructure:"slim"`
	Csardi   string `mapstructure:"csardi"`
	Weinberg string `mapstructure:"weinberg"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	Reference ReferenceConfig `mapstructure:"reference"`
	Tracks    TracksConfig    `mapstructure:"tracks"`
	Anchors   AnchorsConfig   `mapstructure:"anchors"`
	GoMap     GoMapConfig     `mapstructure:"gomap"`

	// whether to log progress of each stage
	Verbose bool `mapstructure:"verbose"`
}

// SetDefaults registers the default of every setting on v.
func SetDefaults(v *viper.Viper) {
	chromosomes := make([]string, 0, 17)
	for i := 1; i <= 16; i++ {
		chromosomes = append(chromosomes, fmt.Sprintf("chr%02d.fsa.gz", i))
	}
	chromosomes = append(chromosomes, "chrmt.fsa.gz")

	v.SetDefault("reference.dir", "data")
	v.SetDefault("reference.chromosomes", chromosomes)
	v.SetDefault("reference.orf-genomic", "orf_genomic.fasta.gz")
	v.SetDefault("reference.orf-coding", "orf_coding.fasta.gz")
	v.SetDefault("reference.rna-genomic", "rna_genomic.fasta.gz")
	v.SetDefault("reference.rna-coding", "rna_coding.fasta.gz")
	v.SetDefault("reference.other-genomic", "other_features_genomic.fasta.gz")
	v.SetDefault("reference.utr5", "SGD_all_ORFs_5prime_UTRs.fsa.gz")
	v.SetDefault("reference.utr3", "SGD_all_ORFs_3prime_UTRs.fsa.gz")

	v.SetDefault("tracks.max", 10)
	v.SetDefault("tracks.include-other", false)

	v.SetDefault("anchors.workers", 0)
	v.SetDefault("anchors.cache", "")

	v.SetDefault("gomap.slim", "go_slim_mapping.tab")
	v.SetDefault("gomap.csardi", "translational-efficiency-csardi.csv")
	v.SetDefault("gomap.weinberg", "translational-efficiency-weinberg.csv")

	v.SetDefault("verbose", false)
}

// BindEnv makes SGDANNOT_* environment variables override settings of v.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

func init() {
	SetDefaults(viper.GetViper())
}

// New returns a new Config struct populated by the global
// Viper settings (a settings file, the environment and/or
// command line arguments)
func New() (*Config, error) {
	return Load(viper.GetViper())
}

// Load unmarshals and validates the settings of v.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}

	if c.Tracks.Max < 1 {
		return nil, fmt.Errorf("tracks.max must be at least 1, got %d", c.Tracks.Max)
	}
	if c.Anchors.Workers < 0 {
		return nil, fmt.Errorf("anchors.workers must not be negative, got %d", c.Anchors.Workers)
	}
	return &c, nil
}
