// Package main provides the gcprof command-line tool.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bkaplan/gcprof/internal/annotation"
	"github.com/bkaplan/gcprof/internal/genome"
	"github.com/bkaplan/gcprof/internal/output"
	"github.com/bkaplan/gcprof/internal/profile"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "gcprof",
		Short: "Annotate protein-coding transcripts with regional GC content",
		Long: `gcprof computes per-transcript GC ratios for the coding sequence and
the 5' and 3' untranslated regions, from a GTF annotation and a genome
FASTA, and writes a tab-separated report.`,
		Example: `  gcprof --annotation gencode.gtf --sequence genome.fa --output report.tsv
  gcprof -a gencode.gtf.gz -s genome.fa.gz -o report.tsv --chromosome chr1`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			chrom, _ := cmd.Flags().GetString("chromosome")
			return runProfile(profileOptions{
				annotationPath: viper.GetString("annotation_path"),
				sequencePath:   viper.GetString("sequence_path"),
				outputPath:     viper.GetString("output_path"),
				chromosome:     chrom,
				verbose:        verbose,
			})
		},
	}

	cmd.Flags().StringP("annotation", "a", "", "GTF annotation file (required)")
	cmd.Flags().StringP("sequence", "s", "", "Genome FASTA file (required)")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	cmd.Flags().String("chromosome", "", "Only process transcripts on this chromosome")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Config file keys mirror the flag names
	_ = viper.BindPFlag("annotation_path", cmd.Flags().Lookup("annotation"))
	_ = viper.BindPFlag("sequence_path", cmd.Flags().Lookup("sequence"))
	_ = viper.BindPFlag("output_path", cmd.Flags().Lookup("output"))

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gcprof version %s (%s) built %s\n", version, commit, date)
		},
	}
}

// initConfig loads ~/.gcprof.yaml if present. A missing config file is
// not an error; flags alone are enough.
func initConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	viper.SetConfigFile(filepath.Join(home, ".gcprof.yaml"))
	if err := viper.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

type profileOptions struct {
	annotationPath string
	sequencePath   string
	outputPath     string
	chromosome     string
	verbose        bool
}

func runProfile(opts profileOptions) error {
	if opts.annotationPath == "" {
		return fmt.Errorf("annotation file required (--annotation or annotation_path in config)")
	}
	if opts.sequencePath == "" {
		return fmt.Errorf("sequence file required (--sequence or sequence_path in config)")
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	loader := annotation.NewLoader(opts.annotationPath)
	var set *annotation.TranscriptSet
	if opts.chromosome != "" {
		set, err = loader.LoadChromosome(opts.chromosome)
	} else {
		set, err = loader.Load()
	}
	if err != nil {
		return fmt.Errorf("load annotation: %w", err)
	}
	logger.Info("loaded annotation",
		zap.String("path", opts.annotationPath),
		zap.Int("transcripts", set.Len()))

	g, err := genome.Load(opts.sequencePath)
	if err != nil {
		return fmt.Errorf("load sequence: %w", err)
	}
	logger.Info("loaded genome",
		zap.String("path", opts.sequencePath),
		zap.Int("sequences", g.Count()))

	var out *os.File
	if opts.outputPath == "" {
		out = os.Stdout
	} else {
		out, err = os.Create(opts.outputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()
	}

	p := profile.New(g)
	p.SetLogger(logger)

	return p.ProfileAll(set, output.NewTabWriter(out))
}

// newLogger builds a stderr logger; verbose switches to development mode.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
