package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/biondi/internal/config"
	"github.com/philipparndt/biondi/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dbPath     string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "biondi",
	Short: "Measure Biondi bodies on microscope captures",
	Long: `biondi records geometric measurements of Biondi bodies in a body database.
Ringer measurements store the log ratio of a traced length to a straight distance,
angler measurements store an opening angle and the lengths of both prongs.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if dbPath != "" {
			cfg.Database = dbPath
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.FileName, "configuration file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "body database (overrides the configuration)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
