package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/biondi/internal/store"
	"github.com/spf13/cobra"
)

var writeConfig bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the body database",
	Long:  "Create the bodies table in the configured database and optionally write a default configuration file.",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&writeConfig, "write-config", false, "write the configuration file if it does not exist")
}

func runInit(cmd *cobra.Command, args []string) error {
	db, err := store.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Init(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", cfg.Database)

	if writeConfig {
		if _, err := os.Stat(configPath); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Keeping existing %s\n", configPath)
			return nil
		}
		if err := cfg.Save(configPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
	}
	return nil
}
