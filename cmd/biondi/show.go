package main

import (
	"fmt"
	"strconv"

	"github.com/philipparndt/biondi/internal/store"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <record>",
	Short: "Display a body record and its measurements",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format: text, yaml or json")
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid record %q: %w", args[0], err)
	}

	db, err := store.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	rec, err := db.Get(cmd.Context(), id)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), outputFormat, newReport(id, rec.Location(), rec.Fields), cfg.Precision)
}
