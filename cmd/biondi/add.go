package main

import (
	"fmt"
	"time"

	"github.com/philipparndt/biondi/internal/store"
	"github.com/spf13/cobra"
)

var newBody store.Record

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a body record",
	Long:  "Add a body record to the database. The record is keyed by its time stamp, which defaults to now.",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	f := addCmd.Flags()
	f.Int64Var(&newBody.Time, "time", 0, "record time stamp (unix seconds, default now)")
	f.StringVar(&newBody.AnnotatorName, "annotator", "", "annotator name")
	f.StringVar(&newBody.BodyName, "name", "biondi", "body name")
	f.IntVar(&newBody.BodyNumber, "number", 1, "body number")
	f.IntVar(&newBody.X, "x", 0, "x position in the grid")
	f.IntVar(&newBody.Y, "y", 0, "y position in the grid")
	f.StringVar(&newBody.GridID, "grid", "", "grid id")
	f.BoolVar(&newBody.Unsure, "unsure", false, "mark the body as unsure")
	f.StringVar(&newBody.Notes, "notes", "", "free text notes")
	f.StringVar(&newBody.BodyFileName, "image", "", "capture file of the body")

	addCmd.MarkFlagRequired("grid")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if newBody.Time == 0 {
		newBody.Time = time.Now().Unix()
	}

	db, err := store.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Init(cmd.Context()); err != nil {
		return err
	}
	if err := db.Insert(cmd.Context(), newBody); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added body %d at %s (%d, %d)\n", newBody.Time, newBody.GridID, newBody.X, newBody.Y)
	return nil
}
