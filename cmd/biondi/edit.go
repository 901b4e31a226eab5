package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/philipparndt/biondi/internal/app"
	"github.com/philipparndt/biondi/internal/capture"
	"github.com/philipparndt/biondi/internal/measurement"
	"github.com/philipparndt/biondi/internal/store"
	"github.com/spf13/cobra"
)

var (
	editRecord int64
	editImage  string
)

var editCmd = &cobra.Command{
	Use:   "edit <angler|ringer>",
	Short: "Measure a body interactively",
	Long: `Open a measurement window on the capture of a body record.

Pick an instrument, click on the capture to measure and press OK to store the
result. A right click resets the active instrument.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"angler", "ringer"},
	RunE:      runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().Int64Var(&editRecord, "record", 0, "time stamp of the body record")
	editCmd.Flags().StringVar(&editImage, "image", "", "capture image of the body")

	editCmd.MarkFlagRequired("record")
	editCmd.MarkFlagRequired("image")
}

func runEdit(cmd *cobra.Command, args []string) error {
	kind, err := measurement.ParseKind(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := store.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	source := capture.FileSource{Path: editImage}
	region, err := source.Capture(ctx)
	if err != nil {
		return err
	}

	editor, err := app.NewEditor(ctx, kind, db, editRecord, capture.Fixed{Width: region.Width, Height: region.Height})
	if err != nil {
		return err
	}

	a := fyneapp.New()
	w := app.NewWindow(a, editor, region, cfg.Precision)
	saved := false
	w.OnSaved = func(result measurement.Result) {
		saved = true
		fields, err := store.FieldsFor(result)
		if err != nil {
			return
		}
		writeReport(cmd.OutOrStdout(), "text", newReport(editRecord, editor.Location, fields), cfg.Precision)
	}

	w.Resize(fyne.NewSize(float32(region.Width)+40, float32(region.Height)+120))
	w.ShowAndRun()

	if !saved {
		return fmt.Errorf("body %d: window closed without saving", editRecord)
	}
	return nil
}
