package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/biondi/internal/app"
	"github.com/philipparndt/biondi/internal/capture"
	"github.com/philipparndt/biondi/internal/measurement"
	"github.com/philipparndt/biondi/internal/store"
	"github.com/spf13/cobra"
)

var (
	measureRecord int64
	scriptPath    string
	imagePath     string
	captureWidth  int
	captureHeight int
	dryRun        bool
	outputFormat  string
)

var measureCmd = &cobra.Command{
	Use:   "measure <angler|ringer>",
	Short: "Measure a body from a recorded event script",
	Long: `Replay a YAML event script through a measurement window and store the result.

The script lists operator actions in order:

  events:
    - click: [120, 80]
    - move: [140, 95]
    - tool: length
    - reset: distance
    - clear: true
    - ok: true

Coordinates are clamped into the capture given by --image, or by --width and --height.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"angler", "ringer"},
	RunE:      runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	f := measureCmd.Flags()
	f.Int64Var(&measureRecord, "record", 0, "time stamp of the body record")
	f.StringVar(&scriptPath, "script", "-", "event script (- for stdin)")
	f.StringVar(&imagePath, "image", "", "capture image of the body")
	f.IntVar(&captureWidth, "width", 0, "capture width when no image is given")
	f.IntVar(&captureHeight, "height", 0, "capture height when no image is given")
	f.BoolVar(&dryRun, "dry-run", false, "measure without writing to the database")
	f.StringVarP(&outputFormat, "output", "o", "text", "output format: text, yaml or json")

	measureCmd.MarkFlagRequired("record")
	measureCmd.MarkFlagsMutuallyExclusive("image", "width")
	measureCmd.MarkFlagsMutuallyExclusive("image", "height")
}

func runMeasure(cmd *cobra.Command, args []string) error {
	kind, err := measurement.ParseKind(args[0])
	if err != nil {
		return err
	}

	script, err := readScript(cmd.InOrStdin())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	st, closeStore, err := openAnnotationStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	editor, err := app.NewEditor(ctx, kind, st, measureRecord, captureSource())
	if err != nil {
		return err
	}

	result, err := app.Replay(ctx, editor, script)
	if err != nil {
		editor.Cancel()
		return err
	}

	fields, err := store.FieldsFor(result)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), outputFormat, newReport(measureRecord, editor.Location, fields), cfg.Precision)
}

func readScript(stdin io.Reader) (app.Script, error) {
	if scriptPath == "-" {
		return app.LoadScript(stdin)
	}

	f, err := os.Open(scriptPath)
	if err != nil {
		return app.Script{}, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()
	return app.LoadScript(f)
}

func captureSource() capture.Source {
	if imagePath != "" {
		return capture.FileSource{Path: imagePath}
	}
	if captureWidth > 0 && captureHeight > 0 {
		return capture.Fixed{Width: captureWidth, Height: captureHeight}
	}
	// no capture: leave coordinates unbounded
	return unbounded{}
}

type unbounded struct{}

func (unbounded) Capture(context.Context) (capture.Region, error) {
	return capture.Region{}, nil
}

// openAnnotationStore opens the database, or for a dry run copies the record
// into memory so nothing is written
func openAnnotationStore(ctx context.Context) (store.AnnotationStore, func(), error) {
	db, err := store.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	if !dryRun {
		return db, func() { db.Close() }, nil
	}
	defer db.Close()

	rec, err := db.Get(ctx, measureRecord)
	if err != nil {
		return nil, nil, err
	}
	return store.NewMemory(rec), func() {}, nil
}
